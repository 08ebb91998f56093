package engine

import (
	"time"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// Derive recomputes every derived field on the record from its base fields.
// Stored derived values are never trusted: reads and writes both pass through
// here, so a row whose inputs changed can never serve stale KPIs.
func Derive(p *entity.Project, today time.Time) {
	k := ComputeKPIs(p.HasBudget, p.HasBaseline, p.Budget, p.Baseline, p.BestProposal, p.InitialPrice, p.FinalPrice)
	p.SavingAmount = k.SavingAmount
	p.SavingPercent = k.SavingPercent
	p.CostAvoidanceBaselineAmount = k.CostAvoidanceBaselineAmount
	p.CostAvoidanceBaselinePercent = k.CostAvoidanceBaselinePercent
	p.CostAvoidanceAmount = k.CostAvoidanceAmount
	p.CostAvoidancePercent = k.CostAvoidancePercent
	p.ElapsedDays = ElapsedDays(p.StartDate, p.EndDate, today)
	p.ProgressPercent = Progress(p.StartDate, p.EndDate, today)
}

// DeriveAll applies Derive to every record in place.
func DeriveAll(records []entity.Project, today time.Time) {
	for i := range records {
		Derive(&records[i], today)
	}
}
