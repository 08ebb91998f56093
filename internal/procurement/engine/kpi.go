// Package engine holds the pure computations behind the project dashboard:
// financial KPIs, schedule progress, filter evaluation, sequence ids and
// aggregate summaries. Nothing here touches a clock, a store or a logger;
// every function is a total transform over its arguments and safe for
// concurrent use.
package engine

import "github.com/shopspring/decimal"

// KPIResult carries the six derived financial fields of a single project.
type KPIResult struct {
	SavingAmount                 decimal.Decimal
	SavingPercent                decimal.Decimal
	CostAvoidanceBaselineAmount  decimal.Decimal
	CostAvoidanceBaselinePercent decimal.Decimal
	CostAvoidanceAmount          decimal.Decimal
	CostAvoidancePercent         decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeKPIs derives the financial indicators from the two mode flags and the
// five base amounts.
//
// Saving compares the approved budget against the best received proposal and
// only exists in budget mode. Cost avoidance against the baseline works the
// same way in baseline mode. Cost avoidance proper, initial minus final
// negotiated price, is computed for every project; its percentage is relative
// to the final price.
//
// A zero denominator yields a zero percentage, never an error or a non-finite
// value. Negative inputs and results pass through untouched: a negative saving
// is the legitimate signal of a cost overrun, not invalid data.
func ComputeKPIs(hasBudget, hasBaseline bool, budget, baseline, bestProposal, initialPrice, finalPrice decimal.Decimal) KPIResult {
	var r KPIResult

	if hasBudget {
		r.SavingAmount = budget.Sub(bestProposal)
		if bestProposal.IsPositive() {
			r.SavingPercent = r.SavingAmount.Div(bestProposal).Mul(hundred)
		}
	}

	if hasBaseline {
		r.CostAvoidanceBaselineAmount = baseline.Sub(bestProposal)
		if bestProposal.IsPositive() {
			r.CostAvoidanceBaselinePercent = r.CostAvoidanceBaselineAmount.Div(bestProposal).Mul(hundred)
		}
	}

	r.CostAvoidanceAmount = initialPrice.Sub(finalPrice)
	if finalPrice.IsPositive() {
		r.CostAvoidancePercent = r.CostAvoidanceAmount.Div(finalPrice).Mul(hundred)
	}

	return r
}
