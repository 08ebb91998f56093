package service

import (
	"context"

	"github.com/flaviorefit/projetos/internal/procurement/engine"
)

// DashboardService aggregates the project portfolio for the overview screens.
// It reads through ProjectService so the snapshot cache is shared.
type DashboardService struct {
	projects *ProjectService
}

func NewDashboardService(projects *ProjectService) *DashboardService {
	return &DashboardService{projects: projects}
}

// Overview is the dashboard payload: counters, money cards and breakdowns,
// all computed over the filtered portfolio.
type Overview struct {
	Summary           engine.Summary            `json:"summary"`
	TotalValueLabel   string                    `json:"total_value_label"`
	TotalEconomyLabel string                    `json:"total_economy_label"`
	ByStatus          []engine.StatusCount      `json:"by_status"`
	ByResponsible     []engine.ResponsibleCount `json:"by_responsible"`
}

func (s *DashboardService) Overview(ctx context.Context, criteria engine.Criteria) (*Overview, error) {
	records, err := s.projects.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	summary := engine.Summarize(records)
	return &Overview{
		Summary:           summary,
		TotalValueLabel:   engine.AbbreviateBRL(summary.TotalValue),
		TotalEconomyLabel: engine.AbbreviateBRL(summary.TotalEconomy),
		ByStatus:          engine.CountByStatus(records),
		ByResponsible:     engine.CountByResponsible(records),
	}, nil
}

// Timeline lists the scheduled projects ordered by start date. Records
// without both dates are left out.
func (s *DashboardService) Timeline(ctx context.Context, criteria engine.Criteria) ([]engine.TimelineEntry, error) {
	records, err := s.projects.List(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return engine.Timeline(records), nil
}
