package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// Summary backs the dashboard headline cards. TotalValue adds final prices and
// best proposals across the set; TotalEconomy adds the saving and both cost
// avoidance amounts.
type Summary struct {
	Total        int             `json:"total"`
	Completed    int             `json:"completed"`
	InProgress   int             `json:"in_progress"`
	Cancelled    int             `json:"cancelled"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalEconomy decimal.Decimal `json:"total_economy"`
}

// Summarize folds an already-filtered record set into the card figures.
func Summarize(records []entity.Project) Summary {
	s := Summary{
		Total:        len(records),
		TotalValue:   decimal.Zero,
		TotalEconomy: decimal.Zero,
	}
	for _, rec := range records {
		switch rec.Status {
		case entity.StatusCompleted:
			s.Completed++
		case entity.StatusInProgress:
			s.InProgress++
		case entity.StatusCancelled:
			s.Cancelled++
		}
		s.TotalValue = s.TotalValue.Add(rec.FinalPrice).Add(rec.BestProposal)
		s.TotalEconomy = s.TotalEconomy.
			Add(rec.SavingAmount).
			Add(rec.CostAvoidanceAmount).
			Add(rec.CostAvoidanceBaselineAmount)
	}
	return s
}

// StatusCount is one bar of the by-status chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CountByStatus groups records by status, descending by count, ties broken by
// status name so the output is deterministic.
func CountByStatus(records []entity.Project) []StatusCount {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}

// ResponsibleCount is one bar of the by-responsible chart. Records without a
// responsible party group under the empty string.
type ResponsibleCount struct {
	Responsible string `json:"responsible"`
	Count       int    `json:"count"`
}

// CountByResponsible groups records by responsible party, same ordering rules
// as CountByStatus.
func CountByResponsible(records []entity.Project) []ResponsibleCount {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Responsible]++
	}
	out := make([]ResponsibleCount, 0, len(counts))
	for resp, n := range counts {
		out = append(out, ResponsibleCount{Responsible: resp, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Responsible < out[j].Responsible
	})
	return out
}

// TimelineEntry is one row of the schedule view.
type TimelineEntry struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Responsible     string    `json:"responsible"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	ProgressPercent float64   `json:"progress_percent"`
}

// Timeline keeps only records with a complete schedule window, ordered by
// start date then id.
func Timeline(records []entity.Project) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(records))
	for _, rec := range records {
		if rec.StartDate == nil || rec.EndDate == nil {
			continue
		}
		out = append(out, TimelineEntry{
			ID:              rec.ID,
			Description:     rec.Description,
			Responsible:     rec.Responsible,
			Status:          rec.Status,
			StartDate:       *rec.StartDate,
			EndDate:         *rec.EndDate,
			ProgressPercent: rec.ProgressPercent,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
