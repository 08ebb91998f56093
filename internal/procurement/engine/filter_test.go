package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

func filterFixture() []entity.Project {
	return []entity.Project{
		{
			ID:          "PROJ001",
			Status:      entity.StatusCompleted,
			Company:     "A",
			Area:        "Maintenance",
			Responsible: "Carla",
			Category:    "Services",
			Description: "Diesel generator overhaul",
			StartDate:   dayPtr(2025, time.March, 1),
		},
		{
			ID:          "PROJ002",
			Status:      entity.StatusDelayed,
			Company:     "B",
			Area:        "IT",
			Responsible: "Marcos",
			Category:    "Equipment",
			Description: "Forklift fleet renewal",
			StartDate:   dayPtr(2026, time.January, 10),
		},
		{
			ID:          "PROJ003",
			Status:      entity.StatusCompleted,
			Company:     "A",
			Area:        "IT",
			Responsible: "Carla",
			Category:    "Equipment",
			Description: "",
		},
	}
}

// TestFilterAllUnset: the zero criteria returns every record, order and
// membership preserved exactly.
func TestFilterAllUnset(t *testing.T) {
	records := filterFixture()
	got := Filter(records, Criteria{})

	if !reflect.DeepEqual(got, records) {
		t.Fatalf("expected identity round trip, got %+v", got)
	}
}

// TestFilterEmptyStatusSetMatchesAll: an empty multi-select means "no filter",
// never "match none".
func TestFilterEmptyStatusSetMatchesAll(t *testing.T) {
	records := filterFixture()
	got := Filter(records, Criteria{Statuses: []string{}})

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
}

// TestFilterByStatus: membership in the supplied set, original order kept.
func TestFilterByStatus(t *testing.T) {
	records := []entity.Project{
		{ID: "PROJ001", Status: entity.StatusCompleted, Company: "A"},
		{ID: "PROJ002", Status: entity.StatusDelayed, Company: "B"},
	}
	got := Filter(records, Criteria{Statuses: []string{entity.StatusCompleted}})

	if len(got) != 1 || got[0].ID != "PROJ001" {
		t.Fatalf("expected only PROJ001, got %+v", got)
	}
}

// TestFilterStableOrder: a multi-match result keeps the input's relative
// ordering, no re-sort.
func TestFilterStableOrder(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Statuses: []string{entity.StatusCompleted, entity.StatusDelayed}})

	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"PROJ001", "PROJ002", "PROJ003"} {
		if got[i].ID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, got[i].ID)
		}
	}
}

// TestFilterCombinesWithAnd: every active criterion must hold.
func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filter(filterFixture(), Criteria{
		Statuses: []string{entity.StatusCompleted},
		Company:  "A",
		Area:     "IT",
	})

	if len(got) != 1 || got[0].ID != "PROJ003" {
		t.Fatalf("expected only PROJ003, got %+v", got)
	}
}

// TestFilterSearchCaseInsensitive: substring containment ignores case; an
// empty description never matches a non-empty search.
func TestFilterSearchCaseInsensitive(t *testing.T) {
	records := filterFixture()

	got := Filter(records, Criteria{Search: "FORKLIFT"})
	if len(got) != 1 || got[0].ID != "PROJ002" {
		t.Fatalf("expected only PROJ002, got %+v", got)
	}

	got = Filter(records, Criteria{Search: "generator"})
	if len(got) != 1 || got[0].ID != "PROJ001" {
		t.Fatalf("expected only PROJ001, got %+v", got)
	}
}

// TestFilterYear: matches only records whose start date exists and falls in
// the requested calendar year.
func TestFilterYear(t *testing.T) {
	year := 2026
	got := Filter(filterFixture(), Criteria{Year: &year})

	if len(got) != 1 || got[0].ID != "PROJ002" {
		t.Fatalf("expected only PROJ002, got %+v", got)
	}

	year = 2024
	if got := Filter(filterFixture(), Criteria{Year: &year}); len(got) != 0 {
		t.Fatalf("expected no records for 2024, got %+v", got)
	}
}

// TestFilterDoesNotMutateInput.
func TestFilterDoesNotMutateInput(t *testing.T) {
	records := filterFixture()
	snapshot := filterFixture()

	Filter(records, Criteria{Statuses: []string{entity.StatusDelayed}, Search: "fleet"})

	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("input slice was mutated: %+v", records)
	}
}
