package engine

import (
	"strings"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// Criteria is one filter selection from the dashboard or grid. The zero value
// matches every record. An empty status set means "no constraint", exactly
// like an empty string field: filter widgets default to empty selections and
// an empty selection must not hide everything.
type Criteria struct {
	Statuses    []string `json:"statuses"`
	Company     string   `json:"company"`
	Area        string   `json:"area"`
	Responsible string   `json:"responsible"`
	Category    string   `json:"category"`
	Search      string   `json:"search"` // description substring, case-insensitive
	Year        *int     `json:"year"`   // calendar year of the start date
}

// Filter returns the records matching every active criterion. The result
// preserves the relative order of the input, and the input slice is never
// modified.
func Filter(records []entity.Project, c Criteria) []entity.Project {
	out := make([]entity.Project, 0, len(records))
	for _, rec := range records {
		if c.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (c Criteria) matches(rec entity.Project) bool {
	if len(c.Statuses) > 0 && !memberOf(c.Statuses, rec.Status) {
		return false
	}
	if c.Company != "" && rec.Company != c.Company {
		return false
	}
	if c.Area != "" && rec.Area != c.Area {
		return false
	}
	if c.Responsible != "" && rec.Responsible != c.Responsible {
		return false
	}
	if c.Category != "" && rec.Category != c.Category {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(rec.Description), strings.ToLower(c.Search)) {
		return false
	}
	if c.Year != nil && (rec.StartDate == nil || rec.StartDate.Year() != *c.Year) {
		return false
	}
	return true
}

func memberOf(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
