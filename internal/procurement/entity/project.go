package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is one procurement project / purchase requisition record.
// The business id doubles as the primary key: PROJ001, PROJ002, ...
type Project struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	Status      string `json:"status" gorm:"size:20;not null;default:to_start"`
	Company     string `json:"company" gorm:"size:120"`
	Area        string `json:"area" gorm:"size:120"`
	Responsible string `json:"responsible" gorm:"size:120"`
	Category    string `json:"category" gorm:"size:120"`
	Description string `json:"description" gorm:"type:text"`

	// Financial modes. A project may track a budget, a baseline, both or
	// neither; the flags decide which derived fields are meaningful.
	HasBudget   bool `json:"has_budget"`
	HasBaseline bool `json:"has_baseline"`

	// Base amounts. Exact decimals, zero when not applicable.
	Budget       decimal.Decimal `json:"budget" gorm:"type:numeric(15,2);not null;default:0"`
	Baseline     decimal.Decimal `json:"baseline" gorm:"type:numeric(15,2);not null;default:0"`
	BestProposal decimal.Decimal `json:"best_proposal" gorm:"type:numeric(15,2);not null;default:0"`
	InitialPrice decimal.Decimal `json:"initial_price" gorm:"type:numeric(15,2);not null;default:0"`
	FinalPrice   decimal.Decimal `json:"final_price" gorm:"type:numeric(15,2);not null;default:0"`

	// Derived amounts. Stored so the table reads well in ad-hoc SQL, but
	// always recomputed from the base fields before being served.
	SavingAmount                 decimal.Decimal `json:"saving_amount" gorm:"type:numeric(15,2);not null;default:0"`
	SavingPercent                decimal.Decimal `json:"saving_percent" gorm:"type:numeric(15,4);not null;default:0"`
	CostAvoidanceBaselineAmount  decimal.Decimal `json:"cost_avoidance_baseline_amount" gorm:"type:numeric(15,2);not null;default:0"`
	CostAvoidanceBaselinePercent decimal.Decimal `json:"cost_avoidance_baseline_percent" gorm:"type:numeric(15,4);not null;default:0"`
	CostAvoidanceAmount          decimal.Decimal `json:"cost_avoidance_amount" gorm:"type:numeric(15,2);not null;default:0"`
	CostAvoidancePercent         decimal.Decimal `json:"cost_avoidance_percent" gorm:"type:numeric(15,4);not null;default:0"`

	// Schedule window. Nullable: absence is not the same as a zero date.
	StartDate       *time.Time `json:"start_date" gorm:"type:date"`
	EndDate         *time.Time `json:"end_date" gorm:"type:date"`
	ElapsedDays     int        `json:"elapsed_days" gorm:"default:0"`
	ProgressPercent float64    `json:"progress_percent" gorm:"type:numeric(5,2);default:0"`

	FilesLink string `json:"files_link" gorm:"size:500"`

	CreatedBy string    `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Project status values. The set is closed: anything else is rejected at
// write time.
const (
	StatusToStart    = "to_start"
	StatusInProgress = "in_progress"
	StatusDelayed    = "delayed"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
	StatusCancelled  = "cancelled"
)

// ProjectStatuses lists the closed status set in presentation order.
var ProjectStatuses = []string{
	StatusToStart,
	StatusInProgress,
	StatusDelayed,
	StatusCompleted,
	StatusOnHold,
	StatusCancelled,
}

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s string) bool {
	for _, st := range ProjectStatuses {
		if s == st {
			return true
		}
	}
	return false
}
