package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/flaviorefit/projetos/internal/config"
	"github.com/flaviorefit/projetos/internal/procurement/engine"
	"github.com/flaviorefit/projetos/internal/procurement/entity"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
)

// registerAttempts bounds the id-collision retry loop. Two concurrent
// registrations can derive the same id from the same snapshot; the primary
// key rejects the loser and it tries again with a fresh id.
const registerAttempts = 3

// ErrIDExhausted means every registration attempt lost the id race.
var ErrIDExhausted = errors.New("could not allocate a unique project id")

// ErrValidation marks write-time rule violations so the transport layer can
// report them as client errors.
var ErrValidation = errors.New("invalid project data")

// ProjectService orchestrates record CRUD around the engine: validation at
// the write boundary, derived fields recomputed on every read and write, the
// snapshot cache invalidated whenever a row changes.
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	cache       *SnapshotCache
	opts        config.ProcurementConfig
	logger      *zap.Logger
}

func NewProjectService(projectRepo *repository.ProjectRepository, cache *SnapshotCache, opts config.ProcurementConfig, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		cache:       cache,
		opts:        opts,
		logger:      logger,
	}
}

// RegisterProjectRequest creates a record. The id is never accepted from the
// caller; it is derived from the sequence.
type RegisterProjectRequest struct {
	Status       string          `json:"status"`
	Company      string          `json:"company"`
	Area         string          `json:"area"`
	Responsible  string          `json:"responsible"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	HasBudget    bool            `json:"has_budget"`
	HasBaseline  bool            `json:"has_baseline"`
	Budget       decimal.Decimal `json:"budget"`
	Baseline     decimal.Decimal `json:"baseline"`
	BestProposal decimal.Decimal `json:"best_proposal"`
	InitialPrice decimal.Decimal `json:"initial_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	FilesLink    string          `json:"files_link"`
}

// Register validates the payload, assigns the next sequence id and stores the
// record with its derived fields computed. A lost id race is retried with a
// regenerated id.
func (s *ProjectService) Register(ctx context.Context, userID string, req *RegisterProjectRequest) (*entity.Project, error) {
	now := time.Now()

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	project := &entity.Project{
		Status:       req.Status,
		Company:      req.Company,
		Area:         req.Area,
		Responsible:  req.Responsible,
		Category:     req.Category,
		Description:  req.Description,
		HasBudget:    req.HasBudget,
		HasBaseline:  req.HasBaseline,
		Budget:       req.Budget,
		Baseline:     req.Baseline,
		BestProposal: req.BestProposal,
		InitialPrice: req.InitialPrice,
		FinalPrice:   req.FinalPrice,
		StartDate:    startDate,
		EndDate:      endDate,
		FilesLink:    req.FilesLink,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if project.Status == "" {
		project.Status = entity.StatusToStart
	}

	if err := s.validate(project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	engine.Derive(project, now)

	for attempt := 1; attempt <= registerAttempts; attempt++ {
		ids, err := s.projectRepo.ListIDs(ctx, s.opts.IDPrefix)
		if err != nil {
			return nil, fmt.Errorf("list project ids: %w", err)
		}
		project.ID = engine.NextID(s.opts.IDPrefix, ids)

		err = s.projectRepo.Insert(ctx, project)
		if err == nil {
			s.cache.Invalidate(ctx)
			return project, nil
		}
		if !errors.Is(err, repository.ErrDuplicateID) {
			return nil, err
		}
		s.logger.Warn("Project id collision, retrying",
			zap.String("id", project.ID),
			zap.Int("attempt", attempt))
	}

	return nil, ErrIDExhausted
}

// UpdateProjectRequest replaces fields on an existing record. Only non-nil
// fields are applied; the id is immutable.
type UpdateProjectRequest struct {
	Status       *string          `json:"status"`
	Company      *string          `json:"company"`
	Area         *string          `json:"area"`
	Responsible  *string          `json:"responsible"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	HasBudget    *bool            `json:"has_budget"`
	HasBaseline  *bool            `json:"has_baseline"`
	Budget       *decimal.Decimal `json:"budget"`
	Baseline     *decimal.Decimal `json:"baseline"`
	BestProposal *decimal.Decimal `json:"best_proposal"`
	InitialPrice *decimal.Decimal `json:"initial_price"`
	FinalPrice   *decimal.Decimal `json:"final_price"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	FilesLink    *string          `json:"files_link"`
}

// Update applies a partial update, re-validates the whole record and
// recomputes the derived fields before saving.
func (s *ProjectService) Update(ctx context.Context, id string, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Company != nil {
		project.Company = *req.Company
	}
	if req.Area != nil {
		project.Area = *req.Area
	}
	if req.Responsible != nil {
		project.Responsible = *req.Responsible
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.HasBudget != nil {
		project.HasBudget = *req.HasBudget
	}
	if req.HasBaseline != nil {
		project.HasBaseline = *req.HasBaseline
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Baseline != nil {
		project.Baseline = *req.Baseline
	}
	if req.BestProposal != nil {
		project.BestProposal = *req.BestProposal
	}
	if req.InitialPrice != nil {
		project.InitialPrice = *req.InitialPrice
	}
	if req.FinalPrice != nil {
		project.FinalPrice = *req.FinalPrice
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		project.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		project.EndDate = d
	}
	if req.FilesLink != nil {
		project.FilesLink = *req.FilesLink
	}

	if err := s.validate(project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now()
	project.UpdatedAt = now
	engine.Derive(project, now)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	return project, nil
}

// Delete removes a record by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repository.ErrNotFound
	}
	s.cache.Invalidate(ctx)
	return nil
}

// Get fetches one record with its derived fields recomputed as of today.
func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	engine.Derive(project, time.Now())
	return project, nil
}

// List loads the snapshot, recomputes derived fields against today and
// reduces it through the filter. The returned slice is fresh; callers may
// paginate or reorder it freely.
func (s *ProjectService) List(ctx context.Context, criteria engine.Criteria) ([]entity.Project, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	engine.DeriveAll(records, time.Now())
	return engine.Filter(records, criteria), nil
}

// Options feeds the filter dropdowns: the closed status set, the configured
// option lists and the responsible parties observed in the data.
type Options struct {
	Statuses     []string `json:"statuses"`
	Companies    []string `json:"companies"`
	Areas        []string `json:"areas"`
	Categories   []string `json:"categories"`
	Responsibles []string `json:"responsibles"`
}

func (s *ProjectService) Options(ctx context.Context) (*Options, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	responsibles := make([]string, 0)
	for _, rec := range records {
		if rec.Responsible == "" || seen[rec.Responsible] {
			continue
		}
		seen[rec.Responsible] = true
		responsibles = append(responsibles, rec.Responsible)
	}
	sort.Strings(responsibles)

	return &Options{
		Statuses:     entity.ProjectStatuses,
		Companies:    s.opts.Companies,
		Areas:        s.opts.Areas,
		Categories:   s.opts.Categories,
		Responsibles: responsibles,
	}, nil
}

func (s *ProjectService) snapshot(ctx context.Context) ([]entity.Project, error) {
	if records, ok := s.cache.Get(ctx); ok {
		return records, nil
	}
	records, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, records)
	return records, nil
}

// validate enforces the write-time rules: a known status, options from the
// configured lists when those lists are set, non-negative amounts and an
// ordered date window. Violations are rejected, never silently corrected.
func (s *ProjectService) validate(p *entity.Project) error {
	if !entity.ValidStatus(p.Status) {
		return fmt.Errorf("invalid status: %q", p.Status)
	}
	if !optionAllowed(s.opts.Companies, p.Company) {
		return fmt.Errorf("unknown company: %q", p.Company)
	}
	if !optionAllowed(s.opts.Categories, p.Category) {
		return fmt.Errorf("unknown category: %q", p.Category)
	}
	if !optionAllowed(s.opts.Areas, p.Area) {
		return fmt.Errorf("unknown area: %q", p.Area)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"budget", p.Budget},
		{"baseline", p.Baseline},
		{"best_proposal", p.BestProposal},
		{"initial_price", p.InitialPrice},
		{"final_price", p.FinalPrice},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s must not be negative", a.name)
		}
	}

	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return errors.New("end_date must not precede start_date")
	}
	return nil
}

// optionAllowed: an empty configured list or an empty value means no
// constraint.
func optionAllowed(list []string, v string) bool {
	if len(list) == 0 || v == "" {
		return true
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// parseDate reads a YYYY-MM-DD value; empty means no date. The parsed value
// is midnight UTC, so the date columns never carry a time-of-day.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return &t, nil
}
