package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// ProjectRepository owns durable storage for project records. Uniqueness of
// the business id is enforced here, by the primary key, not by the id
// generator.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll returns the full record set in insertion order. The filter layer is
// order-preserving, so this ordering is what the grid ultimately shows.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Insert stores a new record. A primary-key collision comes back as
// ErrDuplicateID so the caller can regenerate the id and retry.
func (r *ProjectRepository) Insert(ctx context.Context, project *entity.Project) error {
	err := r.db.WithContext(ctx).Create(project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Update persists a full row previously loaded through FindByID.
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a record by id and reports how many rows went away.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Project{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ListIDs returns every id carrying the prefix. The sequence generator parses
// and reduces them; ids that merely look similar are its problem to skip.
func (r *ProjectRepository) ListIDs(ctx context.Context, prefix string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("id LIKE ?", prefix+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
