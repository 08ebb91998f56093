package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
)

// AttachmentRepository stores attachment metadata rows. The file bytes live
// in object storage, addressed by ObjectKey.
type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Insert(ctx context.Context, att *entity.Attachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id string) (*entity.Attachment, error) {
	var att entity.Attachment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *AttachmentRepository) ListByProject(ctx context.Context, projectID string) ([]entity.Attachment, error) {
	atts := make([]entity.Attachment, 0)
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Attachment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
