package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound means the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID means an insert lost the id race: the business id already
// exists. The caller regenerates the id and retries.
var ErrDuplicateID = errors.New("duplicate project id")

// Repositories bundles the data access layer.
type Repositories struct {
	Projects    *ProjectRepository
	Attachments *AttachmentRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:    NewProjectRepository(db),
		Attachments: NewAttachmentRepository(db),
	}
}
