package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/flaviorefit/projetos/internal/procurement/entity"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
)

// ErrStorageNotConfigured is returned when object storage is required but no
// MinIO client was wired in.
var ErrStorageNotConfigured = errors.New("storage not configured")

// AttachmentService stores project files in MinIO and their metadata in the
// database.
type AttachmentService struct {
	attachmentRepo *repository.AttachmentRepository
	projectRepo    *repository.ProjectRepository
	minioClient    *minio.Client
	bucketName     string
}

func NewAttachmentService(
	attachmentRepo *repository.AttachmentRepository,
	projectRepo *repository.ProjectRepository,
	minioClient *minio.Client,
	bucketName string,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		projectRepo:    projectRepo,
		minioClient:    minioClient,
		bucketName:     bucketName,
	}
}

// Upload stores the file under the project's prefix and records its metadata.
// The project must exist first.
func (s *AttachmentService) Upload(ctx context.Context, projectID, userID string, reader io.Reader, fileName string, fileSize int64, contentType string) (*entity.Attachment, error) {
	if s.minioClient == nil {
		return nil, ErrStorageNotConfigured
	}

	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("projects/%s/%s%s", projectID, uuid.New().String()[:8], filepath.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectKey, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	attachment := &entity.Attachment{
		ID:         uuid.New().String()[:32],
		ProjectID:  projectID,
		FileName:   fileName,
		ObjectKey:  objectKey,
		FileSize:   fileSize,
		MimeType:   contentType,
		UploadedBy: userID,
		CreatedAt:  time.Now(),
	}

	if err := s.attachmentRepo.Insert(ctx, attachment); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}

	return attachment, nil
}

// List returns a project's attachments, oldest first.
func (s *AttachmentService) List(ctx context.Context, projectID string) ([]entity.Attachment, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.attachmentRepo.ListByProject(ctx, projectID)
}

// Download opens the stored object. The caller owns the reader.
func (s *AttachmentService) Download(ctx context.Context, id string) (io.ReadCloser, *entity.Attachment, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if s.minioClient == nil {
		return nil, nil, ErrStorageNotConfigured
	}

	object, err := s.minioClient.GetObject(ctx, s.bucketName, attachment.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("get object: %w", err)
	}

	return object, attachment, nil
}

// Delete removes the stored object, then the metadata row.
func (s *AttachmentService) Delete(ctx context.Context, id string) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if s.minioClient != nil {
		if err := s.minioClient.RemoveObject(ctx, s.bucketName, attachment.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("remove object: %w", err)
		}
	}

	return s.attachmentRepo.Delete(ctx, id)
}
