package service

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/flaviorefit/projetos/internal/config"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
)

// Services bundles the procurement services for wiring.
type Services struct {
	Auth       *AuthService
	Project    *ProjectService
	Dashboard  *DashboardService
	Export     *ExportService
	Attachment *AttachmentService
}

// NewServices wires the service layer. Redis and MinIO are optional: a nil
// Redis client disables the snapshot cache and refresh token rotation, a
// missing MinIO endpoint disables attachments.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("minio client unavailable, attachments disabled", zap.Error(err))
			minioClient = nil
		}
	}
	if minioClient != nil {
		ctx := context.Background()
		exists, err := minioClient.BucketExists(ctx, cfg.MinIO.Bucket)
		if err != nil {
			logger.Warn("minio bucket check failed", zap.String("bucket", cfg.MinIO.Bucket), zap.Error(err))
		} else if !exists {
			if err := minioClient.MakeBucket(ctx, cfg.MinIO.Bucket, minio.MakeBucketOptions{}); err != nil {
				logger.Warn("minio bucket create failed", zap.String("bucket", cfg.MinIO.Bucket), zap.Error(err))
			}
		}
	}

	cache := NewSnapshotCache(rdb, cfg.Procurement.SnapshotTTL, logger)
	projectSvc := NewProjectService(repos.Projects, cache, cfg.Procurement, logger)

	return &Services{
		Auth:       NewAuthService(cfg.Auth.Users, rdb, cfg.JWT),
		Project:    projectSvc,
		Dashboard:  NewDashboardService(projectSvc),
		Export:     NewExportService(projectSvc),
		Attachment: NewAttachmentService(repos.Attachments, repos.Projects, minioClient, cfg.MinIO.Bucket),
	}
}
