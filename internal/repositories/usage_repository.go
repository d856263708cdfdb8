package repositories

import (
	"context"

	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type UsageRepositoryInterface interface {
	RecordUsage(ctx context.Context, usage *db_models.CompletionUsage) error
	ListUsageBySession(ctx context.Context, sessionID string, page, pageSize int) ([]db_models.CompletionUsage, error)
}

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) RecordUsage(ctx context.Context, usage *db_models.CompletionUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *UsageRepository) ListUsageBySession(ctx context.Context, sessionID string, page, pageSize int) ([]db_models.CompletionUsage, error) {
	var usages []db_models.CompletionUsage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&usages).Error
	return usages, err
}

// NoopUsageRepository stands in when no database is configured. Requests
// still work; usage rows are just not kept.
type NoopUsageRepository struct{}

func NewNoopUsageRepository() *NoopUsageRepository {
	return &NoopUsageRepository{}
}

func (r *NoopUsageRepository) RecordUsage(ctx context.Context, usage *db_models.CompletionUsage) error {
	return nil
}

func (r *NoopUsageRepository) ListUsageBySession(ctx context.Context, sessionID string, page, pageSize int) ([]db_models.CompletionUsage, error) {
	return []db_models.CompletionUsage{}, nil
}
