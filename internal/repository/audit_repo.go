package repository

import (
	"context"

	"supportcenter/internal/model"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

// ListRecent returns at most limit entries, newest first.
func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	logs := make([]model.AuditLog, 0, limit)
	if err := GetDB(ctx, r.db).Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
