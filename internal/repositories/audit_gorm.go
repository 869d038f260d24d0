package repositories

import (
	"context"
	"fmt"
	"time"

	"veristate/internal/models"

	"gorm.io/gorm"
)

// GormAuditLog stores evaluation records in a PostgreSQL table.
// Inserts are row-atomic, so concurrent appends need no extra
// coordination here.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

func (l *GormAuditLog) Append(ctx context.Context, record *models.EvaluationRecord) (uint, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := l.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, fmt.Errorf("append evaluation record: %w", err)
	}
	return record.ID, nil
}

func (l *GormAuditLog) List(ctx context.Context) ([]models.EvaluationRecord, error) {
	var records []models.EvaluationRecord
	if err := l.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuditUnavailable, err)
	}
	return records, nil
}
