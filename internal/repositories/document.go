package repositories

import (
	"context"
	"fmt"

	"veristate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository persists document verification outcomes, one row
// per (transaction, document type) slot.
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *models.Document) error
	ListByRef(ctx context.Context, ref string) ([]models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Upsert(ctx context.Context, doc *models.Document) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "transaction_ref"}, {Name: "document_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"filename", "size_bytes", "stored_path", "is_valid", "issues", "updated_at",
		}),
	}).Create(doc).Error
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (r *documentRepository) ListByRef(ctx context.Context, ref string) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.WithContext(ctx).Where("transaction_ref = ?", ref).Order("document_type asc").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
