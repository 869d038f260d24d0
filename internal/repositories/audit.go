package repositories

import (
	"context"

	"veristate/internal/models"
)

// AuditLog is the append-only evaluation history. Append is atomic
// with respect to concurrent appends; List returns every record in
// insertion order and may be called repeatedly. No operation mutates
// or removes an existing record.
type AuditLog interface {
	Append(ctx context.Context, record *models.EvaluationRecord) (uint, error)
	List(ctx context.Context) ([]models.EvaluationRecord, error)
}
