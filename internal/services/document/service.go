// Package document validates uploaded evidence files against the
// upload policy and retains them for audit. Validation issues are the
// nominal degraded path, not errors: a file that fails every rule is
// still stored so the evidence trail survives a rejected submission.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"veristate/internal/models"

	"go.uber.org/zap"
)

// Recorder persists document verification outcomes. A resubmission for
// the same slot replaces the prior record.
type Recorder interface {
	Upsert(ctx context.Context, doc *models.Document) error
}

// Service validates and stores uploaded documents.
type Service struct {
	store    Store
	recorder Recorder
	policy   Policy
	logger   *zap.Logger
}

// NewService creates a document verification service. Zero policy
// fields fall back to the defaults.
func NewService(store Store, recorder Recorder, policy Policy, logger *zap.Logger) *Service {
	if store == nil {
		panic("store is required")
	}
	if policy.MaxSizeBytes <= 0 {
		policy.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if len(policy.AllowedExtensions) == 0 {
		policy.AllowedExtensions = DefaultAllowedExtensions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		recorder: recorder,
		policy:   policy,
		logger:   logger,
	}
}

// Verify validates one slot against the policy, stores the bytes, and
// records the outcome. Size and extension rules are independent, so a
// single file can accumulate multiple issues. The file is stored even
// when validation fails; only a storage failure is an error.
func (s *Service) Verify(ctx context.Context, slot Slot) (VerificationResult, error) {
	if slot.TransactionRef == "" || slot.DocumentType == "" {
		return VerificationResult{}, ErrEmptySlot
	}

	result := VerificationResult{
		DocumentType: slot.DocumentType,
		SizeBytes:    int64(len(slot.Data)),
	}

	if result.SizeBytes > s.policy.MaxSizeBytes {
		result.Issues = append(result.Issues,
			fmt.Sprintf("File size exceeds %dMB limit", s.policy.MaxSizeBytes>>20))
	}
	if !s.extensionAllowed(slot.Filename) {
		result.Issues = append(result.Issues,
			fmt.Sprintf("File type %q is not allowed", filepath.Ext(slot.Filename)))
	}
	result.IsValid = len(result.Issues) == 0

	path, err := s.store.Save(slot.TransactionRef, slot.DocumentType, slot.Filename, slot.Data)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	result.StoredPath = path

	if s.recorder != nil {
		doc := &models.Document{
			TransactionRef: slot.TransactionRef,
			DocumentType:   slot.DocumentType,
			Filename:       slot.Filename,
			SizeBytes:      result.SizeBytes,
			StoredPath:     path,
			IsValid:        result.IsValid,
			Issues:         result.Issues,
		}
		if err := s.recorder.Upsert(ctx, doc); err != nil {
			return result, fmt.Errorf("record document: %w", err)
		}
	}

	s.logger.Info("document verified",
		zap.String("transaction_ref", slot.TransactionRef),
		zap.String("document_type", slot.DocumentType),
		zap.Bool("is_valid", result.IsValid),
		zap.Int64("size_bytes", result.SizeBytes),
	)
	return result, nil
}

// Missing is the canonical result for a required document that was
// never submitted, distinct from "submitted but invalid".
func Missing(documentType string) VerificationResult {
	return VerificationResult{
		DocumentType: documentType,
		IsValid:      false,
		Issues:       []string{IssueNotUploaded},
	}
}

func (s *Service) extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.policy.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
