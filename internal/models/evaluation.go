package models

import (
	"time"
)

// CheckOutcome is the result of running one catalog check during an
// evaluation.
type CheckOutcome struct {
	CheckID       string  `json:"check_id"`
	ObservedValue float64 `json:"observed_value"`
	Threshold     float64 `json:"threshold"`
	Comparison    string  `json:"comparison"`
	RiskLevel     string  `json:"risk_level"`
	Passed        bool    `json:"passed"`
}

// DocumentOutcome is the per-document section of an evaluation record.
type DocumentOutcome struct {
	DocumentType string   `json:"document_type"`
	IsValid      bool     `json:"is_valid"`
	Issues       []string `json:"issues,omitempty"`
	SizeBytes    int64    `json:"size_bytes,omitempty"`
	StoredPath   string   `json:"stored_path,omitempty"`
}

// EvaluationRecord is the durable result of running all catalog checks
// once for one transaction. Records are append-only: once written to
// the audit store they are never mutated or deleted.
type EvaluationRecord struct {
	ID             uint              `gorm:"primarykey" json:"id"`
	TransactionRef string            `gorm:"index;not null" json:"transaction_ref"`
	BuyerName      string            `json:"buyer_name"`
	SellerName     string            `json:"seller_name"`
	PropertyType   string            `json:"property_type"`
	Checks         []CheckOutcome    `gorm:"serializer:json" json:"checks"`
	Documents      []DocumentOutcome `gorm:"serializer:json" json:"documents"`
	RiskScore      int               `json:"risk_score"`
	RiskTier       string            `gorm:"index" json:"risk_tier"`
	ModelLabel     *int              `json:"model_label,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
