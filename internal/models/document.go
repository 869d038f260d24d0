package models

import (
	"time"
)

// Document is the stored verification outcome for one uploaded piece
// of evidence. A resubmission for the same (transaction, type) pair
// overwrites this record, but previously stored evidence files are
// never deleted.
type Document struct {
	ID             uint      `gorm:"primarykey" json:"-"`
	TransactionRef string    `gorm:"index:idx_doc_slot,unique;not null" json:"transaction_ref"`
	DocumentType   string    `gorm:"index:idx_doc_slot,unique;not null" json:"document_type"`
	Filename       string    `json:"filename"`
	SizeBytes      int64     `json:"size_bytes"`
	StoredPath     string    `json:"stored_path"`
	IsValid        bool      `json:"is_valid"`
	Issues         []string  `gorm:"serializer:json" json:"issues,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
