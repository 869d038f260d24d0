package document

// Default upload policy values.
const (
	DefaultMaxSizeBytes = 10 << 20 // 10 MiB
)

// DefaultAllowedExtensions are the file extensions accepted when the
// policy does not override them.
var DefaultAllowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

// Policy configures upload validation.
type Policy struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

// Slot is one uploaded file bound to a transaction and a named
// document type.
type Slot struct {
	TransactionRef string
	DocumentType   string
	Filename       string
	Data           []byte
}

// VerificationResult captures the outcome of validating one slot.
// IsValid is true exactly when Issues is empty.
type VerificationResult struct {
	DocumentType string   `json:"document_type"`
	IsValid      bool     `json:"is_valid"`
	Issues       []string `json:"issues,omitempty"`
	SizeBytes    int64    `json:"size_bytes"`
	StoredPath   string   `json:"stored_path,omitempty"`
}
