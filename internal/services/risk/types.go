package risk

import (
	"veristate/internal/services/document"
)

// Observation holds the derived facts about one transaction that the
// catalog checks compare against. It is immutable once built; an
// evaluation never reaches back to the raw transaction.
type Observation struct {
	TransactionRef string
	BuyerName      string
	SellerName     string
	PropertyType   string
	BuyerGender    string
	SSNLast4       string
	Month          int

	// DistanceKm is nil when the buyer/property coordinates were
	// absent or invalid; it is never defaulted to zero.
	DistanceKm     *float64
	PropertyValue  float64
	MortgageAmount float64
	MortgageRatio  float64
	ProcessingDays float64
	PricePerArea   float64

	// Documents maps document type names to their verification
	// results for the slots that were actually submitted.
	Documents map[string]document.VerificationResult
}
