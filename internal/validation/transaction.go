package validation

import (
	"veristate/internal/models"
)

// Transaction validates a declared transaction before intake. The
// coordinate checks gate distance computation: out-of-range values are
// rejected here, never clamped downstream.
func (v *Validator) Transaction(tx *models.Transaction) {
	v.Required("buyer_name", tx.BuyerName)
	v.Required("seller_name", tx.SellerName)
	v.Required("ssn_last4", tx.SSNLast4)
	v.OneOf("property_type", tx.PropertyType, models.PropertyTypes)

	v.Positive("property_value", tx.PropertyValue)
	v.Check(tx.MortgageAmount >= 0, "mortgage_amount", "must not be negative")
	v.Check(tx.PropertyArea >= 0, "property_area", "must not be negative")
	v.Range("month", float64(tx.Month), 1, 12)
	v.Check(tx.ProcessingDays >= 0, "processing_days", "must not be negative")

	v.Latitude("property_lat", tx.PropertyLat)
	v.Longitude("property_long", tx.PropertyLong)
	v.Latitude("buyer_lat", tx.BuyerLat)
	v.Longitude("buyer_long", tx.BuyerLong)
}
