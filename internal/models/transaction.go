package models

import (
	"time"
)

// Property types accepted on intake.
const (
	PropertyTypeResidential = "Residential"
	PropertyTypeCommercial  = "Commercial"
	PropertyTypeIndustrial  = "Industrial"
	PropertyTypeLand        = "Land"
)

// PropertyTypes lists the accepted property types in display order.
var PropertyTypes = []string{
	PropertyTypeResidential,
	PropertyTypeCommercial,
	PropertyTypeIndustrial,
	PropertyTypeLand,
}

// Transaction is a declared real-estate transaction awaiting fraud
// assessment. Ref is the external identifier callers use to attach
// documents and request evaluations.
type Transaction struct {
	ID             uint      `gorm:"primarykey" json:"-"`
	Ref            string    `gorm:"uniqueIndex;not null" json:"ref"`
	BuyerName      string    `gorm:"not null" json:"buyer_name"`
	SellerName     string    `gorm:"not null" json:"seller_name"`
	PropertyType   string    `gorm:"not null" json:"property_type"`
	PropertyValue  float64   `gorm:"not null" json:"property_value"`
	MortgageAmount float64   `json:"mortgage_amount"`
	PropertyArea   float64   `json:"property_area"` // square meters, optional
	PropertyLat    float64   `json:"property_lat"`
	PropertyLong   float64   `json:"property_long"`
	BuyerLat       float64   `json:"buyer_lat"`
	BuyerLong      float64   `json:"buyer_long"`
	Month          int       `json:"month"`
	BuyerGender    string    `json:"buyer_gender"`
	SSNLast4       string    `gorm:"column:ssn_last4" json:"ssn_last4"`
	ProcessingDays int       `json:"processing_days"`
	CreatedAt      time.Time `json:"created_at"`
}

// MortgageRatio returns mortgage/value, or 0 when the value is not
// positive.
func (t *Transaction) MortgageRatio() float64 {
	if t.PropertyValue <= 0 {
		return 0
	}
	return t.MortgageAmount / t.PropertyValue
}

// PricePerArea returns value/area, or 0 when the area is not positive.
func (t *Transaction) PricePerArea() float64 {
	if t.PropertyArea <= 0 {
		return 0
	}
	return t.PropertyValue / t.PropertyArea
}
