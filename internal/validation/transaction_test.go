package validation

import (
	"testing"

	"veristate/internal/models"

	"github.com/stretchr/testify/assert"
)

func validTransaction() models.Transaction {
	return models.Transaction{
		BuyerName:      "Ada Obi",
		SellerName:     "Bola Ade",
		PropertyType:   models.PropertyTypeResidential,
		PropertyValue:  250_000,
		MortgageAmount: 100_000,
		PropertyLat:    6.5244,
		PropertyLong:   3.3792,
		BuyerLat:       6.4550,
		BuyerLong:      3.3841,
		Month:          6,
		SSNLast4:       "6789",
	}
}

func TestTransactionValidation(t *testing.T) {
	t.Run("valid transaction", func(t *testing.T) {
		v := New()
		tx := validTransaction()
		v.Transaction(&tx)
		assert.True(t, v.Valid(), v.Errors)
	})

	tests := []struct {
		name      string
		mutate    func(*models.Transaction)
		wantField string
	}{
		{"blank buyer", func(tx *models.Transaction) { tx.BuyerName = " " }, "buyer_name"},
		{"blank ssn", func(tx *models.Transaction) { tx.SSNLast4 = "" }, "ssn_last4"},
		{"unknown property type", func(tx *models.Transaction) { tx.PropertyType = "Castle" }, "property_type"},
		{"zero value", func(tx *models.Transaction) { tx.PropertyValue = 0 }, "property_value"},
		{"negative mortgage", func(tx *models.Transaction) { tx.MortgageAmount = -1 }, "mortgage_amount"},
		{"month out of range", func(tx *models.Transaction) { tx.Month = 13 }, "month"},
		{"latitude out of range", func(tx *models.Transaction) { tx.PropertyLat = 95 }, "property_lat"},
		{"longitude out of range", func(tx *models.Transaction) { tx.BuyerLong = -190 }, "buyer_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tx := validTransaction()
			tt.mutate(&tx)
			v.Transaction(&tx)
			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.wantField)
		})
	}
}
