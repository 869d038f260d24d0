package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryEncoder_Known(t *testing.T) {
	enc := NewCategoryEncoder(map[string][]string{
		"property_type": {"Residential", "Commercial", "Industrial", "Land"},
	})

	feature := enc.Encode("property_type", "Industrial")
	known, ok := feature.(KnownCategory)
	assert.True(t, ok)
	assert.Equal(t, 2, known.Index)
	assert.Equal(t, 2.0, feature.Value())
}

func TestCategoryEncoder_UnknownFallsBackToSurrogate(t *testing.T) {
	enc := NewCategoryEncoder(map[string][]string{
		"property_type": {"Residential"},
	})

	feature := enc.Encode("property_type", "Castle")
	unknown, ok := feature.(UnknownCategory)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, unknown.Surrogate, 0)
	assert.Less(t, unknown.Surrogate, 1000)

	// Unvocabularied fields degrade the same way.
	again := enc.Encode("buyer_name", "Ada Obi")
	_, ok = again.(UnknownCategory)
	assert.True(t, ok)
}

func TestCategoryEncoder_Deterministic(t *testing.T) {
	enc := NewCategoryEncoder(nil)

	a := enc.Encode("buyer_name", "Ada Obi")
	b := enc.Encode("buyer_name", "Ada Obi")
	assert.Equal(t, a, b)
}

func TestCategoryEncoder_SSN(t *testing.T) {
	enc := NewCategoryEncoder(nil)

	feature := enc.EncodeSSN("6789")
	unknown, ok := feature.(UnknownCategory)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, unknown.Surrogate, 0)
	assert.Less(t, unknown.Surrogate, 10000)
	assert.Equal(t, feature, enc.EncodeSSN("6789"))
}
