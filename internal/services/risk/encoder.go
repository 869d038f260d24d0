package risk

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Surrogate moduli. Unseen categorical values are mapped to a stable
// hash bucket instead of failing the request; SSN fragments are always
// hashed.
const (
	categorySurrogateMod = 1000
	ssnSurrogateMod      = 10000
)

// EncodedFeature is one categorical value encoded for the model
// collaborator. The two branches make the unseen-category fallback an
// explicit case rather than a side effect of a failed lookup.
type EncodedFeature interface {
	Value() float64
}

// KnownCategory is a value present in the encoder vocabulary.
type KnownCategory struct {
	Index int
}

func (k KnownCategory) Value() float64 { return float64(k.Index) }

// UnknownCategory is a value absent from the vocabulary, carrying a
// deterministic hash surrogate.
type UnknownCategory struct {
	Surrogate int
}

func (u UnknownCategory) Value() float64 { return float64(u.Surrogate) }

// CategoryEncoder maps categorical fields to numeric features using a
// fixed vocabulary per field, falling back to a hash surrogate for
// values the vocabulary has never seen.
type CategoryEncoder struct {
	vocab map[string]map[string]int
}

// NewCategoryEncoder builds an encoder from per-field vocabularies.
// Each field's values are indexed in slice order.
func NewCategoryEncoder(fields map[string][]string) *CategoryEncoder {
	vocab := make(map[string]map[string]int, len(fields))
	for field, values := range fields {
		idx := make(map[string]int, len(values))
		for i, v := range values {
			idx[v] = i
		}
		vocab[field] = idx
	}
	return &CategoryEncoder{vocab: vocab}
}

// Encode returns the encoded feature for one field value.
func (e *CategoryEncoder) Encode(field, value string) EncodedFeature {
	if classes, ok := e.vocab[field]; ok {
		if i, ok := classes[value]; ok {
			return KnownCategory{Index: i}
		}
	}
	return UnknownCategory{Surrogate: surrogate(value, categorySurrogateMod)}
}

// EncodeSSN returns the surrogate for an SSN fragment. SSNs never
// enter a vocabulary; they are always hashed.
func (e *CategoryEncoder) EncodeSSN(ssn string) EncodedFeature {
	return UnknownCategory{Surrogate: surrogate(ssn, ssnSurrogateMod)}
}

func surrogate(value string, mod int) int {
	sum := sha3.Sum256([]byte(value))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(mod))
}
