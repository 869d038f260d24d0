package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
risk_weights:
  low: 1
  medium: 2
  high: 3
tier_cutoffs:
  medium: 3
  high: 6
checks:
  - id: buyer_distance
    display_name: Buyer distance from property
    category: distance
    comparison: lte
    threshold: 100
    unit: km
    risk_level: high
  - id: processing_time
    display_name: Processing time
    category: timing
    comparison: gte
    threshold: 7
    unit: days
    risk_level: medium
  - id: supporting_documents
    display_name: Supporting documents
    category: document_completeness
    comparison: lte
    threshold: 0
    risk_level: high
    required_documents:
      - deed
      - title_report
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	assert.Len(t, cat.Checks(), 3)
	assert.Equal(t, 1, cat.Weight(RiskLow))
	assert.Equal(t, 2, cat.Weight(RiskMedium))
	assert.Equal(t, 3, cat.Weight(RiskHigh))

	def, err := cat.Get("buyer_distance")
	require.NoError(t, err)
	assert.Equal(t, CategoryDistance, def.Category)
	assert.Equal(t, 100.0, def.Threshold)

	_, err = cat.Get("no_such_check")
	assert.ErrorIs(t, err, ErrCheckNotFound)

	assert.Equal(t, []string{"deed", "title_report"}, cat.RequiredDocuments())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "completeness check without documents",
			content: `
risk_weights: {low: 1, medium: 2, high: 3}
tier_cutoffs: {medium: 3, high: 6}
checks:
  - {id: docs, category: document_completeness, comparison: lte, threshold: 0, risk_level: high}
`,
		},
		{
			name: "unknown category",
			content: `
risk_weights: {low: 1, medium: 2, high: 3}
tier_cutoffs: {medium: 3, high: 6}
checks:
  - {id: x, category: astrology, comparison: lte, threshold: 1, risk_level: low}
`,
		},
		{
			name: "duplicate id",
			content: `
risk_weights: {low: 1, medium: 2, high: 3}
tier_cutoffs: {medium: 3, high: 6}
checks:
  - {id: x, category: distance, comparison: lte, threshold: 1, risk_level: low}
  - {id: x, category: timing, comparison: gte, threshold: 1, risk_level: low}
`,
		},
		{
			name: "non-increasing weights",
			content: `
risk_weights: {low: 2, medium: 2, high: 3}
tier_cutoffs: {medium: 3, high: 6}
checks:
  - {id: x, category: distance, comparison: lte, threshold: 1, risk_level: low}
`,
		},
		{
			name: "inverted cutoffs",
			content: `
risk_weights: {low: 1, medium: 2, high: 3}
tier_cutoffs: {medium: 6, high: 3}
checks:
  - {id: x, category: distance, comparison: lte, threshold: 1, risk_level: low}
`,
		},
		{
			name: "unknown comparison",
			content: `
risk_weights: {low: 1, medium: 2, high: 3}
tier_cutoffs: {medium: 3, high: 6}
checks:
  - {id: x, category: distance, comparison: eq, threshold: 1, risk_level: low}
`,
		},
		{
			name:    "no checks",
			content: "risk_weights: {low: 1, medium: 2, high: 3}\ntier_cutoffs: {medium: 3, high: 6}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestCheckDefinition_Passes(t *testing.T) {
	lte := CheckDefinition{Comparison: ComparisonLTE, Threshold: 100}
	gte := CheckDefinition{Comparison: ComparisonGTE, Threshold: 7}

	assert.True(t, lte.Passes(80))
	assert.True(t, lte.Passes(100)) // boundary passes
	assert.False(t, lte.Passes(150))

	assert.True(t, gte.Passes(10))
	assert.True(t, gte.Passes(7)) // boundary passes
	assert.False(t, gte.Passes(2))
}

func TestCatalog_Tier(t *testing.T) {
	cat, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	assert.Equal(t, RiskLow, cat.Tier(0))
	assert.Equal(t, RiskLow, cat.Tier(2))
	assert.Equal(t, RiskMedium, cat.Tier(3))
	assert.Equal(t, RiskMedium, cat.Tier(5))
	assert.Equal(t, RiskHigh, cat.Tier(6))
	assert.Equal(t, RiskHigh, cat.Tier(40))
}
