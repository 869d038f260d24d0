// Package catalog loads and serves the fraud check definitions that
// govern one deployment. The catalog is read once at startup and is
// immutable afterwards, so concurrent reads need no synchronization.
package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Check categories. Each category determines which observation field
// the evaluator compares and which fields a definition must carry.
type Category string

const (
	CategoryDistance             Category = "distance"
	CategoryPropertyValue        Category = "property_value"
	CategoryMortgageRatio        Category = "mortgage_ratio"
	CategoryTiming               Category = "timing"
	CategoryPricePerArea         Category = "price_per_area"
	CategoryDocumentCompleteness Category = "document_completeness"
)

// Comparison direction for numeric checks. A check passes when the
// observed value satisfies the comparison against the threshold.
type Comparison string

const (
	ComparisonLTE Comparison = "lte"
	ComparisonGTE Comparison = "gte"
)

// RiskLevel is both the severity of a single check and the final tier
// of an evaluation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CheckDefinition is one configured fraud check.
type CheckDefinition struct {
	ID                string     `mapstructure:"id"`
	DisplayName       string     `mapstructure:"display_name"`
	Category          Category   `mapstructure:"category"`
	Comparison        Comparison `mapstructure:"comparison"`
	Threshold         float64    `mapstructure:"threshold"`
	Unit              string     `mapstructure:"unit"`
	RiskLevel         RiskLevel  `mapstructure:"risk_level"`
	RequiredDocuments []string   `mapstructure:"required_documents"`
}

// Passes reports whether an observed value satisfies the check's
// comparison. Equality passes in both directions.
func (c CheckDefinition) Passes(observed float64) bool {
	if c.Comparison == ComparisonGTE {
		return observed >= c.Threshold
	}
	return observed <= c.Threshold
}

// Catalog is the immutable set of check definitions, risk weights, and
// tier cutoffs loaded from a catalog document.
type Catalog struct {
	checks       []CheckDefinition
	byID         map[string]int
	weights      map[RiskLevel]int
	mediumCutoff int
	highCutoff   int
}

type catalogFile struct {
	RiskWeights struct {
		Low    int `mapstructure:"low"`
		Medium int `mapstructure:"medium"`
		High   int `mapstructure:"high"`
	} `mapstructure:"risk_weights"`
	TierCutoffs struct {
		Medium int `mapstructure:"medium"`
		High   int `mapstructure:"high"`
	} `mapstructure:"tier_cutoffs"`
	Checks []CheckDefinition `mapstructure:"checks"`
}

// Load reads a catalog document from path and validates it. Structural
// defects are reported up front so evaluation never encounters a
// malformed definition.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return build(file)
}

func build(file catalogFile) (*Catalog, error) {
	if file.RiskWeights.Low <= 0 || file.RiskWeights.Medium <= 0 || file.RiskWeights.High <= 0 {
		return nil, fmt.Errorf("%w: risk weights must be positive", ErrInvalidCatalog)
	}
	if file.RiskWeights.Low >= file.RiskWeights.Medium || file.RiskWeights.Medium >= file.RiskWeights.High {
		return nil, fmt.Errorf("%w: risk weights must increase from low to high", ErrInvalidCatalog)
	}
	if file.TierCutoffs.Medium <= 0 || file.TierCutoffs.High <= file.TierCutoffs.Medium {
		return nil, fmt.Errorf("%w: tier cutoffs must satisfy 0 < medium < high", ErrInvalidCatalog)
	}
	if len(file.Checks) == 0 {
		return nil, fmt.Errorf("%w: no checks defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		checks: file.Checks,
		byID:   make(map[string]int, len(file.Checks)),
		weights: map[RiskLevel]int{
			RiskLow:    file.RiskWeights.Low,
			RiskMedium: file.RiskWeights.Medium,
			RiskHigh:   file.RiskWeights.High,
		},
		mediumCutoff: file.TierCutoffs.Medium,
		highCutoff:   file.TierCutoffs.High,
	}

	for i, def := range file.Checks {
		if err := validateCheck(def); err != nil {
			return nil, err
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate check id %q", ErrInvalidCatalog, def.ID)
		}
		c.byID[def.ID] = i
	}

	return c, nil
}

func validateCheck(def CheckDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: check with empty id", ErrInvalidCatalog)
	}
	switch def.Category {
	case CategoryDistance, CategoryPropertyValue, CategoryMortgageRatio,
		CategoryTiming, CategoryPricePerArea:
	case CategoryDocumentCompleteness:
		if len(def.RequiredDocuments) == 0 {
			return fmt.Errorf("%w: check %q requires a required_documents list", ErrInvalidCatalog, def.ID)
		}
	default:
		return fmt.Errorf("%w: check %q has unknown category %q", ErrInvalidCatalog, def.ID, def.Category)
	}
	switch def.Comparison {
	case ComparisonLTE, ComparisonGTE:
	default:
		return fmt.Errorf("%w: check %q has unknown comparison %q", ErrInvalidCatalog, def.ID, def.Comparison)
	}
	switch def.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return fmt.Errorf("%w: check %q has unknown risk level %q", ErrInvalidCatalog, def.ID, def.RiskLevel)
	}
	return nil
}

// Checks returns the definitions in catalog order.
func (c *Catalog) Checks() []CheckDefinition {
	out := make([]CheckDefinition, len(c.checks))
	copy(out, c.checks)
	return out
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (CheckDefinition, error) {
	i, ok := c.byID[id]
	if !ok {
		return CheckDefinition{}, fmt.Errorf("%w: %q", ErrCheckNotFound, id)
	}
	return c.checks[i], nil
}

// Weight returns the integer weight configured for a risk level.
func (c *Catalog) Weight(level RiskLevel) int {
	return c.weights[level]
}

// Tier maps an aggregate score onto the configured score bands.
func (c *Catalog) Tier(score int) RiskLevel {
	switch {
	case score >= c.highCutoff:
		return RiskHigh
	case score >= c.mediumCutoff:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RequiredDocuments returns the ordered union of document names across
// all document_completeness checks, for upload collaborators that need
// to know what to request.
func (c *Catalog) RequiredDocuments() []string {
	var out []string
	seen := make(map[string]bool)
	for _, def := range c.checks {
		if def.Category != CategoryDocumentCompleteness {
			continue
		}
		for _, name := range def.RequiredDocuments {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
