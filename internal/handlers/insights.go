package handlers

import (
	"veristate/internal/models"
)

// PropertyTypeInsight aggregates evaluations for one property type.
type PropertyTypeInsight struct {
	PropertyType string `json:"property_type"`
	Evaluations  int    `json:"evaluations"`
	HighRisk     int    `json:"high_risk"`
}

// InsightsSummary is the aggregate view over the audit trail backing
// fraud dashboards.
type InsightsSummary struct {
	Total          int                   `json:"total"`
	ByTier         map[string]int        `json:"by_tier"`
	ByPropertyType []PropertyTypeInsight `json:"by_property_type"`
	ByMonth        map[string]int        `json:"by_month"`
}

// Summarize folds the audit history into dashboard series. Property
// types appear in declaration order; unknown ones follow in first-seen
// order.
func Summarize(records []models.EvaluationRecord) InsightsSummary {
	summary := InsightsSummary{
		Total:   len(records),
		ByTier:  make(map[string]int),
		ByMonth: make(map[string]int),
	}

	byType := make(map[string]*PropertyTypeInsight)
	var order []string
	for _, known := range models.PropertyTypes {
		byType[known] = &PropertyTypeInsight{PropertyType: known}
		order = append(order, known)
	}

	for _, r := range records {
		summary.ByTier[r.RiskTier]++
		if !r.CreatedAt.IsZero() {
			summary.ByMonth[r.CreatedAt.Format("2006-01")]++
		}

		insight, ok := byType[r.PropertyType]
		if !ok {
			insight = &PropertyTypeInsight{PropertyType: r.PropertyType}
			byType[r.PropertyType] = insight
			order = append(order, r.PropertyType)
		}
		insight.Evaluations++
		if r.RiskTier == "high" {
			insight.HighRisk++
		}
	}

	for _, name := range order {
		summary.ByPropertyType = append(summary.ByPropertyType, *byType[name])
	}
	return summary
}
