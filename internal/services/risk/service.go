// Package risk runs the catalog checks against a transaction
// observation and aggregates the failed checks into a risk tier. The
// evaluator is generic over comparison direction and risk weights;
// everything tunable lives in the catalog, not here.
package risk

import (
	"context"
	"fmt"
	"sort"

	"veristate/internal/catalog"
	"veristate/internal/geo"
	"veristate/internal/models"
	"veristate/internal/services/document"

	"go.uber.org/zap"
)

// Appender is the audit log capability the assessment path needs.
type Appender interface {
	Append(ctx context.Context, record *models.EvaluationRecord) (uint, error)
}

// Service evaluates observations against the loaded catalog.
type Service struct {
	catalog    *catalog.Catalog
	encoder    *CategoryEncoder
	classifier Classifier
	audit      Appender
	logger     *zap.Logger
}

// NewService creates a risk evaluation service. The classifier may be
// nil; the audit appender is required for Assess but not Evaluate.
func NewService(cat *catalog.Catalog, encoder *CategoryEncoder, classifier Classifier, audit Appender, logger *zap.Logger) *Service {
	if cat == nil {
		panic("catalog is required")
	}
	if encoder == nil {
		encoder = NewCategoryEncoder(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:    cat,
		encoder:    encoder,
		classifier: classifier,
		audit:      audit,
		logger:     logger,
	}
}

// BuildObservation derives an Observation from a stored transaction
// and its verified documents, computing the buyer-to-property distance.
// Invalid coordinates leave DistanceKm nil, which Evaluate later
// rejects as incomplete.
func BuildObservation(tx *models.Transaction, docs []models.Document) Observation {
	obs := Observation{
		TransactionRef: tx.Ref,
		BuyerName:      tx.BuyerName,
		SellerName:     tx.SellerName,
		PropertyType:   tx.PropertyType,
		BuyerGender:    tx.BuyerGender,
		SSNLast4:       tx.SSNLast4,
		Month:          tx.Month,
		PropertyValue:  tx.PropertyValue,
		MortgageAmount: tx.MortgageAmount,
		MortgageRatio:  tx.MortgageRatio(),
		ProcessingDays: float64(tx.ProcessingDays),
		PricePerArea:   tx.PricePerArea(),
		Documents:      make(map[string]document.VerificationResult, len(docs)),
	}

	property := geo.Coordinate{Latitude: tx.PropertyLat, Longitude: tx.PropertyLong}
	buyer := geo.Coordinate{Latitude: tx.BuyerLat, Longitude: tx.BuyerLong}
	if km, err := geo.Distance(property, buyer); err == nil {
		obs.DistanceKm = &km
	}

	for _, doc := range docs {
		obs.Documents[doc.DocumentType] = document.VerificationResult{
			DocumentType: doc.DocumentType,
			IsValid:      doc.IsValid,
			Issues:       doc.Issues,
			SizeBytes:    doc.SizeBytes,
			StoredPath:   doc.StoredPath,
		}
	}
	return obs
}

// Evaluate runs every catalog check against the observation and
// returns the resulting record. It is deterministic: identical
// observation and catalog produce an identical record apart from the
// timestamp the store assigns. Nothing is persisted here.
func (s *Service) Evaluate(ctx context.Context, obs Observation) (*models.EvaluationRecord, error) {
	if err := s.checkComplete(obs); err != nil {
		return nil, err
	}

	record := &models.EvaluationRecord{
		TransactionRef: obs.TransactionRef,
		BuyerName:      obs.BuyerName,
		SellerName:     obs.SellerName,
		PropertyType:   obs.PropertyType,
	}

	score := 0
	for _, def := range s.catalog.Checks() {
		outcome := s.runCheck(def, obs)
		if !outcome.Passed {
			score += s.catalog.Weight(def.RiskLevel)
		}
		record.Checks = append(record.Checks, outcome)
	}
	record.RiskScore = score
	record.RiskTier = string(s.catalog.Tier(score))
	record.Documents = s.documentSection(obs)

	if s.classifier != nil {
		if label, err := s.classifier.Predict(s.Features(obs)); err != nil {
			s.logger.Warn("model prediction unavailable",
				zap.String("transaction_ref", obs.TransactionRef), zap.Error(err))
		} else {
			record.ModelLabel = &label
		}
	}

	return record, nil
}

// Assess evaluates the observation and appends the result to the audit
// log, returning the durable record.
func (s *Service) Assess(ctx context.Context, obs Observation) (*models.EvaluationRecord, error) {
	record, err := s.Evaluate(ctx, obs)
	if err != nil {
		return nil, err
	}
	if s.audit == nil {
		return record, nil
	}
	id, err := s.audit.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("append evaluation: %w", err)
	}
	record.ID = id

	s.logger.Info("transaction assessed",
		zap.String("transaction_ref", obs.TransactionRef),
		zap.Int("risk_score", record.RiskScore),
		zap.String("risk_tier", record.RiskTier),
	)
	return record, nil
}

func (s *Service) checkComplete(obs Observation) error {
	switch {
	case obs.DistanceKm == nil:
		return fmt.Errorf("%w: distance", ErrIncompleteObservation)
	case obs.PropertyValue <= 0:
		return fmt.Errorf("%w: property value", ErrIncompleteObservation)
	case obs.BuyerName == "":
		return fmt.Errorf("%w: buyer name", ErrIncompleteObservation)
	case obs.SellerName == "":
		return fmt.Errorf("%w: seller name", ErrIncompleteObservation)
	case obs.SSNLast4 == "":
		return fmt.Errorf("%w: ssn", ErrIncompleteObservation)
	}
	return nil
}

func (s *Service) runCheck(def catalog.CheckDefinition, obs Observation) models.CheckOutcome {
	outcome := models.CheckOutcome{
		CheckID:    def.ID,
		Threshold:  def.Threshold,
		Comparison: string(def.Comparison),
		RiskLevel:  string(def.RiskLevel),
	}

	if def.Category == catalog.CategoryDocumentCompleteness {
		valid := 0
		for _, name := range def.RequiredDocuments {
			if result, ok := obs.Documents[name]; ok && result.IsValid {
				valid++
			}
		}
		outcome.ObservedValue = float64(valid)
		outcome.Threshold = float64(len(def.RequiredDocuments))
		outcome.Comparison = string(catalog.ComparisonGTE)
		outcome.Passed = valid == len(def.RequiredDocuments)
		return outcome
	}

	outcome.ObservedValue = s.observed(def.Category, obs)
	outcome.Passed = def.Passes(outcome.ObservedValue)
	return outcome
}

func (s *Service) observed(category catalog.Category, obs Observation) float64 {
	switch category {
	case catalog.CategoryDistance:
		return *obs.DistanceKm
	case catalog.CategoryPropertyValue:
		return obs.PropertyValue
	case catalog.CategoryMortgageRatio:
		return obs.MortgageRatio
	case catalog.CategoryTiming:
		return obs.ProcessingDays
	case catalog.CategoryPricePerArea:
		return obs.PricePerArea
	}
	return 0
}

// documentSection lists every required document with its result,
// substituting the not-uploaded marker for absent slots, followed by
// any extra submitted documents in name order.
func (s *Service) documentSection(obs Observation) []models.DocumentOutcome {
	var section []models.DocumentOutcome
	covered := make(map[string]bool)

	for _, name := range s.catalog.RequiredDocuments() {
		result, ok := obs.Documents[name]
		if !ok {
			result = document.Missing(name)
		}
		covered[name] = true
		section = append(section, toOutcome(result))
	}

	var extras []string
	for name := range obs.Documents {
		if !covered[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		section = append(section, toOutcome(obs.Documents[name]))
	}
	return section
}

func toOutcome(result document.VerificationResult) models.DocumentOutcome {
	return models.DocumentOutcome{
		DocumentType: result.DocumentType,
		IsValid:      result.IsValid,
		Issues:       result.Issues,
		SizeBytes:    result.SizeBytes,
		StoredPath:   result.StoredPath,
	}
}

// Features builds the model feature vector in the column order the
// model was trained with. Categorical fields ride the encoder and
// degrade to hash surrogates for unseen values. The observation must
// be complete (non-nil distance).
func (s *Service) Features(obs Observation) []float64 {
	return []float64{
		s.encoder.Encode("buyer_name", obs.BuyerName).Value(),
		s.encoder.Encode("seller_name", obs.SellerName).Value(),
		s.encoder.Encode("property_type", obs.PropertyType).Value(),
		obs.PropertyValue,
		obs.MortgageAmount,
		*obs.DistanceKm,
		float64(obs.Month),
		s.encoder.Encode("buyer_gender", obs.BuyerGender).Value(),
		s.encoder.EncodeSSN(obs.SSNLast4).Value(),
	}
}
