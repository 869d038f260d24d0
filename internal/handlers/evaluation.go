package handlers

import (
	"errors"

	"veristate/internal/repositories"
	"veristate/internal/repositories/cache"
	"veristate/internal/services/risk"
	"veristate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EvaluationHandler serves the assessment and audit history endpoints.
type EvaluationHandler struct {
	risk         *risk.Service
	transactions repositories.TransactionRepository
	documents    repositories.DocumentRepository
	audit        repositories.AuditLog
	cache        *cache.EvaluationCache
	logger       *zap.Logger
}

func NewEvaluationHandler(
	riskSvc *risk.Service,
	transactions repositories.TransactionRepository,
	documents repositories.DocumentRepository,
	audit repositories.AuditLog,
	evalCache *cache.EvaluationCache,
	logger *zap.Logger,
) *EvaluationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationHandler{
		risk:         riskSvc,
		transactions: transactions,
		documents:    documents,
		audit:        audit,
		cache:        evalCache,
		logger:       logger,
	}
}

// Evaluate runs the full assessment for one transaction: loads the
// declared facts and verified documents, evaluates the catalog checks,
// and appends the result to the audit log.
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	ref := c.Params("ref")

	tx, err := h.transactions.GetByRef(c.Context(), ref)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return response.NotFound(c, "transaction not found")
		}
		return response.ServerError(c, "failed to load transaction")
	}

	docs, err := h.documents.ListByRef(c.Context(), ref)
	if err != nil {
		return response.ServerError(c, "failed to load documents")
	}

	record, err := h.risk.Assess(c.Context(), risk.BuildObservation(tx, docs))
	if err != nil {
		if errors.Is(err, risk.ErrIncompleteObservation) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "assessment failed")
	}

	if h.cache != nil {
		if err := h.cache.SetEvaluation(c.Context(), record); err != nil {
			h.logger.Warn("evaluation cache write failed", zap.Error(err))
		}
	}
	return response.Success(c, "transaction assessed", record)
}

// Latest returns the most recent evaluation for a transaction, served
// from cache when possible and otherwise replayed from the audit log.
func (h *EvaluationHandler) Latest(c *fiber.Ctx) error {
	ref := c.Params("ref")

	if h.cache != nil {
		if record, err := h.cache.GetEvaluation(c.Context(), ref); err == nil {
			return response.Success(c, "latest evaluation", record)
		}
	}

	records, err := h.audit.List(c.Context())
	if err != nil {
		return response.ServiceUnavailable(c, "audit history unavailable")
	}
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].TransactionRef == ref {
			return response.Success(c, "latest evaluation", records[i])
		}
	}
	return response.NotFound(c, "no evaluation for transaction")
}

// History returns the full audit trail in insertion order.
func (h *EvaluationHandler) History(c *fiber.Ctx) error {
	records, err := h.audit.List(c.Context())
	if err != nil {
		return response.ServiceUnavailable(c, "audit history unavailable")
	}
	return response.Success(c, "evaluation history", records)
}

// Insights returns aggregate fraud statistics over the audit trail.
func (h *EvaluationHandler) Insights(c *fiber.Ctx) error {
	records, err := h.audit.List(c.Context())
	if err != nil {
		return response.ServiceUnavailable(c, "audit history unavailable")
	}
	return response.Success(c, "fraud insights", Summarize(records))
}
