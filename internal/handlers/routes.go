// Package handlers wires the HTTP surface: request parsing, status
// mapping, and the route table. Decision logic lives in the services.
package handlers

import (
	"veristate/internal/catalog"
	"veristate/internal/config"
	"veristate/internal/models"
	"veristate/internal/repositories"
	"veristate/internal/repositories/cache"
	"veristate/internal/services/document"
	"veristate/internal/services/risk"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes builds the repositories and services and registers all
// routes. The catalog is loaded once by the caller and shared
// read-only; the evaluation cache may be nil.
func SetupRoutes(app *fiber.App, db *gorm.DB, cat *catalog.Catalog, evalCache *cache.EvaluationCache, logger *zap.Logger) {
	txRepo := repositories.NewTransactionRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	audit := repositories.NewGormAuditLog(db)

	store := document.NewDiskStore(config.EvidenceRoot())
	docService := document.NewService(store, docRepo, document.Policy{
		MaxSizeBytes: config.GetInt64Env("MAX_UPLOAD_BYTES", document.DefaultMaxSizeBytes),
	}, logger)

	encoder := risk.NewCategoryEncoder(map[string][]string{
		"property_type": models.PropertyTypes,
		"buyer_gender":  {"Male", "Female"},
	})
	riskService := risk.NewService(cat, encoder, nil, audit, logger)

	txHandler := NewTransactionHandler(txRepo)
	docHandler := NewDocumentHandler(docService, txRepo)
	evalHandler := NewEvaluationHandler(riskService, txRepo, docRepo, audit, evalCache, logger)
	catHandler := NewCatalogHandler(cat)
	healthHandler := NewHealthHandler(db, evalCache)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Post("/transactions", txHandler.Create)
	api.Get("/transactions/:ref", txHandler.Get)
	api.Post("/transactions/:ref/documents", docHandler.Upload)
	api.Post("/transactions/:ref/evaluate", evalHandler.Evaluate)
	api.Get("/transactions/:ref/evaluation", evalHandler.Latest)

	api.Get("/evaluations", evalHandler.History)
	api.Get("/evaluations/insights", evalHandler.Insights)

	api.Get("/catalog/checks", catHandler.Checks)
	api.Get("/catalog/documents", catHandler.RequiredDocuments)
}
