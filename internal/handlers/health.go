package handlers

import (
	"veristate/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports liveness of the service and its stores.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.EvaluationCache
}

func NewHealthHandler(db *gorm.DB, evalCache *cache.EvaluationCache) *HealthHandler {
	return &HealthHandler{db: db, cache: evalCache}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	services := fiber.Map{"database": "connected", "redis": "connected"}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		services["database"] = "unavailable"
		healthy = false
	}
	if h.cache == nil {
		services["redis"] = "disabled"
	} else if err := h.cache.HealthCheck(c.Context()); err != nil {
		services["redis"] = "unavailable"
		healthy = false
	}

	status := fiber.StatusOK
	overall := "ok"
	if !healthy {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"services": services,
	})
}
