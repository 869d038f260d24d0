package handlers

import (
	"veristate/internal/catalog"
	"veristate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler exposes the loaded check catalog to collaborators.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Checks lists the configured check definitions.
func (h *CatalogHandler) Checks(c *fiber.Ctx) error {
	return response.Success(c, "catalog checks", h.catalog.Checks())
}

// RequiredDocuments lists the document names an upload collaborator
// should request.
func (h *CatalogHandler) RequiredDocuments(c *fiber.Ctx) error {
	return response.Success(c, "required documents", h.catalog.RequiredDocuments())
}
