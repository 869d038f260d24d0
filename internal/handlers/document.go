package handlers

import (
	"io"

	"veristate/internal/repositories"
	"veristate/internal/services/document"
	"veristate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler serves evidence uploads.
type DocumentHandler struct {
	svc          *document.Service
	transactions repositories.TransactionRepository
}

func NewDocumentHandler(svc *document.Service, transactions repositories.TransactionRepository) *DocumentHandler {
	return &DocumentHandler{svc: svc, transactions: transactions}
}

// Upload accepts a multipart file for a named document slot. A file
// that fails validation still gets a 200 response carrying the issues:
// an invalid document is a recorded outcome, not a request error.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	ref := c.Params("ref")
	if _, err := h.transactions.GetByRef(c.Context(), ref); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return response.NotFound(c, "transaction not found")
		}
		return response.ServerError(c, "failed to load transaction")
	}

	docType := c.FormValue("document_type")
	if docType == "" {
		return response.BadRequest(c, "document_type is required")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file is required")
	}
	f, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "cannot read uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return response.BadRequest(c, "cannot read uploaded file")
	}

	result, err := h.svc.Verify(c.Context(), document.Slot{
		TransactionRef: ref,
		DocumentType:   docType,
		Filename:       header.Filename,
		Data:           data,
	})
	if err != nil {
		return response.ServerError(c, "failed to store document")
	}
	return response.Success(c, "document verified", result)
}
