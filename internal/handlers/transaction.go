package handlers

import (
	"veristate/internal/models"
	"veristate/internal/repositories"
	"veristate/internal/utils/response"
	"veristate/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TransactionHandler serves transaction intake and lookup.
type TransactionHandler struct {
	repo repositories.TransactionRepository
}

func NewTransactionHandler(repo repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

// Create registers a declared transaction and returns its reference.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input struct {
		BuyerName      string  `json:"buyer_name"`
		SellerName     string  `json:"seller_name"`
		PropertyType   string  `json:"property_type"`
		PropertyValue  float64 `json:"property_value"`
		MortgageAmount float64 `json:"mortgage_amount"`
		PropertyArea   float64 `json:"property_area"`
		PropertyLat    float64 `json:"property_lat"`
		PropertyLong   float64 `json:"property_long"`
		BuyerLat       float64 `json:"buyer_lat"`
		BuyerLong      float64 `json:"buyer_long"`
		Month          int     `json:"month"`
		BuyerGender    string  `json:"buyer_gender"`
		SSNLast4       string  `json:"ssn_last4"`
		ProcessingDays int     `json:"processing_days"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	tx := models.Transaction{
		Ref:            uuid.NewString(),
		BuyerName:      input.BuyerName,
		SellerName:     input.SellerName,
		PropertyType:   input.PropertyType,
		PropertyValue:  input.PropertyValue,
		MortgageAmount: input.MortgageAmount,
		PropertyArea:   input.PropertyArea,
		PropertyLat:    input.PropertyLat,
		PropertyLong:   input.PropertyLong,
		BuyerLat:       input.BuyerLat,
		BuyerLong:      input.BuyerLong,
		Month:          input.Month,
		BuyerGender:    input.BuyerGender,
		SSNLast4:       input.SSNLast4,
		ProcessingDays: input.ProcessingDays,
	}

	v := validation.New()
	v.Transaction(&tx)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	if err := h.repo.Create(c.Context(), &tx); err != nil {
		return response.ServerError(c, "failed to store transaction")
	}
	return response.Created(c, "transaction registered", tx)
}

// Get returns a registered transaction by reference.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	tx, err := h.repo.GetByRef(c.Context(), c.Params("ref"))
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return response.NotFound(c, "transaction not found")
		}
		return response.ServerError(c, "failed to load transaction")
	}
	return response.Success(c, "transaction", tx)
}
