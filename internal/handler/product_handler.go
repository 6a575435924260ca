package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/service"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	result, err := h.productService.Create(r.Context(), &input)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondResult(w, result)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	orderBy, err := parseOrderByParam(r, models.ProductSortFields)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	products, err := h.productService.List(r.Context(), orderBy)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, products)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, product)
}

// RestockLowStock handles POST /products/restock
func (h *ProductHandler) RestockLowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.productService.UpdateLowStock(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondResult(w, result)
}
