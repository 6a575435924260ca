package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input models.CustomerInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	result, err := h.customerService.Create(r.Context(), &input)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondResult(w, result)
}

// BulkCreateCustomers handles POST /customers/bulk
func (h *CustomerHandler) BulkCreateCustomers(w http.ResponseWriter, r *http.Request) {
	var inputs []*models.CustomerInput

	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	result, err := h.customerService.BulkCreate(r.Context(), inputs)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondResult(w, result)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	orderBy, err := parseOrderByParam(r, models.CustomerSortFields)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	customers, err := h.customerService.List(r.Context(), orderBy)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customers)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// extractID parses the {id} chi URL parameter
func extractID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseOrderByParam reads the order_by query parameter as a comma-separated
// list of field names, validated against the entity's whitelist
func parseOrderByParam(r *http.Request, allowed map[string]string) ([]models.OrderBy, error) {
	raw := r.URL.Query().Get("order_by")
	if raw == "" {
		return nil, nil
	}
	return models.ParseOrderBy(strings.Split(raw, ","), allowed)
}
