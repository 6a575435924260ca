package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crmstack/crm-backend/internal/models"
	"github.com/crmstack/crm-backend/internal/service"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService service.OrderService
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input models.OrderInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	result, err := h.orderService.Create(r.Context(), &input)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondResult(w, result)
}

// ListOrders handles GET /orders. With since and status query parameters it
// narrows to orders placed at or after the cutoff in the given status, which
// is what the reminder job consumes.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if since := query.Get("since"); since != "" {
		cutoff, err := time.Parse(time.RFC3339, since)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "since must be an RFC3339 timestamp")
			return
		}

		status := query.Get("status")
		if status == "" {
			status = models.OrderStatusPending
		}
		if !models.IsValidOrderStatus(status) {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid order status: "+status)
			return
		}

		orders, err := h.orderService.ListRecentByStatus(r.Context(), cutoff, status)
		if err != nil {
			handleError(w, err, h.logger)
			return
		}

		respondSuccess(w, orders)
		return
	}

	orderBy, err := parseOrderByParam(r, models.OrderSortFields)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	orders, err := h.orderService.List(r.Context(), orderBy)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, order)
}
