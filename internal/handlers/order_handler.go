package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smmdash/order-query-service/internal/query"
	"github.com/smmdash/order-query-service/internal/service"
	"github.com/smmdash/order-query-service/internal/upstream"
)

// OrderHandler handles order query HTTP requests
type OrderHandler struct {
	service *service.OrderQueryService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderQueryService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// ListOrders handles GET /api/orders
// Runs the full pipeline: resolve params, fetch the upstream page, enrich,
// compose. Responds:
// - 200: { data: { count, list }, pagination: {...} }
// - 500: { error: <message> } on upstream or internal failure
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	req := query.ResolvePageRequest(r.URL.Query())

	resp, err := h.service.ListOrders(r.Context(), req)
	if err != nil {
		var upstreamErr *upstream.Error
		if errors.As(err, &upstreamErr) {
			h.log.Error("upstream list fetch failed",
				"status", upstreamErr.StatusCode,
				"error", upstreamErr,
			)
			WriteError(w, http.StatusInternalServerError, upstreamErr.Error(), h.log)
			return
		}

		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}

// GetOrder handles GET /api/orders/{orderID}
// Proxies the upstream detail endpoint and merges the derived duration.
// - 200: { data: <detail> }
// - 400: missing or non-numeric order ID
// - 500: upstream or internal failure
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "orderID")
	if rawID == "" {
		WriteError(w, http.StatusBadRequest, "Missing order ID", h.log)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.log.Warn("invalid order ID format", "order_id", rawID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid order ID supplied", h.log)
		return
	}

	view, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		var upstreamErr *upstream.Error
		if errors.As(err, &upstreamErr) {
			h.log.Error("upstream detail fetch failed",
				"order_id", id,
				"status", upstreamErr.StatusCode,
				"error", upstreamErr,
			)
			WriteError(w, http.StatusInternalServerError, upstreamErr.Error(), h.log)
			return
		}

		h.log.Error("failed to get order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"data": view}, h.log)
}
