package httpapi

import (
	"errors"
	"net/http"

	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// OrderHandler order listing, placement and status transitions
type OrderHandler struct {
	inventoryService *service.InventoryService
	ordersRepo       repository.OrdersRepository
	logger           *zap.Logger
}

func NewOrderHandler(
	inventoryService *service.InventoryService,
	ordersRepo repository.OrdersRepository,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		inventoryService: inventoryService,
		ordersRepo:       ordersRepo,
		logger:           logger,
	}
}

// List GET /admin/api/v1/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ordersRepo.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("List orders failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(orders))
}

// ListPending GET /admin/api/v1/orders/pending
// Only Pending orders are offered for fulfil/cancel; terminal orders are not
// listed here, so a second cancellation cannot be issued from the UI.
func (h *OrderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ordersRepo.ListPendingOrders(r.Context(), 0)
	if err != nil {
		h.logger.Error("List pending orders failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(orders))
}

// Place POST /admin/api/v1/orders
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	order, err := h.inventoryService.PlaceOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			writeJSON(w, http.StatusOK, Fail("Insufficient blood available in inventory"))
			return
		}
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(order))
}

// Fulfill POST /admin/api/v1/orders/{id}/fulfill
func (h *OrderHandler) Fulfill(w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := h.inventoryService.FulfillOrder(r.Context(), orderID)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(order))
}

// Cancel POST /admin/api/v1/orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := h.inventoryService.CancelOrder(r.Context(), orderID)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(order))
}
