package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// InventoryHandler ledger views and manual adjustment
type InventoryHandler struct {
	inventoryService *service.InventoryService
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewInventoryHandler(
	inventoryService *service.InventoryService,
	dashboardService *service.DashboardService,
	logger *zap.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// ListLots GET /admin/api/v1/inventory
func (h *InventoryHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.inventoryService.ListLots(r.Context())
	if err != nil {
		h.logger.Error("List lots failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(lots))
}

// Availability GET /admin/api/v1/inventory/availability
// Served through the dashboard cache.
func (h *InventoryHandler) Availability(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Availability(r.Context())
	if err != nil {
		h.logger.Error("Availability failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(summary))
}

// Adjust POST /admin/api/v1/inventory/adjust
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req service.AdjustStockRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	if err := h.inventoryService.AdjustStock(r.Context(), req); err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok("inventory updated"))
}

// Export GET /admin/api/v1/inventory/export
// Streams the current ledger as an Excel workbook.
func (h *InventoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	lots, err := h.inventoryService.ListLots(r.Context())
	if err != nil {
		h.logger.Error("Inventory export failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	summary, err := h.inventoryService.Availability(r.Context())
	if err != nil {
		h.logger.Error("Inventory export failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	data, err := GenerateInventoryExport(lots, summary)
	if err != nil {
		h.logger.Error("Excel generation failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	filename := fmt.Sprintf("blood-inventory-%s.xlsx", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write(data)
}
