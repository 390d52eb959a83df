package httpapi

import (
	"net/http"

	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// SupplyHandler supply history and intake
type SupplyHandler struct {
	inventoryService *service.InventoryService
	supplyRepo       repository.SupplyRepository
	logger           *zap.Logger
}

func NewSupplyHandler(
	inventoryService *service.InventoryService,
	supplyRepo repository.SupplyRepository,
	logger *zap.Logger,
) *SupplyHandler {
	return &SupplyHandler{
		inventoryService: inventoryService,
		supplyRepo:       supplyRepo,
		logger:           logger,
	}
}

// List GET /admin/api/v1/supply
func (h *SupplyHandler) List(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.supplyRepo.ListSupplies(r.Context())
	if err != nil {
		h.logger.Error("List supplies failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(supplies))
}

// Record POST /admin/api/v1/supply
func (h *SupplyHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req service.RecordSupplyRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	supply, err := h.inventoryService.RecordSupply(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(supply))
}
