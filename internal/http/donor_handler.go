package httpapi

import (
	"net/http"

	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// DonorHandler donor registration and listing
type DonorHandler struct {
	donorService *service.DonorService
	logger       *zap.Logger
}

func NewDonorHandler(donorService *service.DonorService, logger *zap.Logger) *DonorHandler {
	return &DonorHandler{donorService: donorService, logger: logger}
}

// List GET /admin/api/v1/donors
func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donorService.ListDonors(r.Context())
	if err != nil {
		h.logger.Error("List donors failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(donors))
}

// Register POST /admin/api/v1/donors
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterDonorRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	donor, err := h.donorService.RegisterDonor(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(donor))
}
