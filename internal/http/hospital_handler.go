package httpapi

import (
	"net/http"

	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// HospitalHandler hospital registry
type HospitalHandler struct {
	hospitalService *service.HospitalService
	logger          *zap.Logger
}

func NewHospitalHandler(hospitalService *service.HospitalService, logger *zap.Logger) *HospitalHandler {
	return &HospitalHandler{hospitalService: hospitalService, logger: logger}
}

// List GET /admin/api/v1/hospitals
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalService.ListHospitals(r.Context())
	if err != nil {
		h.logger.Error("List hospitals failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(hospitals))
}

// Create POST /admin/api/v1/hospitals
func (h *HospitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHospitalRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	hospital, err := h.hospitalService.CreateHospital(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(hospital))
}
