package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodbank-data/internal/repository"
	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

func newDonorHandler() *DonorHandler {
	logger := zap.NewNop()
	mem := repository.NewMemoryRepo()
	return NewDonorHandler(service.NewDonorService(mem, logger), logger)
}

func TestDonorHandler_RegisterAndList(t *testing.T) {
	handler := newDonorHandler()

	body, _ := json.Marshal(map[string]any{
		"dona_id":      "DON1",
		"dona_name":    "Asha",
		"blood_grp":    "A+",
		"dona_contact": "9876543210",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/donors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Register(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var created struct {
		Code   int `json:"code"`
		Result struct {
			DonorID    string `json:"dona_id"`
			BloodGroup string `json:"blood_grp"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if created.Code != 2000 {
		t.Fatalf("Expected code 2000, got %d", created.Code)
	}
	if created.Result.DonorID != "DON1" {
		t.Errorf("Expected dona_id 'DON1', got '%s'", created.Result.DonorID)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/api/v1/donors", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)

	var listed struct {
		Code   int   `json:"code"`
		Result []any `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if listed.Code != 2000 {
		t.Errorf("Expected code 2000, got %d", listed.Code)
	}
	if len(listed.Result) != 1 {
		t.Errorf("Expected 1 donor, got %d", len(listed.Result))
	}
}

func TestDonorHandler_RegisterValidationError(t *testing.T) {
	handler := newDonorHandler()

	// Contact must be exactly 10 digits.
	body, _ := json.Marshal(map[string]any{
		"dona_id":      "DON2",
		"dona_name":    "Ravi",
		"blood_grp":    "B+",
		"dona_contact": "12345",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/donors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Register(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result struct {
		Code    int    `json:"code"`
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Code != -1 {
		t.Errorf("Expected code -1, got %d", result.Code)
	}
	if result.Type != "error" {
		t.Errorf("Expected type 'error', got '%s'", result.Type)
	}
	if result.Message == "" {
		t.Error("Expected error message, got empty")
	}
}

func TestAdminRoutes_MethodNotAllowed(t *testing.T) {
	logger := zap.NewNop()
	mem := repository.NewMemoryRepo()

	donorService := service.NewDonorService(mem, logger)
	hospitalService := service.NewHospitalService(mem, logger)
	employeeService := service.NewEmployeeService(mem, logger)
	inventoryService := service.NewInventoryService(mem, mem, nil, nil, logger)
	dashboardService := service.NewDashboardService(mem, mem, mem, mem, nil, logger)

	router := NewRouter(logger)
	router.RegisterAdminRoutes(
		NewDonorHandler(donorService, logger),
		NewHospitalHandler(hospitalService, logger),
		NewEmployeeHandler(employeeService, logger),
		NewInventoryHandler(inventoryService, dashboardService, logger),
		NewOrderHandler(inventoryService, mem, logger),
		NewSupplyHandler(inventoryService, mem, logger),
		NewSearchHandler(&stubSearchExecutor{}, logger),
		NewDashboardHandler(dashboardService, logger),
	)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"GET donors", http.MethodGet, "/admin/api/v1/donors", http.StatusOK},
		{"DELETE donors", http.MethodDelete, "/admin/api/v1/donors", http.StatusMethodNotAllowed},
		{"GET search (wrong method)", http.MethodGet, "/admin/api/v1/search", http.StatusMethodNotAllowed},
		{"GET availability", http.MethodGet, "/admin/api/v1/inventory/availability", http.StatusOK},
		{"POST availability (wrong method)", http.MethodPost, "/admin/api/v1/inventory/availability", http.StatusMethodNotAllowed},
		{"GET fulfill (wrong method)", http.MethodGet, "/admin/api/v1/orders/ORD1/fulfill", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
