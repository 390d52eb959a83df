package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// stubSearchExecutor records the question and returns canned rows.
type stubSearchExecutor struct {
	question string
	rows     []map[string]any
	err      error
}

func (s *stubSearchExecutor) Search(_ context.Context, question string) ([]map[string]any, error) {
	s.question = question
	return s.rows, s.err
}

func postSearch(t *testing.T, h *SearchHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/search", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Search(w, req)
	return w
}

func TestSearchHandler_Success(t *testing.T) {
	stub := &stubSearchExecutor{
		rows: []map[string]any{
			{"blood_grp": "A+", "total_units": float64(12)},
		},
	}
	handler := NewSearchHandler(stub, zap.NewNop())

	w := postSearch(t, handler, `{"question": "available blood"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result struct {
		Code   int              `json:"code"`
		Type   string           `json:"type"`
		Result []map[string]any `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.Code != 2000 {
		t.Errorf("Expected code 2000, got %d", result.Code)
	}
	if len(result.Result) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Result))
	}
	if result.Result[0]["blood_grp"] != "A+" {
		t.Errorf("Expected blood_grp 'A+', got %v", result.Result[0]["blood_grp"])
	}
	if stub.question != "available blood" {
		t.Errorf("Expected question forwarded verbatim, got '%s'", stub.question)
	}
}

func TestSearchHandler_UnparseableQuestion(t *testing.T) {
	stub := &stubSearchExecutor{err: service.ErrUnparseableQuery}
	handler := NewSearchHandler(stub, zap.NewNop())

	w := postSearch(t, handler, `{"question": "weather tomorrow"}`)
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

func TestSearchHandler_EmptyQuestion(t *testing.T) {
	stub := &stubSearchExecutor{}
	handler := NewSearchHandler(stub, zap.NewNop())

	w := postSearch(t, handler, `{"question": ""}`)

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.Code != -1 {
		t.Errorf("Expected code -1, got %d", result.Code)
	}
	if !strings.Contains(result.Message, "question") {
		t.Errorf("Expected message to name the missing field, got '%s'", result.Message)
	}
	if stub.question != "" {
		t.Error("Expected executor not to be called for empty question")
	}
}

func TestSearchHandler_InvalidBody(t *testing.T) {
	stub := &stubSearchExecutor{}
	handler := NewSearchHandler(stub, zap.NewNop())

	w := postSearch(t, handler, `{not json`)

	var result struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Code != -1 {
		t.Errorf("Expected code -1, got %d", result.Code)
	}
}
