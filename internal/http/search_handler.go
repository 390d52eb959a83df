package httpapi

import (
	"context"
	"errors"
	"net/http"

	"bloodbank-data/internal/service"

	"go.uber.org/zap"
)

// SearchExecutor what the handler needs from the search service; an
// interface so handler tests can stub the query execution.
type SearchExecutor interface {
	Search(ctx context.Context, question string) ([]map[string]any, error)
}

// SearchHandler free-text database search
type SearchHandler struct {
	searchService SearchExecutor
	logger        *zap.Logger
}

func NewSearchHandler(searchService SearchExecutor, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{searchService: searchService, logger: logger}
}

type searchRequest struct {
	Question string `json:"question"`
}

// Search POST /admin/api/v1/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid request body"))
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusOK, Fail("question is required"))
		return
	}

	rows, err := h.searchService.Search(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrUnparseableQuery) {
			writeJSON(w, http.StatusOK, Fail(err.Error()))
			return
		}
		h.logger.Error("Search failed", zap.String("question", req.Question), zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(rows))
}
