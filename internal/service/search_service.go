package service

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/search"

	"go.uber.org/zap"
)

// ErrUnparseableQuery the question matched none of the recognized patterns.
var ErrUnparseableQuery = fmt.Errorf("unrecognized question; try asking about blood availability, donors, hospital orders, or contact info")

// ErrSearchUnavailable search runs raw SQL templates, so unlike the other
// surfaces it has no in-memory fallback.
var ErrSearchUnavailable = fmt.Errorf("search needs the database and is unavailable in in-memory mode")

// SearchService runs the intent matcher and executes the matched query.
// It holds the *sql.DB directly: the matcher produces ad-hoc aggregate/join
// templates that do not belong to any single repository.
type SearchService struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSearchService(db *sql.DB, logger *zap.Logger) *SearchService {
	return &SearchService{db: db, logger: logger}
}

// Search matches the free-text question and returns the result rows as
// column-name keyed maps, the shape the dashboard table renderer expects.
func (s *SearchService) Search(ctx context.Context, question string) ([]map[string]any, error) {
	q, ok := search.Match(question)
	if !ok {
		return nil, ErrUnparseableQuery
	}
	if s.db == nil {
		return nil, ErrSearchUnavailable
	}

	s.logger.Debug("Search query matched",
		zap.String("rule", q.Name),
		zap.Int("params", len(q.Args)),
	)

	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			v := values[i]
			// lib/pq returns []byte for text columns; JSON needs strings
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
