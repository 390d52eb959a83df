package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSearchWithoutDatabase(t *testing.T) {
	svc := NewSearchService(nil, zap.NewNop())

	// Questions that don't match fail on parsing first.
	_, err := svc.Search(context.Background(), "tell me a joke")
	assert.ErrorIs(t, err, ErrUnparseableQuery)

	// A matched question still needs the database; in-memory mode has no
	// tables to run the template against.
	_, err = svc.Search(context.Background(), "available blood")
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
