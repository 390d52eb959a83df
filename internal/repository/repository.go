package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Business-rule sentinels. Handlers map these to user-facing messages;
// everything else is treated as a store error.
var (
	// ErrInsufficientStock placing an order for more units than the group holds.
	ErrInsufficientStock = errors.New("insufficient blood available in inventory")
	// ErrOrderNotPending fulfil/cancel on an order that is missing or already terminal.
	ErrOrderNotPending = errors.New("order not found or not pending")
	// ErrDuplicateID insert with an identifier that already exists.
	ErrDuplicateID = errors.New("identifier already exists")
	// ErrNotFound generic single-row lookup miss.
	ErrNotFound = errors.New("not found")
)

// isUniqueViolation reports whether err is a Postgres unique_violation (23505),
// so duplicate donor/hospital/order ids surface as ErrDuplicateID instead of
// a raw driver error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
