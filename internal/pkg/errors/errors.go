package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidQuantity rejects non-positive quantities at mutation time.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInsufficientStock rejects a stock decrement larger than current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrDuplicateCredential rejects a signup reusing a login id or email.
	ErrDuplicateCredential = errors.New("credential already in use")
	// ErrConflictingUpdate surfaces a transactional conflict on a stock update.
	ErrConflictingUpdate = errors.New("conflicting update")
	// ErrEmptyOrder rejects an order with no items.
	ErrEmptyOrder = errors.New("order has no items")
)
