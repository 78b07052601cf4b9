package domain

import "fmt"

// ValidationError reports malformed or out-of-range input. The operation
// had no effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that the referenced item id does not exist in the
// current collection.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ID)
}

// InsufficientStockError reports a sale quantity exceeding current stock.
// Neither the items nor the sales collection was touched.
type InsufficientStockError struct {
	ItemID    int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, have %d", e.ItemID, e.Requested, e.Available)
}

// PersistenceError reports a failed durable save. The in-memory mutation
// has already been applied and is NOT rolled back; callers seeing this
// error know memory and durable state have diverged.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
