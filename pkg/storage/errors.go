package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when a new transaction is requested while
	// already inside one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
