package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already bound to a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle without a transaction.
	ErrNotInTx = errors.New("not in tx")
)
