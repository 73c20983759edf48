// Package storage defines the persistence interfaces of the module. Backends
// such as PostgreSQL live in sub-packages and provide transactions so that
// snapshots and queued jobs can be written atomically.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every domain-specific capability a backend offers.
type AllStorage interface {
	SnapshotStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction.
	Rollback() error
}

// Storage is a non-transactional storage handle that can start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
