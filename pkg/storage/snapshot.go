package storage

import (
	"context"
	"time"

	"football/pkg/domain"
)

// SnapshotCursor is the position of the last row of a page. Snapshots of
// one sync share FetchedAt, so the ID breaks ties.
type SnapshotCursor struct {
	FetchedAt time.Time
	ID        domain.SnapshotID
}

// SnapshotPage is a page of snapshots together with the cursor of the next
// page. NextCursor is nil on the last page.
type SnapshotPage struct {
	Snapshots  []domain.Snapshot
	NextCursor *SnapshotCursor
}

// SnapshotStorage persists competition snapshots taken by the sync worker.
type SnapshotStorage interface {
	// StoreSnapshot upserts a snapshot keyed by competition, kind and season
	// and returns the stored row. FetchedAt defaults to the current time.
	StoreSnapshot(ctx context.Context, snapshot domain.Snapshot) (*domain.Snapshot, error)
	// LatestSnapshot returns the most recently fetched snapshot of a kind for
	// a competition, or nil when none exists.
	LatestSnapshot(ctx context.Context,
		competitionID domain.CompetitionID,
		kind domain.SnapshotKind) (*domain.Snapshot, error)
	// Snapshots pages through a competition's snapshots ordered by
	// (FetchedAt, ID) descending, starting strictly after cursor when it is
	// not nil.
	Snapshots(ctx context.Context,
		competitionID domain.CompetitionID,
		cursor *SnapshotCursor,
		limit uint) (SnapshotPage, error)
	// DeleteSnapshotsBefore removes snapshots fetched before t and returns how
	// many were removed.
	DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int64, error)
}
