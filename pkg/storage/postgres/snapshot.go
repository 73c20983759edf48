package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"football/pkg/domain"
	"football/pkg/storage"
)

const (
	snapshotsTable = "snapshots"
)

// StoreSnapshot inserts the snapshot or replaces the payload of the existing
// row for the same competition, kind and season.
func (p *PgSQL) StoreSnapshot(ctx context.Context, snapshot domain.Snapshot) (*domain.Snapshot, error) {
	if !json.Valid(snapshot.Payload) {
		return nil, fmt.Errorf("snapshot payload of %s/%s is not valid json", snapshot.CompetitionID, snapshot.Kind)
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now().UTC()
	}

	var in PgSnapshot
	in.FromDomain(snapshot)

	var row PgSnapshot
	found, err := p.Builder.Insert(snapshotsTable).
		Rows(in).
		OnConflict(goqu.DoUpdate("competition_id, kind, season", goqu.Record{
			"payload":    goqu.L("EXCLUDED.payload"),
			"fetched_at": goqu.L("EXCLUDED.fetched_at"),
		})).
		Returning(&PgSnapshot{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store snapshot into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("snapshot upsert of %s/%s returned no row", snapshot.CompetitionID, snapshot.Kind)
	}

	out := row.ToDomain()

	return &out, nil
}

// LatestSnapshot returns the most recently fetched snapshot of kind for a
// competition regardless of season.
func (p *PgSQL) LatestSnapshot(ctx context.Context,
	competitionID domain.CompetitionID,
	kind domain.SnapshotKind) (*domain.Snapshot, error) {
	var row PgSnapshot
	found, err := p.Builder.From(snapshotsTable).
		Where(
			goqu.I("competition_id").Eq(int64(competitionID)),
			goqu.I("kind").Eq(string(kind)),
		).
		Order(goqu.I("fetched_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest snapshot from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

// Snapshots returns a page of a competition's snapshots ordered by
// fetched_at DESC, id DESC.
func (p *PgSQL) Snapshots(ctx context.Context,
	competitionID domain.CompetitionID,
	cursor *storage.SnapshotCursor,
	limit uint) (storage.SnapshotPage, error) {
	if limit == 0 {
		return storage.SnapshotPage{Snapshots: []domain.Snapshot{}}, nil
	}

	w := []goqu.Expression{
		goqu.I("competition_id").Eq(int64(competitionID)),
	}
	if cursor != nil {
		w = append(w, goqu.L("(fetched_at, id) < (?, ?)", cursor.FetchedAt, uuid.UUID(cursor.ID).String()))
	}

	// one extra row tells whether a next page exists
	var rows []PgSnapshot
	if err := p.Builder.From(snapshotsTable).
		Where(w...).
		Order(goqu.I("fetched_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SnapshotPage{}, fmt.Errorf("could not fetch snapshots from pg: %w", err)
	}

	var nextCursor *storage.SnapshotCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.SnapshotCursor{
			FetchedAt: last.FetchedAt.UTC(),
			ID:        domain.SnapshotID(last.ID),
		}
	}

	return storage.SnapshotPage{
		Snapshots:  pgSnapshotsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeleteSnapshotsBefore hard deletes every snapshot fetched before t.
func (p *PgSQL) DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := p.Builder.Delete(snapshotsTable).
		Where(goqu.I("fetched_at").Lt(t)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete snapshots from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted snapshots: %w", err)
	}

	return n, nil
}
