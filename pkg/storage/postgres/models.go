package postgres

import (
	"time"

	"github.com/google/uuid"

	"football/pkg/domain"
)

// PgSnapshot is the row layout of the snapshots table.
type PgSnapshot struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	CompetitionID int64     `db:"competition_id"`
	Kind          string    `db:"kind"`
	Season        string    `db:"season"`
	// Payload is scanned as raw bytes, the jsonb column is decoded by callers.
	Payload   []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}

func (p *PgSnapshot) ToDomain() domain.Snapshot {
	return domain.Snapshot{
		ID:            domain.SnapshotID(p.ID),
		CompetitionID: domain.CompetitionID(p.CompetitionID),
		Kind:          domain.SnapshotKind(p.Kind),
		Season:        p.Season,
		Payload:       p.Payload,
		FetchedAt:     p.FetchedAt.UTC(),
	}
}

func (p *PgSnapshot) FromDomain(s domain.Snapshot) {
	*p = PgSnapshot{
		ID:            uuid.UUID(s.ID),
		CompetitionID: int64(s.CompetitionID),
		Kind:          string(s.Kind),
		Season:        s.Season,
		Payload:       s.Payload,
		FetchedAt:     s.FetchedAt,
	}
}

func pgSnapshotsToDomain(rows []PgSnapshot) []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
