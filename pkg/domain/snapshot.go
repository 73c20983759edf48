package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"football/pkg/serrors"
)

// SnapshotID uniquely identifies a stored snapshot.
type SnapshotID uuid.UUID

// SnapshotKind names which competition resource a snapshot holds.
type SnapshotKind string

const (
	// SnapshotKindFixtures holds a FixtureList.
	SnapshotKindFixtures SnapshotKind = "fixtures"
	// SnapshotKindTable holds a LeagueTable.
	SnapshotKindTable SnapshotKind = "table"
	// SnapshotKindTeams holds a TeamList.
	SnapshotKindTeams SnapshotKind = "teams"
)

// ParseSnapshotKind validates s as a snapshot kind.
func ParseSnapshotKind(s string) (SnapshotKind, error) {
	switch k := SnapshotKind(s); k {
	case SnapshotKindFixtures, SnapshotKindTable, SnapshotKindTeams:
		return k, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "snapshot kind %q is invalid", s)
	}
}

// Snapshot is a persisted copy of a competition resource taken by the sync
// worker. Payload is the JSON encoding of the resource named by Kind.
type Snapshot struct {
	ID            SnapshotID      `json:"id"`
	CompetitionID CompetitionID   `json:"competitionId"`
	Kind          SnapshotKind    `json:"kind"`
	Season        string          `json:"season"`
	Payload       json.RawMessage `json:"payload"`
	FetchedAt     time.Time       `json:"fetchedAt"`
}

// MarshalJSON renders the ID in its canonical string form.
func (id SnapshotID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.UUID(id).String())
}

func (id SnapshotID) String() string { return uuid.UUID(id).String() }
