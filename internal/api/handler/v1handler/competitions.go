package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"football/pkg/domain"
	"football/pkg/serrors"
)

const (
	defaultSnapshotsLimit = 20
	maxSnapshotsLimit     = 100
)

func (h *Handler) competitions(r *http.Request) ([]domain.Competition, error) {
	return h.service.Competitions(r.Context(), r.URL.Query().Get("season")) //nolint: wrapcheck
}

func (h *Handler) competitionTeams(r *http.Request) (*domain.TeamList, error) {
	return h.service.Teams(r.Context(), chi.URLParam(r, "competition")) //nolint: wrapcheck
}

func (h *Handler) table(r *http.Request) (*domain.LeagueTable, error) {
	return h.service.Table(r.Context(), //nolint: wrapcheck
		chi.URLParam(r, "competition"),
		r.URL.Query().Get("matchday"))
}

func (h *Handler) competitionFixtures(r *http.Request) (*domain.FixtureList, error) {
	q := r.URL.Query()

	return h.service.CompetitionFixtures(r.Context(), //nolint: wrapcheck
		chi.URLParam(r, "competition"),
		q.Get("matchday"),
		q.Get("timeFrame"))
}

// SyncResponse reports whether a sync job was enqueued.
type SyncResponse struct {
	Competition string `json:"competition"`
	Inserted    bool   `json:"inserted"`
}

// scheduleSync answers 202 when a job was enqueued and 200 when an
// equivalent job was already pending.
func (h *Handler) scheduleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	competition := chi.URLParam(r, "competition")

	inserted, err := h.service.ScheduleSync(ctx, competition)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusAccepted
	}
	writeJSON(ctx, w, status, SyncResponse{Competition: competition, Inserted: inserted})
}

// SnapshotPage is one page of stored snapshots. NextCursor is empty on the
// last page.
type SnapshotPage struct {
	Snapshots  []domain.Snapshot `json:"snapshots"`
	NextCursor string            `json:"nextCursor"`
}

func (h *Handler) snapshots(r *http.Request) (*SnapshotPage, error) {
	q := r.URL.Query()

	limit := uint64(defaultSnapshotsLimit)
	if raw := q.Get("limit"); raw != "" {
		l, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || l == 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "limit %q is invalid", raw)
		}
		limit = min(l, maxSnapshotsLimit)
	}

	snapshots, next, err := h.service.Snapshots(r.Context(),
		chi.URLParam(r, "competition"),
		q.Get("cursor"),
		uint(limit))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}

	return &SnapshotPage{Snapshots: snapshots, NextCursor: next}, nil
}

func (h *Handler) snapshot(r *http.Request) (*domain.Snapshot, error) {
	return h.service.Snapshot(r.Context(), //nolint: wrapcheck
		chi.URLParam(r, "competition"),
		chi.URLParam(r, "kind"))
}
