package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"football/pkg/domain"
)

func (h *Handler) team(r *http.Request) (*domain.Team, error) {
	return h.service.Team(r.Context(), chi.URLParam(r, "team")) //nolint: wrapcheck
}

func (h *Handler) players(r *http.Request) (*domain.PlayerList, error) {
	return h.service.Players(r.Context(), chi.URLParam(r, "team")) //nolint: wrapcheck
}

func (h *Handler) teamFixtures(r *http.Request) (*domain.FixtureList, error) {
	q := r.URL.Query()

	return h.service.TeamFixtures(r.Context(), //nolint: wrapcheck
		chi.URLParam(r, "team"),
		q.Get("season"),
		q.Get("timeFrame"),
		q.Get("venue"))
}

func (h *Handler) teamOverview(r *http.Request) (*domain.TeamOverview, error) {
	return h.service.TeamOverview(r.Context(), chi.URLParam(r, "team")) //nolint: wrapcheck
}
