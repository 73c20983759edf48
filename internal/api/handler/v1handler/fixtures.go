package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"football/pkg/domain"
)

func (h *Handler) fixtures(r *http.Request) (*domain.FixtureList, error) {
	q := r.URL.Query()

	return h.service.Fixtures(r.Context(), q.Get("timeFrame"), q.Get("league")) //nolint: wrapcheck
}

func (h *Handler) fixture(r *http.Request) (*domain.FixtureDetails, error) {
	return h.service.Fixture(r.Context(), chi.URLParam(r, "fixture")) //nolint: wrapcheck
}
