// Package v1handler implements the /v1 HTTP routes on top of football.Service.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"football/internal/football"
	"football/pkg/logger"
	"football/pkg/serrors"
)

// Deps are the collaborators of Handler.
type Deps struct {
	Service football.Service
}

// Handler serves the v1 API.
type Handler struct {
	service football.Service
}

// New returns a Handler serving deps.Service. Mount it with Routes.
func New(deps Deps) *Handler {
	return &Handler{service: deps.Service}
}

// Routes registers the v1 routes on r. The caller mounts r under /v1.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/competitions", func(r chi.Router) {
		r.Get("/", serve(h.competitions))
		r.Route("/{competition}", func(r chi.Router) {
			r.Get("/teams", serve(h.competitionTeams))
			r.Get("/table", serve(h.table))
			r.Get("/fixtures", serve(h.competitionFixtures))
			r.Post("/sync", h.scheduleSync)
			r.Get("/snapshots", serve(h.snapshots))
			r.Get("/snapshots/{kind}", serve(h.snapshot))
		})
	})
	r.Route("/fixtures", func(r chi.Router) {
		r.Get("/", serve(h.fixtures))
		r.Get("/{fixture}", serve(h.fixture))
	})
	r.Route("/teams/{team}", func(r chi.Router) {
		r.Get("/", serve(h.team))
		r.Get("/players", serve(h.players))
		r.Get("/fixtures", serve(h.teamFixtures))
		r.Get("/overview", serve(h.teamOverview))
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrConflict:     "conflict",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "upstream unavailable",
}

// NewError maps err to the response the API answers with. Errors without a
// semantic kind, and internal ones, never leak their message and are logged.
func NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == nil || kind == serrors.ErrInternal {
		logger.Error(ctx, "internal error in handling request", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "error in handling request", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	msg := defaultMessages[kind]
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := NewError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// serve adapts a service call to an http.HandlerFunc answering 200 with the
// JSON encoding of its result.
func serve[T any](fn func(r *http.Request) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		writeJSON(r.Context(), w, http.StatusOK, out)
	}
}
