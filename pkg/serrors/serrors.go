// Package serrors provides semantic error kinds shared by the client, the
// service layer and the HTTP API. A kind says what went wrong (not found,
// rate limited, ...) independently of where it happened, so callers can branch
// with errors.Is without knowing about HTTP or SQL.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error. Only NewKind creates kinds.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind returns a sentinel kind rendered as name. Kinds are comparable.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound: unknown competition, team, fixture or snapshot.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized: bad bearer token here, or a rejected API token upstream.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden: upstream refused the resource for our plan.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest: invalid ids, filters, cursors or limits.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict: upstream reported a conflicting request.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal: a bug or a failing dependency of our own, never shown to clients.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout: upstream or request deadline exceeded.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable: upstream unreachable or answering 5xx.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited: upstream request budget exhausted.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// errors.Is and errors.As match either the kind or anything in the cause chain.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name, in that
// order of preference.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap classifies err as k and prefixes it with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As extracts either the kind sentinel or a type from the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or nil when err
// carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// FromHTTPStatus maps an upstream HTTP status code to a semantic kind. It
// returns nil for successful codes and for codes without a semantic meaning.
func FromHTTPStatus(code int) Kind {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code == http.StatusGatewayTimeout || code == http.StatusRequestTimeout:
		return ErrTimeout
	case code >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

// HTTPStatus maps err to the status code the API should answer with.
// Errors without a kind are internal errors.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrRateLimited:
		return http.StatusTooManyRequests
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
