// Package controller holds the chi middlewares shared by the HTTP API.
//
// WithLogger tags every request with an ID and a request-scoped logger. The
// CORS and OpenTelemetry metrics middlewares are configured by the server.
// Profiler serves net/http/pprof under /debug/pprof.
package controller
