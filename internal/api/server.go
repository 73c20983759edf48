// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the football data proxy.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"football/internal/api/handler/v1handler"
	"football/internal/config"
	"football/internal/football"
	"football/pkg/controller"
)

// v1Document is the OpenAPI description served at /specs/v1.yaml.
//
//go:embed specs/v1.yaml
var v1Document []byte

// Options configures the HTTP server. Zero durations keep the net/http
// defaults.
type Options struct {
	// SecHandlerOptions enables bearer tokens on /v1 when it carries a key.
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// RequestTimeout caps the time a handler may take before the client
	// gets a 503 TIMEOUT body.
	RequestTimeout time.Duration
	// MetricsPath serves the Prometheus exposition format.
	MetricsPath string
	// AllowedOrigins lists the CORS origins, "*" allows any.
	AllowedOrigins []string

	// Registry receives the OpenTelemetry exporter and backs MetricsPath.
	// Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions maps the HTTP settings of cfg to server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	Service football.Service
}

// NewServer builds the proxy's HTTP server. Besides the /v1 routes it serves
// Prometheus metrics at MetricsPath, the OpenAPI document with a Swagger UI at
// /v1/docs/ and pprof at /debug/pprof. Docs, metrics and pprof are never
// behind bearer authentication.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter("football/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(v1handler.Deps{Service: deps.Service})

	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.WithCORS(opts.AllowedOrigins), withMetrics)

	// prometheus metrics server
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Document)
	})

	r.Route("/v1", func(r chi.Router) {
		// swagger playground
		r.Handle("/docs/*", v5emb.New(
			"Football Data Proxy",
			"/specs/v1.yaml",
			"/v1/docs/",
		))

		r.Group(func(r chi.Router) {
			r.Use(secHandler.Middleware)
			v1.Routes(r)
		})
	})

	// pprof
	r.Mount("/debug/pprof", controller.Profiler())

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
