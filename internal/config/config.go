package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Every field can
// be overridden with the environment variable named in its env tag.
type Config struct {
	// Environment selects the logger setup (development, production or test)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default level when set, e.g. "debug"
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode  string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"football" yaml:"name"`
		// MaxOpenConnections limits the size of the pgx pool
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the number of connections the pool keeps open
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the response cache. Caching is disabled when Addr is empty.
	Redis struct {
		// Addr is a redis:// URL or a host:port pair
		Addr      string `env:"REDIS_ADDR" yaml:"addr"`
		Password  string `env:"REDIS_PASSWORD" yaml:"password"`
		DB        int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		Namespace string `env:"REDIS_NAMESPACE" env-default:"football:" yaml:"namespace"`
	} `yaml:"redis"`

	// FootballData configures the upstream football-data.org client
	FootballData struct {
		BaseURL string `env:"FOOTBALL_DATA_BASE_URL" env-default:"http://api.football-data.org/v1/" yaml:"baseUrl"`
		// Token is sent as X-Auth-Token, anonymous access is used when empty
		Token string `env:"FOOTBALL_DATA_TOKEN" yaml:"token"`
		// Timeout bounds a single upstream request
		Timeout time.Duration `env:"FOOTBALL_DATA_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// RequestsPerMinute is the plan's request budget
		RequestsPerMinute int `env:"FOOTBALL_DATA_REQUESTS_PER_MINUTE" env-default:"10" yaml:"requestsPerMinute"`
	} `yaml:"footballData"`

	Cache struct {
		// TTL is how long upstream responses are cached, zero disables caching
		TTL time.Duration `env:"CACHE_TTL" env-default:"5m" yaml:"ttl"`
	} `yaml:"cache"`

	// Sync configures the background snapshot jobs
	Sync struct {
		// Competitions are league codes or competition IDs refreshed periodically
		Competitions []string `env:"SYNC_COMPETITIONS" yaml:"competitions"`
		// Interval between periodic syncs of each competition
		Interval time.Duration `env:"SYNC_INTERVAL" env-default:"6h" yaml:"interval"`
		// UniquePeriod is the window in which a second sync of the same competition is deduplicated
		UniquePeriod time.Duration `env:"SYNC_UNIQUE_PERIOD" env-default:"10m" yaml:"uniquePeriod"`
		MaxAttempts  int           `env:"SYNC_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Retention is how long snapshots are kept before the prune job removes them
		Retention  time.Duration `env:"SYNC_RETENTION" env-default:"720h" yaml:"retention"`
		MaxWorkers int           `env:"SYNC_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"sync"`

	// JWT holds the RS256 key pair in PEM. Authentication is disabled when
	// PublicKey is empty.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
