package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, API middleware,
// frontend bundles, database connection, background workers, and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"NODE_ENV" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Port is the TCP port the HTTP server will listen on, on all interfaces
		Port int `env:"PORT" env-default:"4000" yaml:"port"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// CORS contains the cross-origin policy applied to API requests
	CORS struct {
		// AllowedOrigins is the list of origins allowed to make credentialed requests
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173,https://hybridreality.vercel.app" yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"cors"`

	// RateLimit contains the fixed-window limiter settings for API requests
	RateLimit struct {
		// Window is the fixed window duration after which per-client counters reset
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m" yaml:"window"`
		// Max is the number of requests allowed per client within a window, zero disables limiting
		Max int `env:"RATE_LIMIT_MAX" env-default:"500" yaml:"max"`
	} `yaml:"rateLimit"`

	// Body contains request payload restrictions for API requests
	Body struct {
		// MaxBytes caps the accepted request body size in bytes (default 50MB)
		MaxBytes int64 `env:"BODY_MAX_BYTES" env-default:"52428800" yaml:"maxBytes"`
	} `yaml:"body"`

	// Frontends contains the locations of the pre-built SPA bundles
	Frontends struct {
		// UserDir is the directory holding the user-facing frontend build
		UserDir string `env:"FRONTENDS_USER_DIR" env-default:"user_dist" yaml:"userDir"`
		// AdminDir is the directory holding the admin frontend build
		AdminDir string `env:"FRONTENDS_ADMIN_DIR" env-default:"admin_dist" yaml:"adminDir"`
		// AdminPrefix is the URL prefix the admin frontend is mounted under
		AdminPrefix string `env:"FRONTENDS_ADMIN_PREFIX" env-default:"/admin" yaml:"adminPrefix"`
	} `yaml:"frontends"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"hybridreality" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Stats contains settings for API request statistics persistence
	Stats struct {
		// FlushInterval is how often aggregated request stats are flushed to the database
		FlushInterval time.Duration `env:"STATS_FLUSH_INTERVAL" env-default:"1m" yaml:"flushInterval"`
	} `yaml:"stats"`

	// Exports contains settings for the temporary export working directory
	Exports struct {
		// Dir is the directory export files are written to, created at startup
		Dir string `env:"EXPORTS_DIR" env-default:"tmp" yaml:"dir"`
		// MaxAge is how long export files are kept before the sweeper removes them
		MaxAge time.Duration `env:"EXPORTS_MAX_AGE" env-default:"24h" yaml:"maxAge"`
		// SweepInterval is how often the sweeper scans the export directory
		SweepInterval time.Duration `env:"EXPORTS_SWEEP_INTERVAL" env-default:"1h" yaml:"sweepInterval"`
	} `yaml:"exports"`

	// JWT contains the RS256 key material for protected API routes
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens,
		// protected routes are not mounted when empty
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Worker contains background job processing configurations
	Worker struct {
		// MaxWorkers limits the number of jobs the queue client runs concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

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

// Addr returns the listen address derived from the configured port. The
// server binds all interfaces, matching the deployment behind a proxy.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
