package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Sampler    SamplerConfig
	Errors     ErrorsConfig
	Telemetry  TelemetryConfig
	Health     HealthConfig
	Export     ExportConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"1000"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"meetpulse"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
}

type SamplerConfig struct {
	Interval       time.Duration `env:"SAMPLER_INTERVAL" envDefault:"10s"`
	CPUWarning     float64       `env:"SAMPLER_CPU_WARNING" envDefault:"70"`
	CPUCritical    float64       `env:"SAMPLER_CPU_CRITICAL" envDefault:"85"`
	MemoryWarning  float64       `env:"SAMPLER_MEMORY_WARNING" envDefault:"75"`
	MemoryCritical float64       `env:"SAMPLER_MEMORY_CRITICAL" envDefault:"90"`
	AlertCooldown  time.Duration `env:"SAMPLER_ALERT_COOLDOWN" envDefault:"5m"`
	StaleAfter     time.Duration `env:"SAMPLER_STALE_AFTER" envDefault:"30s"`
}

type ErrorsConfig struct {
	AnalysisInterval     time.Duration `env:"ERRORS_ANALYSIS_INTERVAL" envDefault:"5m"`
	Retention            time.Duration `env:"ERRORS_RETENTION" envDefault:"24h"`
	TrendWindow          time.Duration `env:"ERRORS_TREND_WINDOW" envDefault:"1h"`
	RateWarningPct       float64       `env:"ERRORS_RATE_WARNING_PCT" envDefault:"5"`
	RateCriticalPct      float64       `env:"ERRORS_RATE_CRITICAL_PCT" envDefault:"10"`
	PatternMinComponents int           `env:"ERRORS_PATTERN_MIN_COMPONENTS" envDefault:"3"`
	HealthWindow         time.Duration `env:"ERRORS_HEALTH_WINDOW" envDefault:"15m"`
}

type TelemetryConfig struct {
	Interval          time.Duration `env:"TELEMETRY_INTERVAL" envDefault:"60s"`
	ErrorRateWarning  float64       `env:"TELEMETRY_ERROR_RATE_WARNING" envDefault:"0.05"`
	ErrorRateCritical float64       `env:"TELEMETRY_ERROR_RATE_CRITICAL" envDefault:"0.10"`
}

type HealthConfig struct {
	// Zero disables the per-probe timeout.
	Timeout      time.Duration `env:"HEALTH_TIMEOUT" envDefault:"0s"`
	Concurrency  int           `env:"HEALTH_CONCURRENCY" envDefault:"8"`
	SchedulerLag int           `env:"HEALTH_SCHEDULER_LAG" envDefault:"3"`
}

type ExportConfig struct {
	LogEnabled        bool          `env:"EXPORT_LOG_ENABLED" envDefault:"true"`
	PrometheusEnabled bool          `env:"EXPORT_PROMETHEUS_ENABLED" envDefault:"true"`
	PostgresEnabled   bool          `env:"EXPORT_POSTGRES_ENABLED" envDefault:"false"`
	BufferSize        int           `env:"EXPORT_BUFFER_SIZE" envDefault:"64"`
	FlushThreshold    int           `env:"EXPORT_FLUSH_THRESHOLD" envDefault:"16"`
	FlushInterval     time.Duration `env:"EXPORT_FLUSH_INTERVAL" envDefault:"5s"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
	// Path prefixes served without limiting, for probes and scrapers.
	ExemptPaths []string `env:"RATE_LIMIT_EXEMPT_PATHS" envSeparator:"," envDefault:"/metrics,/api/v1/health"`
	// Aggregating queries get their own tighter budget. A zero RPS puts
	// them under the general limit.
	AnalyticsRPS   float64  `env:"RATE_LIMIT_ANALYTICS_RPS" envDefault:"5"`
	AnalyticsBurst int      `env:"RATE_LIMIT_ANALYTICS_BURST" envDefault:"10"`
	AnalyticsPaths []string `env:"RATE_LIMIT_ANALYTICS_PATHS" envSeparator:"," envDefault:"/api/v1/errors/trends,/api/v1/errors/top"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"15s"`
}

type ValidationConfig struct {
	MaxRequestBodySize string        `env:"MAX_REQUEST_BODY_SIZE" envDefault:"4K"`
	MinWindow          time.Duration `env:"VALIDATION_MIN_WINDOW" envDefault:"1m"`
	MaxWindow          time.Duration `env:"VALIDATION_MAX_WINDOW" envDefault:"24h"`
	DefaultTopLimit    int           `env:"VALIDATION_DEFAULT_TOP_LIMIT" envDefault:"10"`
	MaxTopLimit        int           `env:"VALIDATION_MAX_TOP_LIMIT" envDefault:"100"`
	MaxComponentLength int           `env:"VALIDATION_MAX_COMPONENT_LENGTH" envDefault:"64"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
