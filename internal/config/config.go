package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port             int
	LogLevel         string
	OperationTimeout time.Duration

	DB        DB
	Retry     Retry
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
	Tracing   Tracing
}

// DB is the Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Retry configures retries of transient database errors.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka configures the worker consumer group.
type Kafka struct {
	Brokers               []string
	GroupID               string
	RateConfirmationTopic string
	CallExtractionTopic   string
}

// RateLimit configures the per-client token bucket.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof configures the debug listener. An empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Tracing selects the span exporter: "none", "stdout" or "otlp".
type Tracing struct {
	Exporter    string
	Endpoint    string
	ServiceName string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := Default()
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.OperationTimeout, "operation-timeout", cfg.OperationTimeout, "timeout of a single service operation")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid postgres port: %q", c.DB.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	switch c.Tracing.Exporter {
	case "none", "stdout", "otlp":
	default:
		return fmt.Errorf("invalid tracing exporter: %q", c.Tracing.Exporter)
	}
	return nil
}

func fromEnv(cfg *Config) error {
	var err error
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" && err == nil {
			n, e := strconv.Atoi(v)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" && err == nil {
			d, e := time.ParseDuration(v)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = d
		}
	}
	setFloat := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" && err == nil {
			f, e := strconv.ParseFloat(v, 64)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = f
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" && err == nil {
			b, e := strconv.ParseBool(v)
			if e != nil {
				err = fmt.Errorf("%s: %w", key, e)
				return
			}
			*dst = b
		}
	}
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setInt("PORT", &cfg.Port)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setDuration("OPERATION_TIMEOUT", &cfg.OperationTimeout)

	setString("POSTGRES_HOST", &cfg.DB.Host)
	setString("POSTGRES_PORT", &cfg.DB.Port)
	setString("POSTGRES_USER", &cfg.DB.User)
	setString("POSTGRES_PASSWORD", &cfg.DB.Pass)
	setString("POSTGRES_DB", &cfg.DB.Name)

	setInt("DB_RETRY_MAX_ATTEMPTS", &cfg.Retry.MaxAttempts)
	setDuration("DB_RETRY_BASE_DELAY", &cfg.Retry.BaseDelay)
	setDuration("DB_RETRY_MAX_DELAY", &cfg.Retry.MaxDelay)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	setString("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	setString("KAFKA_RATE_CONFIRMATION_TOPIC", &cfg.Kafka.RateConfirmationTopic)
	setString("KAFKA_CALL_EXTRACTION_TOPIC", &cfg.Kafka.CallExtractionTopic)

	setBool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	setFloat("RATE_LIMIT_RATE", &cfg.RateLimit.Rate)
	setInt("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	setDuration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL)
	setInt("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets)

	setString("PPROF_ADDR", &cfg.Pprof.Addr)
	setString("PPROF_USER", &cfg.Pprof.User)
	setString("PPROF_PASSWORD", &cfg.Pprof.Pass)

	setString("TRACING_EXPORTER", &cfg.Tracing.Exporter)
	setString("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.Tracing.Endpoint)
	setString("OTEL_SERVICE_NAME", &cfg.Tracing.ServiceName)

	return err
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
