package config

import "time"

const (
	defaultPort             = 8080
	defaultLogLevel         = "info"
	defaultOperationTimeout = 3 * time.Second
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "synqall",
	Pass: "synqall",
	Name: "synqall",
}

var defaultRetry = Retry{
	MaxAttempts: 3,
	BaseDelay:   50 * time.Millisecond,
	MaxDelay:    500 * time.Millisecond,
}

var defaultKafka = Kafka{
	Brokers:               []string{"localhost:9092"},
	GroupID:               "synqall-worker",
	RateConfirmationTopic: "rate-confirmation.events",
	CallExtractionTopic:   "calls.extraction-completed",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10_000,
}

var defaultTracing = Tracing{
	Exporter:    "none",
	ServiceName: "synqall",
}

// Default returns a config populated with defaults only.
func Default() *Config {
	k := defaultKafka
	k.Brokers = append([]string(nil), defaultKafka.Brokers...)
	return &Config{
		Port:             defaultPort,
		LogLevel:         defaultLogLevel,
		OperationTimeout: defaultOperationTimeout,
		DB:               defaultDB,
		Retry:            defaultRetry,
		Kafka:            k,
		RateLimit:        defaultRateLimit,
		Tracing:          defaultTracing,
	}
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRetry returns the default database retry settings.
func DefaultRetry() Retry {
	return defaultRetry
}
