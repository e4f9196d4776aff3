package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DataPath        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Map image fetching configuration.
	FetchTimeout   time.Duration
	ImageCacheSize int

	// Kafka diagnostics sink configuration.
	DiagKafkaBrokers []string
	DiagKafkaTopic   string
	DiagEnabled      bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parsePositiveDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("DIAG_KAFKA_BROKERS"))
	diagEnabled := len(brokers) > 0
	if v := os.Getenv("DIAG_KAFKA_ENABLED"); v != "" {
		diagEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DataPath:        envOrDefault("DATA_PATH", "main_data.csv"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FetchTimeout:   fetchTimeout,
		ImageCacheSize: parseImageCacheSize(),

		DiagKafkaBrokers: brokers,
		DiagKafkaTopic:   envOrDefault("DIAG_KAFKA_TOPIC", "drought-fetch-diagnostics"),
		DiagEnabled:      diagEnabled,
	}

	if cfg.DiagEnabled && len(cfg.DiagKafkaBrokers) == 0 {
		return nil, errors.New("DIAG_KAFKA_ENABLED is true but DIAG_KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// parseImageCacheSize returns the configured cache capacity. Zero disables
// the cache; invalid values fall back to the default.
func parseImageCacheSize() int {
	if s := os.Getenv("IMAGE_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return 256
}
