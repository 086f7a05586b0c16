// Package config loads runtime settings from the environment and targeting
// data (keywords, markets, company profile) from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SMTPConfig holds mail-submission settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	From     string

	DailySendLimit int
	// Uniform random delay between consecutive campaign sends.
	DelayMin time.Duration
	DelayMax time.Duration
}

// Configured reports whether credentials are present. A send run refuses to
// start without them.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.From != ""
}

// ScrapingConfig holds the shared fetch behavior of all scrapers.
type ScrapingConfig struct {
	DelayMin   time.Duration
	DelayMax   time.Duration
	MaxRetries int
	Timeout    time.Duration
	MaxResults int
}

// Config is the full application configuration.
type Config struct {
	// DBDriver is "postgres" or "sqlite3".
	DBDriver string
	DBDSN    string
	// EnforceUniqueLeads adds a unique index on (company_name, website) at
	// migration time. Off by default: duplicate detection is query-then-insert
	// and two concurrent searches can race past it.
	EnforceUniqueLeads bool

	// AMQPURL enables the event producer and intake worker when non-empty.
	AMQPURL string

	HTTPPort   string
	ExportsDir string

	// EnrichInterval enables the background enrichment worker when positive.
	EnrichInterval time.Duration

	SMTP     SMTPConfig
	Scraping ScrapingConfig

	Targeting *Targeting
}

// Load reads environment variables (the caller is expected to have run
// godotenv.Load already) and the targeting YAML if TARGETING_PATH is set.
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:           envOrDefault("DB_DRIVER", "sqlite3"),
		DBDSN:              envOrDefault("DB_DSN", "data/leads.db"),
		EnforceUniqueLeads: envBool("LEADS_UNIQUE_INDEX", false),
		AMQPURL:            os.Getenv("AMQP_URL"),
		HTTPPort:           envOrDefault("PORT", "8080"),
		ExportsDir:         envOrDefault("EXPORTS_DIR", "exports"),
		EnrichInterval:     time.Duration(envInt("ENRICH_INTERVAL_MINUTES", 0)) * time.Minute,
		SMTP: SMTPConfig{
			Host:           envOrDefault("SMTP_SERVER", "smtp.gmail.com"),
			Port:           envInt("SMTP_PORT", 587),
			User:           os.Getenv("SMTP_USER"),
			Password:       os.Getenv("SMTP_PASSWORD"),
			FromName:       envOrDefault("FROM_NAME", "Aksoy Tekstil"),
			From:           os.Getenv("FROM_EMAIL"),
			DailySendLimit: envInt("DAILY_SEND_LIMIT", 50),
			DelayMin:       envSeconds("SEND_DELAY_MIN", 30),
			DelayMax:       envSeconds("SEND_DELAY_MAX", 60),
		},
		Scraping: ScrapingConfig{
			DelayMin:   envSeconds("SCRAPE_DELAY_MIN", 2),
			DelayMax:   envSeconds("SCRAPE_DELAY_MAX", 5),
			MaxRetries: envInt("SCRAPE_MAX_RETRIES", 3),
			Timeout:    envSeconds("SCRAPE_TIMEOUT", 30),
			MaxResults: envInt("SCRAPE_MAX_RESULTS", 100),
		},
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	targeting, err := LoadTargeting(os.Getenv("TARGETING_PATH"))
	if err != nil {
		return nil, err
	}
	cfg.Targeting = targeting

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Second
}
