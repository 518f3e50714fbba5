// Package config loads the engine configuration from a YAML file with
// environment-variable overrides. Engine defaults that carry legal ranges
// (spam thresholds, caps ratio, SLA) are clamped at load time so a bad
// config file cannot put the pipeline into a degenerate state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full engine configuration.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Observability ObservabilityConfig `yaml:"observability"`
	Engine        EngineConfig        `yaml:"engine"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the health/metrics listener configuration.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	Environment     string  `yaml:"environment"`
	TempoEndpoint   string  `yaml:"tempo_endpoint"`
	TempoInsecure   bool    `yaml:"tempo_insecure"`
	TempoSampleRate float64 `yaml:"tempo_sample_rate"`
}

// EngineConfig holds fallback defaults for per-guild settings plus the
// sweep cadences. Per-guild values in the database override these.
type EngineConfig struct {
	CapsRatioThreshold float64 `yaml:"caps_ratio_threshold"`
	SpamMessageCount   int     `yaml:"spam_message_count"`
	SpamWindowSeconds  int     `yaml:"spam_window_seconds"`
	AntiAltMinAgeHours int     `yaml:"anti_alt_min_age_hours"`
	JoinBurstCount     int     `yaml:"join_burst_count"`
	TicketSLAMinutes   int     `yaml:"ticket_sla_minutes"`

	SLASweepInterval       time.Duration `yaml:"sla_sweep_interval"`
	AutoCloseSweepInterval time.Duration `yaml:"auto_close_sweep_interval"`
	AutoCloseAfter         time.Duration `yaml:"auto_close_after"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	clampEngine(&cfg.Engine)
	return &cfg, validate(&cfg)
}

func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	clampEngine(&cfg.Engine)
	return &cfg, validate(&cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("TEMPO_ENDPOINT"); v != "" {
		cfg.Observability.TempoEndpoint = v
	}
	if v := os.Getenv("TEMPO_INSECURE"); v != "" {
		cfg.Observability.TempoInsecure = v == "true"
	}
	if v := os.Getenv("TEMPO_SAMPLE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Observability.TempoSampleRate = f
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Observability.TempoSampleRate == 0 {
		cfg.Observability.TempoSampleRate = 0.1
	}
	e := &cfg.Engine
	if e.CapsRatioThreshold == 0 {
		e.CapsRatioThreshold = 0.8
	}
	if e.SpamMessageCount == 0 {
		e.SpamMessageCount = 6
	}
	if e.SpamWindowSeconds == 0 {
		e.SpamWindowSeconds = 8
	}
	if e.AntiAltMinAgeHours == 0 {
		e.AntiAltMinAgeHours = 24
	}
	if e.JoinBurstCount == 0 {
		e.JoinBurstCount = 10
	}
	if e.TicketSLAMinutes == 0 {
		e.TicketSLAMinutes = 60
	}
	if e.SLASweepInterval == 0 {
		e.SLASweepInterval = 2 * time.Minute
	}
	if e.AutoCloseSweepInterval == 0 {
		e.AutoCloseSweepInterval = 5 * time.Minute
	}
	if e.AutoCloseAfter == 0 {
		e.AutoCloseAfter = 72 * time.Hour
	}
}

// clampEngine forces the engine defaults into their legal ranges. The same
// clamps apply to per-guild updates in the guild module.
func clampEngine(e *EngineConfig) {
	e.CapsRatioThreshold = ClampRatio(e.CapsRatioThreshold)
	e.SpamMessageCount = ClampCount(e.SpamMessageCount)
	e.SpamWindowSeconds = ClampWindowSeconds(e.SpamWindowSeconds)
	e.JoinBurstCount = ClampCount(e.JoinBurstCount)
	e.TicketSLAMinutes = ClampMinutes(e.TicketSLAMinutes)
	if e.AntiAltMinAgeHours < 0 {
		e.AntiAltMinAgeHours = 0
	}
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres DSN not set (config file or DATABASE_URL)")
	}
	if cfg.NATS.URL == "" {
		return fmt.Errorf("NATS URL not set (config file or NATS_URL)")
	}
	return nil
}

// ClampRatio bounds a ratio threshold to [0.1, 1.0].
func ClampRatio(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// ClampCount bounds a rate-limit message count to at least 2. A threshold
// of 1 would block every message.
func ClampCount(v int) int {
	if v < 2 {
		return 2
	}
	return v
}

// ClampWindowSeconds bounds a rate-limit window to at least 2 seconds.
func ClampWindowSeconds(v int) int {
	if v < 2 {
		return 2
	}
	return v
}

// ClampMinutes bounds an SLA to at least 1 minute.
func ClampMinutes(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// ClampXPRate bounds an XP multiplier to [0.1, 5.0].
func ClampXPRate(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 5.0 {
		return 5.0
	}
	return v
}
