// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over those defaults.
// - External errors are wrapped with this package's sentinel kinds.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DailyStudyHours is the per-day study budget split across subjects.
	DailyStudyHours float64 `koanf:"daily_study_hours"`

	// TopStrongCount caps how many strong subjects receive revision time.
	TopStrongCount int `koanf:"top_strong_count"`

	// StrictSubjects rejects records that omit a subject instead of defaulting it to 0.
	StrictSubjects bool `koanf:"strict_subjects"`

	// MaxBodyBytes bounds POST /api/analyze request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// ReadTimeoutMS and WriteTimeoutMS configure the HTTP server.
	ReadTimeoutMS  int `koanf:"read_timeout_ms"`
	WriteTimeoutMS int `koanf:"write_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		DailyStudyHours: 4.0,
		TopStrongCount:  2,
		StrictSubjects:  false,
		MaxBodyBytes:    64 << 10,
		ReadTimeoutMS:   5_000,
		WriteTimeoutMS:  10_000,
	}
}

// ReadTimeout returns the HTTP read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// WriteTimeout returns the HTTP write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMS) * time.Millisecond
}
