// Package loadtest drives a running studypath server with generated
// students and checks every report it gets back.
package loadtest

import (
	"errors"
	"time"
)

// Default load test configuration constants.
const (
	DefaultBaseURL     = "http://localhost:9080"
	DefaultStudents    = 1000
	DefaultConcurrency = 16
	DefaultTimeout     = 10 * time.Second
)

// Config holds configuration for a load test run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Students    int           // Number of students to generate
	Concurrency int           // Maximum in-flight requests
	Timeout     time.Duration // HTTP request timeout
	Seed        uint64        // Seed for the mark generator, 0 picks one from the clock
	Verbose     bool          // Log every violation
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Students:    DefaultStudents,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("loadtest: base url is required")
	case c.Students <= 0:
		return errors.New("loadtest: students must be positive")
	case c.Concurrency <= 0:
		return errors.New("loadtest: concurrency must be positive")
	case c.Timeout <= 0:
		return errors.New("loadtest: timeout must be positive")
	}
	return nil
}

// Student is the request body posted to /api/analyze.
type Student struct {
	Name      string  `json:"name"`
	Math      float64 `json:"math"`
	Science   float64 `json:"science"`
	English   float64 `json:"english"`
	History   float64 `json:"history"`
	Geography float64 `json:"geography"`
	Computer  float64 `json:"computer"`
}

// Stats holds load test statistics.
type Stats struct {
	StudentsGenerated int
	Submitted         int
	Successful        int
	Rejected          int
	Failed            int
	Violations        int
	Performance       map[string]int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}

// ErrVerification is returned by Run when any report broke an invariant.
var ErrVerification = errors.New("loadtest: report verification failed")
