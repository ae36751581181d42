package loadtest

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/okian/studypath/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Run executes the complete load test: health check, generation,
// concurrent submission and verification. It returns ErrVerification when
// any report broke an invariant.
func Run(ctx context.Context, config Config) (*Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("loadtest")
	stats := &Stats{
		StartTime:   time.Now(),
		Performance: make(map[string]int),
	}

	log.Info(ctx, "starting studypath load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.Students),
		logger.Int("concurrency", config.Concurrency),
		logger.Duration("timeout", config.Timeout),
	)

	client := newHTTPClient(config.Timeout)
	defer client.Close()

	if err := checkServiceHealth(ctx, client, config.BaseURL); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	students := NewGenerator(config.Seed).Students(config.Students)
	stats.StudentsGenerated = len(students)
	log.Info(ctx, "generated students", logger.Int("count", len(students)))

	if err := submitStudents(ctx, client, config, students, stats, log); err != nil {
		return stats, fmt.Errorf("student submission failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if stats.Violations > 0 {
		return stats, fmt.Errorf("%w: %d reports", ErrVerification, stats.Violations)
	}
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, baseURL string) error {
	resp, err := client.Get(ctx, baseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// submitStudents posts every student with at most config.Concurrency
// requests in flight. Per-request failures are counted, not returned.
func submitStudents(ctx context.Context, client *HTTPClient, config Config, students []Student, stats *Stats, log logger.Logger) error {
	url := config.BaseURL + "/api/analyze"

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Concurrency)

	for _, student := range students {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, res, err := submitStudent(gctx, client, url, student)

			var violation error
			if res == resultSuccess {
				violation = Verify(student, report)
			}

			mu.Lock()
			defer mu.Unlock()
			stats.Submitted++
			switch res {
			case resultSuccess:
				stats.Successful++
				stats.Performance[string(report.GapAnalysis.OverallPerformance)]++
			case resultRejected:
				stats.Rejected++
			default:
				stats.Failed++
			}
			if err != nil && config.Verbose {
				log.Warn(gctx, "submission failed", logger.String("student", student.Name), logger.Error(err))
			}
			if violation != nil {
				stats.Violations++
				if config.Verbose || stats.Violations <= maxViolationSamples {
					log.Error(gctx, "report violates invariants",
						logger.String("student", student.Name),
						logger.Error(violation),
					)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// displayFinalStats logs the final test statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var successRate, studentsPerSecond float64
	if stats.Submitted > 0 {
		successRate = float64(stats.Successful) / float64(stats.Submitted) * percentage
	}
	if stats.Duration > 0 {
		studentsPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("studentsGenerated", stats.StudentsGenerated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("rejected", stats.Rejected),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", stats.Violations),
		logger.Any("performance", stats.Performance),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("studentsPerSecond", studentsPerSecond),
	)
}
