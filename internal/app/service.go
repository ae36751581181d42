// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/studypath/internal/domain/career"
	"github.com/okian/studypath/internal/domain/gap"
	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/planner"
	"github.com/okian/studypath/internal/domain/types"
	"github.com/okian/studypath/pkg/logger"
	"github.com/okian/studypath/pkg/metrics"
)

// GapAnalyzer classifies a marks record.
type GapAnalyzer interface {
	AnalyzeGaps(marks model.MarksRecord) (model.GapAnalysisResult, error)
	SubjectWiseAnalysis(marks model.MarksRecord) ([]model.SubjectGrade, error)
}

// StudyPlanner turns a classification into a weekly plan.
type StudyPlanner interface {
	GeneratePlan(weak, moderate []model.SubjectGapEntry, strong []model.SubjectStrengthEntry) model.StudyPlan
}

// CareerSuggester maps strong subjects to careers.
type CareerSuggester interface {
	SuggestCareers(strong []model.SubjectStrengthEntry) []model.CareerRecommendation
	SubjectCareerMap() map[string][]string
}

// Service runs the analysis pipeline: gap analysis, study plan, careers.
type Service struct {
	mu sync.RWMutex

	// Core components
	analyzer  GapAnalyzer
	planner   StudyPlanner
	suggester CareerSuggester

	// Configuration
	strictSubjects bool
	dailyHours     float64
	topStrongCount int
	maxCareers     int
	newID          func() string

	// State
	started   bool
	analyses  atomic.Int64
	invalid   atomic.Int64
	failures  atomic.Int64
	lastNanos atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrictSubjects rejects records that omit a subject.
func WithStrictSubjects(strict bool) Option {
	return func(s *Service) {
		s.strictSubjects = strict
	}
}

// WithDailyHours sets the daily study budget of the default planner.
func WithDailyHours(hours float64) Option {
	return func(s *Service) {
		if hours > 0 {
			s.dailyHours = hours
		}
	}
}

// WithTopStrongCount sets how many strong subjects the default planner revises.
func WithTopStrongCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topStrongCount = n
		}
	}
}

// WithMaxCareers caps the number of career suggestions of the default suggester.
func WithMaxCareers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCareers = n
		}
	}
}

// WithAnalyzer replaces the gap analyzer.
func WithAnalyzer(a GapAnalyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithPlanner replaces the study planner.
func WithPlanner(p StudyPlanner) Option {
	return func(s *Service) {
		if p != nil {
			s.planner = p
		}
	}
}

// WithSuggester replaces the career suggester.
func WithSuggester(c CareerSuggester) Option {
	return func(s *Service) {
		if c != nil {
			s.suggester = c
		}
	}
}

// WithIDGenerator overrides how analysis ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dailyHours:     planner.DefaultDailyHours,
		topStrongCount: planner.DefaultTopStrongCount,
		maxCareers:     career.DefaultMaxCareers,
		newID:          uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.analyzer == nil {
		s.analyzer = gap.NewAnalyzer(gap.WithStrict(s.strictSubjects))
	}
	if s.planner == nil {
		s.planner = planner.NewPlanner(
			planner.WithDailyHours(s.dailyHours),
			planner.WithTopStrongCount(s.topStrongCount),
		)
	}
	if s.suggester == nil {
		s.suggester = career.NewSuggester(career.WithMaxCareers(s.maxCareers))
	}

	return s
}

// Start marks the service ready and resolves the logger.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "analysis service started",
		logger.Bool("strictSubjects", s.strictSubjects),
		logger.Float64("dailyHours", s.dailyHours),
		logger.Int("topStrongCount", s.topStrongCount),
	)

	return nil
}

// Stop marks the service stopped. In-flight analyses finish normally.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped",
		logger.Any("analyses", s.analyses.Load()),
	)
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get()
	}
	return l
}

// Analyze runs the full pipeline for one student. Invalid marks return an
// error wrapping model.ErrInvalidInput; any unexpected failure inside the
// pipeline is reported as model.ErrComputation.
func (s *Service) Analyze(ctx context.Context, name string, marks model.MarksRecord) (types.Report, error) {
	const op = "service.analyze"

	if err := ctx.Err(); err != nil {
		return types.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = types.DefaultStudentName
	}

	start := time.Now()
	report, err := s.run(name, marks)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0
	s.lastNanos.Store(time.Now().UnixNano())

	log := s.log()
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			s.invalid.Add(1)
			metrics.RecordAnalysis(metrics.OutcomeInvalidInput)
			log.Debug(ctx, "rejected marks", logger.String("student", name), logger.Error(err))
		default:
			s.failures.Add(1)
			metrics.RecordAnalysis(metrics.OutcomeError)
			metrics.RecordErrorByComponent("service", "computation")
			metrics.RecordErrorLatency("service", "computation", latencyMs)
			log.Error(ctx, "analysis failed", logger.String("student", name), logger.Error(err))
		}
		return types.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	s.analyses.Add(1)
	s.observe(report, latencyMs)
	log.Info(ctx, "analysis completed",
		logger.String("analysisID", report.AnalysisID),
		logger.String("student", name),
		logger.Int("weak", len(report.GapAnalysis.WeakAreas)),
		logger.Int("moderate", len(report.GapAnalysis.ModerateAreas)),
		logger.Int("strong", len(report.GapAnalysis.StrongAreas)),
		logger.Float64("latencyMs", latencyMs),
	)
	return report, nil
}

// run executes the three stages and converts a panic into ErrComputation.
func (s *Service) run(name string, marks model.MarksRecord) (report types.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = types.Report{}
			err = fmt.Errorf("%w: %v", model.ErrComputation, r)
		}
	}()

	res, err := s.analyzer.AnalyzeGaps(marks)
	if err != nil {
		return types.Report{}, err
	}
	grades, err := s.analyzer.SubjectWiseAnalysis(marks)
	if err != nil {
		return types.Report{}, err
	}

	return types.Report{
		AnalysisID:        s.newID(),
		StudentName:       name,
		GapAnalysis:       res,
		SubjectAnalysis:   grades,
		StudyPlan:         s.planner.GeneratePlan(res.WeakAreas, res.ModerateAreas, res.StrongAreas),
		CareerSuggestions: s.suggester.SuggestCareers(res.StrongAreas),
	}, nil
}

func (s *Service) observe(report types.Report, latencyMs float64) {
	res := report.GapAnalysis
	metrics.RecordAnalysis(metrics.OutcomeSuccess)
	metrics.RecordAnalysisLatency(latencyMs)
	metrics.RecordClassifications(len(res.WeakAreas), len(res.ModerateAreas), len(res.StrongAreas))
	metrics.RecordOverallPerformance(string(res.OverallPerformance))
	metrics.RecordPlannedHours(report.StudyPlan.TotalHoursPerWeek)
	if len(res.StrongAreas) == 0 {
		metrics.RecordCareerDefaultFallback()
	}
	for _, rec := range report.CareerSuggestions {
		metrics.RecordCareerSuggested(rec.Career)
	}
}

// Demo analyzes the canned sample student.
func (s *Service) Demo(ctx context.Context) (types.Report, error) {
	demo := types.DemoStudent()
	return s.Analyze(ctx, demo.Name, demo.Marks)
}

// CareerMap returns the subject to careers table keyed by display name.
func (s *Service) CareerMap() map[string][]string {
	return s.suggester.SubjectCareerMap()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"strictSubjects":   s.strictSubjects,
		"dailyStudyHours":  s.dailyHours,
		"topStrongCount":   s.topStrongCount,
		"maxCareers":       s.maxCareers,
		"analyses":         s.analyses.Load(),
		"invalidInputs":    s.invalid.Load(),
		"computationFails": s.failures.Load(),
	}
	if last := s.lastNanos.Load(); last > 0 {
		stats["lastAnalysisAt"] = time.Unix(0, last).UTC().Format(time.RFC3339)
	}

	return stats
}
