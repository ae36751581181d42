// Package gap classifies a student's subjects against their own average and
// spread, and produces the letter-grade view of the same marks.
package gap

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/studypath/internal/domain/model"
)

// Thresholds for severity and the overall performance bands.
const (
	criticalMarkBelow = 40.0
	excellentAverage  = 80.0
	goodAverage       = 60.0
	averageAverage    = 40.0
	decimalPlaces     = 2
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithStrict rejects records that omit any subject instead of defaulting it.
func WithStrict(strict bool) Option {
	return func(a *Analyzer) {
		a.strict = strict
	}
}

// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	subjects []model.Subject
	strict   bool
}

// NewAnalyzer creates an analyzer over the fixed subject set.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		subjects: model.Subjects(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeGaps classifies every subject as weak, moderate or strong.
//
// A subject is weak when its mark is more than one population standard
// deviation below the average, moderate when it is below the average, and
// strong otherwise.
func (a *Analyzer) AnalyzeGaps(marks model.MarksRecord) (model.GapAnalysisResult, error) {
	const op = "gap.analyze"
	if err := marks.Validate(a.strict); err != nil {
		return model.GapAnalysisResult{}, fmt.Errorf("%s: %w", op, err)
	}

	values := make([]float64, len(a.subjects))
	for i, s := range a.subjects {
		values[i] = marks.Mark(s)
	}
	avg, std := meanStd(values)

	res := model.GapAnalysisResult{
		Average:            model.Round(avg, decimalPlaces),
		WeakAreas:          []model.SubjectGapEntry{},
		ModerateAreas:      []model.SubjectGapEntry{},
		StrongAreas:        []model.SubjectStrengthEntry{},
		OverallPerformance: performance(avg),
	}

	for i, s := range a.subjects {
		mark := values[i]
		switch {
		case mark < avg-std:
			severity := model.SeverityHigh
			if mark < criticalMarkBelow {
				severity = model.SeverityCritical
			}
			res.WeakAreas = append(res.WeakAreas, model.SubjectGapEntry{
				Subject:  s.Display(),
				Marks:    int(mark),
				Gap:      model.Round(avg-mark, decimalPlaces),
				Severity: severity,
			})
		case mark < avg:
			res.ModerateAreas = append(res.ModerateAreas, model.SubjectGapEntry{
				Subject:  s.Display(),
				Marks:    int(mark),
				Gap:      model.Round(avg-mark, decimalPlaces),
				Severity: model.SeverityModerate,
			})
		default:
			res.StrongAreas = append(res.StrongAreas, model.SubjectStrengthEntry{
				Subject:   s.Display(),
				Marks:     int(mark),
				Advantage: model.Round(mark-avg, decimalPlaces),
			})
		}
	}

	sort.SliceStable(res.WeakAreas, func(i, j int) bool {
		return res.WeakAreas[i].Gap > res.WeakAreas[j].Gap
	})
	sort.SliceStable(res.StrongAreas, func(i, j int) bool {
		return res.StrongAreas[i].Advantage > res.StrongAreas[j].Advantage
	})

	return res, nil
}

// SubjectWiseAnalysis grades each subject on fixed thresholds. It does not
// depend on the weak/moderate/strong classification.
func (a *Analyzer) SubjectWiseAnalysis(marks model.MarksRecord) ([]model.SubjectGrade, error) {
	const op = "gap.subject_wise"
	if err := marks.Validate(a.strict); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]model.SubjectGrade, 0, len(a.subjects))
	for _, s := range a.subjects {
		mark := marks.Mark(s)
		out = append(out, model.SubjectGrade{
			Subject: s.Display(),
			Marks:   int(mark),
			Grade:   Grade(mark),
			Status:  Status(mark),
		})
	}
	return out, nil
}

// Grade converts marks to a letter grade.
func Grade(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B+"
	case marks >= 60:
		return "B"
	case marks >= 50:
		return "C"
	case marks >= 40:
		return "D"
	default:
		return "F"
	}
}

// Status labels a single subject's marks.
func Status(marks float64) string {
	switch {
	case marks >= 70:
		return "Strong"
	case marks >= 50:
		return "Average"
	default:
		return "Needs Attention"
	}
}

func performance(avg float64) model.Performance {
	switch {
	case avg >= excellentAverage:
		return model.PerformanceExcellent
	case avg >= goodAverage:
		return model.PerformanceGood
	case avg >= averageAverage:
		return model.PerformanceAverage
	default:
		return model.PerformanceNeedsImprovement
	}
}

// meanStd returns the arithmetic mean and population standard deviation.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
