// Package planner turns a gap analysis into a daily time budget and a
// rotating weekly schedule.
package planner

import (
	"github.com/okian/studypath/internal/domain/model"
)

// Default planning configuration constants.
const (
	DefaultDailyHours     = 4.0
	DefaultTopStrongCount = 2

	weakShare     = 0.6
	moderateShare = 0.3
	strongShare   = 0.1

	daysPerWeek   = 7
	studyDaysEach = 4
	hoursPlaces   = 1
)

// Focus descriptions per category.
const (
	FocusWeak     = "Concept building & practice"
	FocusModerate = "Regular practice"
	FocusStrong   = "Revision & advanced topics"
)

var baseTips = []string{
	"Start with the most challenging topics when your mind is fresh",
	"Take 10-minute breaks every hour to maintain focus",
	"Practice previous year questions for weak subjects",
	"Use visual aids and diagrams for better understanding",
	"Teach concepts to others to reinforce your learning",
}

// Option applies a configuration option to the Planner.
type Option func(*Planner)

// WithDailyHours sets the total daily study budget.
func WithDailyHours(hours float64) Option {
	return func(p *Planner) {
		if hours > 0 {
			p.dailyHours = hours
		}
	}
}

// WithTopStrongCount sets how many strong subjects get revision time.
func WithTopStrongCount(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.topStrongCount = n
		}
	}
}

// Planner is immutable after construction and safe for concurrent use.
type Planner struct {
	dailyHours     float64
	topStrongCount int
}

// NewPlanner creates a planner with the default four-hour budget.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		dailyHours:     DefaultDailyHours,
		topStrongCount: DefaultTopStrongCount,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GeneratePlan allocates daily hours per category, builds the weekly rotation
// and collects study tips. Empty categories contribute nothing.
func (p *Planner) GeneratePlan(weak, moderate []model.SubjectGapEntry, strong []model.SubjectStrengthEntry) model.StudyPlan {
	allocation := make([]model.TimeAllocationEntry, 0, len(weak)+len(moderate)+p.topStrongCount)

	if len(weak) > 0 {
		hours := model.Round(p.dailyHours*weakShare/float64(len(weak)), hoursPlaces)
		for _, area := range weak {
			allocation = append(allocation, model.TimeAllocationEntry{
				Subject:     area.Subject,
				HoursPerDay: hours,
				Priority:    model.PriorityHigh,
				Focus:       FocusWeak,
			})
		}
	}

	if len(moderate) > 0 {
		hours := model.Round(p.dailyHours*moderateShare/float64(len(moderate)), hoursPlaces)
		for _, area := range moderate {
			allocation = append(allocation, model.TimeAllocationEntry{
				Subject:     area.Subject,
				HoursPerDay: hours,
				Priority:    model.PriorityMedium,
				Focus:       FocusModerate,
			})
		}
	}

	if len(strong) > 0 {
		// The share is split over every strong subject even though only the
		// top few are scheduled.
		hours := model.Round(p.dailyHours*strongShare/float64(max(len(strong), 1)), hoursPlaces)
		for _, area := range strong[:min(len(strong), p.topStrongCount)] {
			allocation = append(allocation, model.TimeAllocationEntry{
				Subject:     area.Subject,
				HoursPerDay: hours,
				Priority:    model.PriorityLow,
				Focus:       FocusStrong,
			})
		}
	}

	return model.StudyPlan{
		TimeAllocation:    allocation,
		WeeklySchedule:    WeeklySchedule(allocation),
		DailyTips:         Tips(weak),
		TotalHoursPerWeek: p.dailyHours * daysPerWeek,
		Summary:           WeeklySummary(allocation),
	}
}

// Scheduled reports whether the subject at allocation index j is studied on
// weekday i (0 = Monday).
func Scheduled(i, j int) bool {
	return (i+j)%daysPerWeek < studyDaysEach
}

// WeeklySchedule rotates subjects so each appears on four of the seven days,
// offset by its position in the allocation.
func WeeklySchedule(allocation []model.TimeAllocationEntry) model.WeeklySchedule {
	schedule := make(model.WeeklySchedule, daysPerWeek)
	for i, day := range model.Weekdays() {
		sessions := []model.ScheduledSession{}
		for j, entry := range allocation {
			if Scheduled(i, j) {
				sessions = append(sessions, model.ScheduledSession{
					Subject:  entry.Subject,
					Duration: entry.HoursPerDay,
					Focus:    entry.Focus,
				})
			}
		}
		schedule[day] = sessions
	}
	return schedule
}

// Tips returns the generic tips, led by a pointer to the largest weak gap.
func Tips(weak []model.SubjectGapEntry) []string {
	tips := make([]string, 0, len(baseTips)+1)
	if len(weak) > 0 {
		tips = append(tips, "Prioritize "+weak[0].Subject+" - focus on fundamentals first")
	}
	return append(tips, baseTips...)
}

// WeeklySummary groups allocated subjects by priority, keeping allocation order.
func WeeklySummary(allocation []model.TimeAllocationEntry) model.WeeklySummary {
	summary := model.WeeklySummary{
		HighPrioritySubjects:   []string{},
		MediumPrioritySubjects: []string{},
		RevisionSubjects:       []string{},
	}
	for _, entry := range allocation {
		switch entry.Priority {
		case model.PriorityHigh:
			summary.HighPrioritySubjects = append(summary.HighPrioritySubjects, entry.Subject)
		case model.PriorityMedium:
			summary.MediumPrioritySubjects = append(summary.MediumPrioritySubjects, entry.Subject)
		default:
			summary.RevisionSubjects = append(summary.RevisionSubjects, entry.Subject)
		}
	}
	return summary
}
