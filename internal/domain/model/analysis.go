package model

// Severity labels a weak or moderate subject.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityModerate Severity = "Moderate"
)

// Performance is the overall band for a student's average.
type Performance string

// Performance bands.
const (
	PerformanceExcellent        Performance = "Excellent"
	PerformanceGood             Performance = "Good"
	PerformanceAverage          Performance = "Average"
	PerformanceNeedsImprovement Performance = "Needs Improvement"
)

// Priority ranks a subject's share of study time.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SubjectGapEntry describes a subject scoring below the student's average.
type SubjectGapEntry struct {
	Subject  string   `json:"subject"`
	Marks    int      `json:"marks"`
	Gap      float64  `json:"gap"`
	Severity Severity `json:"severity"`
}

// SubjectStrengthEntry describes a subject at or above the student's average.
type SubjectStrengthEntry struct {
	Subject   string  `json:"subject"`
	Marks     int     `json:"marks"`
	Advantage float64 `json:"advantage"`
}

// GapAnalysisResult partitions every subject into weak, moderate or strong.
type GapAnalysisResult struct {
	Average            float64                `json:"average"`
	WeakAreas          []SubjectGapEntry      `json:"weak_areas"`
	ModerateAreas      []SubjectGapEntry      `json:"moderate_areas"`
	StrongAreas        []SubjectStrengthEntry `json:"strong_areas"`
	OverallPerformance Performance            `json:"overall_performance"`
}

// SubjectGrade is the per-subject letter grade view.
type SubjectGrade struct {
	Subject string `json:"subject"`
	Marks   int    `json:"marks"`
	Grade   string `json:"grade"`
	Status  string `json:"status"`
}

// TimeAllocationEntry is one subject's daily study budget.
type TimeAllocationEntry struct {
	Subject     string   `json:"subject"`
	HoursPerDay float64  `json:"hours_per_day"`
	Priority    Priority `json:"priority"`
	Focus       string   `json:"focus"`
}

// ScheduledSession is one subject slot on a given weekday.
type ScheduledSession struct {
	Subject  string  `json:"subject"`
	Duration float64 `json:"duration"`
	Focus    string  `json:"focus"`
}

// Weekdays lists the schedule days, Monday first.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// WeeklySchedule maps a weekday name to its ordered sessions.
type WeeklySchedule map[string][]ScheduledSession

// WeeklySummary groups allocated subjects by priority.
type WeeklySummary struct {
	HighPrioritySubjects   []string `json:"high_priority_subjects"`
	MediumPrioritySubjects []string `json:"medium_priority_subjects"`
	RevisionSubjects       []string `json:"revision_subjects"`
}

// StudyPlan is the planner output.
type StudyPlan struct {
	TimeAllocation    []TimeAllocationEntry `json:"time_allocation"`
	WeeklySchedule    WeeklySchedule        `json:"weekly_schedule"`
	DailyTips         []string              `json:"daily_tips"`
	TotalHoursPerWeek float64               `json:"total_hours_per_week"`
	Summary           WeeklySummary         `json:"summary"`
}

// CareerRecommendation is one suggested career path.
type CareerRecommendation struct {
	Career          string   `json:"career"`
	MatchScore      float64  `json:"match_score"`
	RelatedSubjects []string `json:"related_subjects"`
	Description     string   `json:"description"`
	Growth          string   `json:"growth"`
	Education       string   `json:"education"`
}
