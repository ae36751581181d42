package loadtest

import (
	"errors"
	"fmt"
	"math"

	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/types"
)

// Report invariant constants.
const (
	studyDaysPerSubject = 4
	maxCareers          = 5
	defaultCareerCount  = 2
	defaultCareerScore  = 50.0
	averageTolerance    = 0.01
)

// Verify checks a report against the student it was produced for. Every
// broken invariant is returned, joined.
func Verify(student Student, report types.Report) error {
	var errs []error
	if report.AnalysisID == "" {
		errs = append(errs, errors.New("missing analysis id"))
	}
	if report.StudentName != student.Name {
		errs = append(errs, fmt.Errorf("student name %q, want %q", report.StudentName, student.Name))
	}
	errs = append(errs, verifyPartition(student, report.GapAnalysis)...)
	errs = append(errs, verifySchedule(report.StudyPlan)...)
	errs = append(errs, verifyCareers(report.GapAnalysis, report.CareerSuggestions)...)
	if len(report.SubjectAnalysis) != len(model.Subjects()) {
		errs = append(errs, fmt.Errorf("subject analysis has %d rows, want %d", len(report.SubjectAnalysis), len(model.Subjects())))
	}
	return errors.Join(errs...)
}

// verifyPartition checks every subject lands in exactly one category and
// the average matches the submitted marks.
func verifyPartition(student Student, res model.GapAnalysisResult) []error {
	var errs []error
	seen := make(map[string]int, len(model.Subjects()))
	for _, e := range res.WeakAreas {
		seen[e.Subject]++
	}
	for _, e := range res.ModerateAreas {
		seen[e.Subject]++
	}
	for _, e := range res.StrongAreas {
		seen[e.Subject]++
	}
	for _, s := range model.Subjects() {
		if n := seen[s.Display()]; n != 1 {
			errs = append(errs, fmt.Errorf("subject %s appears in %d categories", s.Display(), n))
		}
	}
	if len(seen) != len(model.Subjects()) {
		errs = append(errs, fmt.Errorf("partition has %d subjects, want %d", len(seen), len(model.Subjects())))
	}

	marks := student.marks()
	sum := 0.0
	for _, v := range marks {
		sum += v
	}
	want := sum / float64(len(marks))
	if math.Abs(res.Average-want) > averageTolerance {
		errs = append(errs, fmt.Errorf("average %.2f, want %.2f", res.Average, want))
	}
	return errs
}

// verifySchedule checks every allocated subject is studied on exactly four days.
func verifySchedule(plan model.StudyPlan) []error {
	var errs []error
	days := make(map[string]int, len(plan.TimeAllocation))
	for _, day := range model.Weekdays() {
		sessions, ok := plan.WeeklySchedule[day]
		if !ok {
			errs = append(errs, fmt.Errorf("schedule is missing %s", day))
			continue
		}
		for _, session := range sessions {
			days[session.Subject]++
		}
	}
	for _, entry := range plan.TimeAllocation {
		if n := days[entry.Subject]; n != studyDaysPerSubject {
			errs = append(errs, fmt.Errorf("subject %s scheduled on %d days, want %d", entry.Subject, n, studyDaysPerSubject))
		}
	}
	if len(days) != len(plan.TimeAllocation) {
		errs = append(errs, fmt.Errorf("schedule has %d subjects, allocation has %d", len(days), len(plan.TimeAllocation)))
	}
	return errs
}

// verifyCareers checks suggestion count and scores, or the default pair
// when there are no strong subjects.
func verifyCareers(res model.GapAnalysisResult, careers []model.CareerRecommendation) []error {
	var errs []error
	if len(res.StrongAreas) == 0 {
		if len(careers) != defaultCareerCount {
			errs = append(errs, fmt.Errorf("got %d default careers, want %d", len(careers), defaultCareerCount))
		}
		for _, c := range careers {
			if c.MatchScore != defaultCareerScore {
				errs = append(errs, fmt.Errorf("default career %s scored %.1f", c.Career, c.MatchScore))
			}
		}
		return errs
	}

	if len(careers) < 1 || len(careers) > maxCareers {
		errs = append(errs, fmt.Errorf("got %d careers, want 1..%d", len(careers), maxCareers))
	}
	for _, c := range careers {
		if c.MatchScore < 0 || c.MatchScore > 100 {
			errs = append(errs, fmt.Errorf("career %s scored %.1f", c.Career, c.MatchScore))
		}
	}
	return errs
}

// marks returns the six submitted marks.
func (s Student) marks() []float64 {
	return []float64{s.Math, s.Science, s.English, s.History, s.Geography, s.Computer}
}
