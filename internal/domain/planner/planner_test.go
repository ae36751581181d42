package planner_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/planner"
	. "github.com/smartystreets/goconvey/convey"
)

func weakN(n int) []model.SubjectGapEntry {
	out := make([]model.SubjectGapEntry, n)
	for i := range out {
		out[i] = model.SubjectGapEntry{Subject: fmt.Sprintf("W%d", i), Marks: 30, Gap: float64(n - i), Severity: model.SeverityCritical}
	}
	return out
}

func strongN(n int) []model.SubjectStrengthEntry {
	out := make([]model.SubjectStrengthEntry, n)
	for i := range out {
		out[i] = model.SubjectStrengthEntry{Subject: fmt.Sprintf("S%d", i), Marks: 90, Advantage: float64(n - i)}
	}
	return out
}

func TestPlanner_GeneratePlan(t *testing.T) {
	Convey("Given a default planner and the demo classification", t, func() {
		p := planner.NewPlanner()
		weak := []model.SubjectGapEntry{
			{Subject: "History", Marks: 45, Gap: 28.83, Severity: model.SeverityHigh},
			{Subject: "Geography", Marks: 55, Gap: 18.83, Severity: model.SeverityHigh},
		}
		strong := []model.SubjectStrengthEntry{
			{Subject: "English", Marks: 92, Advantage: 18.17},
			{Subject: "Computer", Marks: 88, Advantage: 14.17},
			{Subject: "Math", Marks: 85, Advantage: 11.17},
			{Subject: "Science", Marks: 78, Advantage: 4.17},
		}

		plan := p.GeneratePlan(weak, nil, strong)

		Convey("Then weak subjects share 60% and the top two strong share 10%", func() {
			So(plan.TimeAllocation, ShouldResemble, []model.TimeAllocationEntry{
				{Subject: "History", HoursPerDay: 1.2, Priority: model.PriorityHigh, Focus: planner.FocusWeak},
				{Subject: "Geography", HoursPerDay: 1.2, Priority: model.PriorityHigh, Focus: planner.FocusWeak},
				{Subject: "English", HoursPerDay: 0.1, Priority: model.PriorityLow, Focus: planner.FocusStrong},
				{Subject: "Computer", HoursPerDay: 0.1, Priority: model.PriorityLow, Focus: planner.FocusStrong},
			})
			So(plan.TotalHoursPerWeek, ShouldEqual, 28.0)
		})

		Convey("And the schedule rotates subjects through the week", func() {
			names := func(day string) []string {
				var out []string
				for _, s := range plan.WeeklySchedule[day] {
					out = append(out, s.Subject)
				}
				return out
			}
			So(len(plan.WeeklySchedule), ShouldEqual, 7)
			So(names("Monday"), ShouldResemble, []string{"History", "Geography", "English", "Computer"})
			So(names("Thursday"), ShouldResemble, []string{"History"})
			So(names("Friday"), ShouldResemble, []string{"Computer"})
			So(names("Saturday"), ShouldResemble, []string{"English", "Computer"})
			So(names("Sunday"), ShouldResemble, []string{"Geography", "English", "Computer"})
			So(plan.WeeklySchedule["Monday"][0], ShouldResemble, model.ScheduledSession{
				Subject: "History", Duration: 1.2, Focus: planner.FocusWeak,
			})
		})

		Convey("And the first tip names the largest weak gap", func() {
			So(len(plan.DailyTips), ShouldEqual, 6)
			So(plan.DailyTips[0], ShouldEqual, "Prioritize History - focus on fundamentals first")
		})

		Convey("And the summary groups subjects by priority", func() {
			So(plan.Summary.HighPrioritySubjects, ShouldResemble, []string{"History", "Geography"})
			So(plan.Summary.MediumPrioritySubjects, ShouldBeEmpty)
			So(plan.Summary.RevisionSubjects, ShouldResemble, []string{"English", "Computer"})
		})
	})

	Convey("Given weak lists of every size", t, func() {
		p := planner.NewPlanner()

		Convey("Then each weak subject gets round(2.4/N, 1) hours", func() {
			for n := 1; n <= 6; n++ {
				plan := p.GeneratePlan(weakN(n), nil, nil)
				want := math.Round(2.4/float64(n)*10) / 10
				So(len(plan.TimeAllocation), ShouldEqual, n)
				var sum float64
				for _, e := range plan.TimeAllocation {
					So(e.HoursPerDay, ShouldEqual, want)
					sum += e.HoursPerDay
				}
				So(sum, ShouldAlmostEqual, 2.4, 0.1*float64(n))
			}
		})
	})

	Convey("Given an all-strong student", t, func() {
		p := planner.NewPlanner()
		plan := p.GeneratePlan(nil, nil, strongN(6))

		Convey("Then only the top two strong subjects are allocated", func() {
			So(len(plan.TimeAllocation), ShouldEqual, 2)
			So(plan.TimeAllocation[0].Subject, ShouldEqual, "S0")
			So(plan.TimeAllocation[1].Subject, ShouldEqual, "S1")
			So(plan.TimeAllocation[0].HoursPerDay, ShouldEqual, 0.1)
		})

		Convey("And the tips carry no priority line", func() {
			So(len(plan.DailyTips), ShouldEqual, 5)
		})
	})

	Convey("Given no classified subjects at all", t, func() {
		plan := planner.NewPlanner().GeneratePlan(nil, nil, nil)

		Convey("Then the plan is empty but well formed", func() {
			So(plan.TimeAllocation, ShouldBeEmpty)
			So(len(plan.WeeklySchedule), ShouldEqual, 7)
			for _, day := range model.Weekdays() {
				So(plan.WeeklySchedule[day], ShouldNotBeNil)
				So(plan.WeeklySchedule[day], ShouldBeEmpty)
			}
			So(plan.TotalHoursPerWeek, ShouldEqual, 28.0)
		})
	})

	Convey("Given a planner with custom options", t, func() {
		p := planner.NewPlanner(planner.WithDailyHours(6), planner.WithTopStrongCount(3))
		moderate := []model.SubjectGapEntry{{Subject: "Science", Marks: 60, Gap: 4, Severity: model.SeverityModerate}}
		plan := p.GeneratePlan(nil, moderate, strongN(3))

		Convey("Then the budget and revision count follow the options", func() {
			So(plan.TimeAllocation[0].HoursPerDay, ShouldEqual, 1.8)
			So(plan.TimeAllocation[0].Priority, ShouldEqual, model.PriorityMedium)
			So(len(plan.TimeAllocation), ShouldEqual, 4)
			So(plan.TimeAllocation[3].HoursPerDay, ShouldEqual, 0.2)
			So(plan.TotalHoursPerWeek, ShouldEqual, 42.0)
		})
	})
}

func TestPlanner_WeeklyRotation(t *testing.T) {
	Convey("Given allocations of up to seven subjects", t, func() {
		allocation := make([]model.TimeAllocationEntry, 7)
		for j := range allocation {
			allocation[j] = model.TimeAllocationEntry{Subject: fmt.Sprintf("X%d", j), HoursPerDay: 0.5}
		}
		schedule := planner.WeeklySchedule(allocation)

		Convey("Then every subject is studied on exactly four days", func() {
			for j, entry := range allocation {
				days := 0
				for i, day := range model.Weekdays() {
					found := false
					for _, s := range schedule[day] {
						if s.Subject == entry.Subject {
							found = true
						}
					}
					So(found, ShouldEqual, (i+j)%7 < 4)
					if found {
						days++
					}
				}
				So(days, ShouldEqual, 4)
			}
		})
	})
}
