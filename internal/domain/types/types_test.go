package types_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/studypath/internal/domain/career"
	"github.com/okian/studypath/internal/domain/gap"
	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/planner"
	types "github.com/okian/studypath/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDemoStudent(t *testing.T) {
	Convey("Given the demo student", t, func() {
		demo := types.DemoStudent()

		Convey("Then every subject has a valid mark", func() {
			So(demo.Name, ShouldEqual, "Demo Student")
			So(demo.Marks.Validate(true), ShouldBeNil)
			So(demo.Marks.Mark(model.History), ShouldEqual, 45.0)
		})

		Convey("And each call returns an independent copy", func() {
			demo.Marks[model.Math] = 10
			So(types.DemoStudent().Marks.Mark(model.Math), ShouldEqual, 85.0)
		})
	})
}

func TestReportJSON(t *testing.T) {
	Convey("Given a report built from the demo student", t, func() {
		demo := types.DemoStudent()
		analyzer := gap.NewAnalyzer()
		res, err := analyzer.AnalyzeGaps(demo.Marks)
		So(err, ShouldBeNil)
		grades, err := analyzer.SubjectWiseAnalysis(demo.Marks)
		So(err, ShouldBeNil)

		report := types.Report{
			AnalysisID:        "8f2e3c4a-0000-4000-8000-000000000001",
			StudentName:       demo.Name,
			GapAnalysis:       res,
			SubjectAnalysis:   grades,
			StudyPlan:         planner.NewPlanner().GeneratePlan(res.WeakAreas, res.ModerateAreas, res.StrongAreas),
			CareerSuggestions: career.NewSuggester().SuggestCareers(res.StrongAreas),
		}

		Convey("When it is encoded and decoded", func() {
			raw, err := json.Marshal(report)
			So(err, ShouldBeNil)
			var decoded types.Report
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)

			Convey("Then every field survives", func() {
				So(cmp.Diff(report, decoded), ShouldBeEmpty)
			})

			Convey("And the wire keys are snake case", func() {
				var generic map[string]any
				So(json.Unmarshal(raw, &generic), ShouldBeNil)
				So(generic, ShouldContainKey, "gap_analysis")
				So(generic, ShouldContainKey, "career_suggestions")
				plan := generic["study_plan"].(map[string]any)
				So(plan, ShouldContainKey, "total_hours_per_week")
				So(plan["weekly_schedule"], ShouldContainKey, "Monday")
			})
		})
	})
}
