// Package types contains common types used across the application
package types

import "github.com/okian/studypath/internal/domain/model"

// DefaultStudentName is used when a request omits the name.
const DefaultStudentName = "Student"

// Student is a named marks record.
type Student struct {
	Name  string            `json:"name"`
	Marks model.MarksRecord `json:"marks"`
}

// Report is the combined output of one analysis.
type Report struct {
	AnalysisID        string                       `json:"analysis_id"`
	StudentName       string                       `json:"student_name"`
	GapAnalysis       model.GapAnalysisResult      `json:"gap_analysis"`
	SubjectAnalysis   []model.SubjectGrade         `json:"subject_analysis"`
	StudyPlan         model.StudyPlan              `json:"study_plan"`
	CareerSuggestions []model.CareerRecommendation `json:"career_suggestions"`
}

// DemoStudent returns the canned sample student.
func DemoStudent() Student {
	return Student{
		Name: "Demo Student",
		Marks: model.MarksRecord{
			model.Math:      85,
			model.Science:   78,
			model.English:   92,
			model.History:   45,
			model.Geography: 55,
			model.Computer:  88,
		},
	}
}
