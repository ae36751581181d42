package career

import "github.com/okian/studypath/internal/domain/model"

// Detail is the static descriptive metadata for a career.
type Detail struct {
	Description string `json:"description"`
	Growth      string `json:"growth"`
	Education   string `json:"education"`
}

// pair is an unordered subject pair in the combination table.
type pair struct {
	a, b    model.Subject
	careers []string
}

// subjectCareers is read-only after init.
var subjectCareers = map[model.Subject][]string{
	model.Math:      {"Engineering", "Data Science", "Actuarial Science", "Finance", "Accounting"},
	model.Science:   {"Medicine", "Research", "Biotechnology", "Environmental Science", "Pharmacy"},
	model.English:   {"Journalism", "Content Writing", "Law", "Teaching", "Publishing"},
	model.History:   {"Archaeology", "Museum Curator", "Teaching", "Civil Services", "Law"},
	model.Geography: {"Urban Planning", "Environmental Consultant", "GIS Specialist", "Civil Services"},
	model.Computer:  {"Software Development", "AI/ML Engineer", "Cybersecurity", "Data Science", "Game Development"},
}

// combinationCareers is walked in declaration order.
var combinationCareers = []pair{
	{model.Math, model.Computer, []string{"Software Engineering", "Data Science", "AI/ML", "Blockchain Development"}},
	{model.Math, model.Science, []string{"Engineering", "Medical Research", "Biotechnology", "Physics Research"}},
	{model.Science, model.Computer, []string{"Bioinformatics", "Health Informatics", "Computational Biology"}},
	{model.English, model.Computer, []string{"Technical Writing", "UX Writing", "Content Strategy", "Digital Marketing"}},
	{model.History, model.English, []string{"Journalism", "Law", "Civil Services", "Publishing", "Education"}},
	{model.Geography, model.Science, []string{"Environmental Science", "Climate Research", "Urban Planning"}},
}

var careerDetails = map[string]Detail{
	"Engineering": {
		Description: "Design, build, and maintain systems, structures, and technologies",
		Growth:      "High demand across multiple sectors",
		Education:   "B.Tech/B.E. in relevant specialization",
	},
	"Data Science": {
		Description: "Extract insights from data using statistical and ML techniques",
		Growth:      "Extremely high growth potential",
		Education:   "B.Tech/M.Tech in CS/Data Science or related field",
	},
	"Medicine": {
		Description: "Diagnose, treat, and prevent diseases",
		Growth:      "Consistent demand with good job security",
		Education:   "MBBS followed by specialization",
	},
	"Law": {
		Description: "Provide legal advice and represent clients",
		Growth:      "Growing field with diverse opportunities",
		Education:   "LLB (3-year or 5-year integrated)",
	},
	"Software Development": {
		Description: "Design and develop software applications",
		Growth:      "Very high demand globally",
		Education:   "B.Tech/BCA/MCA in Computer Science",
	},
}

// Fallback text for careers missing from careerDetails.
const (
	fallbackGrowth    = "Good opportunities available"
	fallbackEducation = "Relevant undergraduate/postgraduate degree"
)

func defaultSuggestions() []model.CareerRecommendation {
	return []model.CareerRecommendation{
		{
			Career:          "General Engineering",
			MatchScore:      defaultMatchScore,
			RelatedSubjects: []string{},
			Description:     "Versatile field with multiple specializations",
			Growth:          "Stable career option",
			Education:       "B.Tech/B.E.",
		},
		{
			Career:          "Business Administration",
			MatchScore:      defaultMatchScore,
			RelatedSubjects: []string{},
			Description:     "Management and business operations",
			Growth:          "Good opportunities in corporate sector",
			Education:       "BBA/MBA",
		},
	}
}
