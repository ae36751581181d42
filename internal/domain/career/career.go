// Package career recommends career paths from a student's strongest subjects
// using static lookup tables.
package career

import (
	"slices"

	"github.com/okian/studypath/internal/domain/model"
)

// Default suggestion configuration constants.
const (
	DefaultTopSubjects = 3
	DefaultMaxCareers  = 5
	defaultMatchScore  = 50.0
	percent            = 100.0
)

// Option applies a configuration option to the Suggester.
type Option func(*Suggester)

// WithMaxCareers caps the number of recommendations.
func WithMaxCareers(n int) Option {
	return func(s *Suggester) {
		if n > 0 {
			s.maxCareers = n
		}
	}
}

// Suggester is immutable after construction and safe for concurrent use.
type Suggester struct {
	subjectCareers map[string][]string
	combinations   []pair
	details        map[string]Detail
	topSubjects    int
	maxCareers     int
}

// NewSuggester creates a suggester over the built-in career tables.
func NewSuggester(opts ...Option) *Suggester {
	s := &Suggester{
		subjectCareers: make(map[string][]string, len(subjectCareers)),
		combinations:   slices.Clone(combinationCareers),
		details:        make(map[string]Detail, len(careerDetails)),
		topSubjects:    DefaultTopSubjects,
		maxCareers:     DefaultMaxCareers,
	}
	// Strong areas carry display names, so key the lookup the same way.
	for subject, careers := range subjectCareers {
		s.subjectCareers[subject.Display()] = slices.Clone(careers)
	}
	for name, d := range careerDetails {
		s.details[name] = d
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SuggestCareers ranks careers for the top strong subjects. Careers from
// matching subject pairs come first, then single-subject careers, each in
// first-seen order. With no strong areas a fixed default pair is returned.
func (s *Suggester) SuggestCareers(strong []model.SubjectStrengthEntry) []model.CareerRecommendation {
	if len(strong) == 0 {
		return defaultSuggestions()
	}

	top := make([]string, 0, s.topSubjects)
	for _, area := range strong[:min(len(strong), s.topSubjects)] {
		top = append(top, area.Subject)
	}

	var candidates []string
	seen := make(map[string]struct{})
	add := func(career string) {
		if _, ok := seen[career]; ok {
			return
		}
		seen[career] = struct{}{}
		candidates = append(candidates, career)
	}

	if len(top) >= 2 {
		for _, p := range s.combinations {
			if slices.Contains(top, p.a.Display()) && slices.Contains(top, p.b.Display()) {
				for _, c := range p.careers {
					add(c)
				}
			}
		}
	}
	for _, subject := range top {
		for _, c := range s.subjectCareers[subject] {
			add(c)
		}
	}

	out := make([]model.CareerRecommendation, 0, min(len(candidates), s.maxCareers))
	for _, c := range candidates[:min(len(candidates), s.maxCareers)] {
		related := s.relatedSubjects(c, top)
		rec := model.CareerRecommendation{
			Career:          c,
			MatchScore:      s.matchScore(len(related), len(top)),
			RelatedSubjects: related,
		}
		if d, ok := s.details[c]; ok {
			rec.Description, rec.Growth, rec.Education = d.Description, d.Growth, d.Education
		} else {
			rec.Description = "Exciting career path in " + c
			rec.Growth = fallbackGrowth
			rec.Education = fallbackEducation
		}
		out = append(out, rec)
	}
	return out
}

// relatedSubjects returns the top subjects, in rank order, whose own career
// list contains career.
func (s *Suggester) relatedSubjects(career string, top []string) []string {
	related := []string{}
	for _, subject := range top {
		if slices.Contains(s.subjectCareers[subject], career) {
			related = append(related, subject)
		}
	}
	return related
}

func (s *Suggester) matchScore(related, topCount int) float64 {
	maxPossible := min(topCount, s.topSubjects)
	if maxPossible <= 0 {
		return defaultMatchScore
	}
	return model.Round(float64(related)/float64(maxPossible)*percent, 0)
}

// SubjectCareerMap returns a copy of the subject to careers table keyed by
// display name.
func (s *Suggester) SubjectCareerMap() map[string][]string {
	out := make(map[string][]string, len(s.subjectCareers))
	for subject, careers := range s.subjectCareers {
		out[subject] = slices.Clone(careers)
	}
	return out
}

// Details returns the static metadata for career, if known.
func (s *Suggester) Details(career string) (Detail, bool) {
	d, ok := s.details[career]
	return d, ok
}
