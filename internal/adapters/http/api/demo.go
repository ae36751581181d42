package api

import (
	"net/http"

	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/internal/domain/types"
)

// DemoHandler serves the canned sample student.
type DemoHandler struct{}

// NewDemoHandler creates a new demo handler.
func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// HandleDemo handles GET /api/demo requests. The body has the same shape as a
// POST /api/analyze request so clients can submit it unchanged.
func (h *DemoHandler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	const op = "api.demo"
	if !allowMethod(w, r, op, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, demoPayload(types.DemoStudent()))
}

func demoPayload(s types.Student) map[string]any {
	out := map[string]any{"name": s.Name}
	for _, subject := range model.Subjects() {
		out[string(subject)] = s.Marks.Mark(subject)
	}
	return out
}
