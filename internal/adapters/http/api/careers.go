package api

import (
	"net/http"
)

// CareerMapProvider exposes the subject to careers table.
type CareerMapProvider interface {
	CareerMap() map[string][]string
}

type careersResponse struct {
	Success bool                `json:"success"`
	Careers map[string][]string `json:"careers"`
}

// CareersHandler handles career table requests.
type CareersHandler struct {
	provider CareerMapProvider
}

// NewCareersHandler creates a new careers handler.
func NewCareersHandler(provider CareerMapProvider) *CareersHandler {
	return &CareersHandler{provider: provider}
}

// HandleCareers handles GET /api/careers requests.
func (h *CareersHandler) HandleCareers(w http.ResponseWriter, r *http.Request) {
	const op = "api.careers"
	if !allowMethod(w, r, op, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, careersResponse{Success: true, Careers: h.provider.CareerMap()})
}
