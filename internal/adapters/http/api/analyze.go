package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/studypath/internal/domain/model"
	"github.com/okian/studypath/pkg/logger"
)

// analyzeRequest mirrors the request schema for POST /api/analyze. Absent
// subjects stay nil so the core can apply its default or strict policy.
type analyzeRequest struct {
	Name      string   `json:"name"`
	Math      *float64 `json:"math"`
	Science   *float64 `json:"science"`
	English   *float64 `json:"english"`
	History   *float64 `json:"history"`
	Geography *float64 `json:"geography"`
	Computer  *float64 `json:"computer"`
}

func (r analyzeRequest) marks() model.MarksRecord {
	marks := make(model.MarksRecord, len(model.Subjects()))
	for subject, v := range map[model.Subject]*float64{
		model.Math:      r.Math,
		model.Science:   r.Science,
		model.English:   r.English,
		model.History:   r.History,
		model.Geography: r.Geography,
		model.Computer:  r.Computer,
	} {
		if v != nil {
			marks[subject] = *v
		}
	}
	return marks
}

// analyzeResponse is the success body of POST /api/analyze.
type analyzeResponse struct {
	Success bool `json:"success"`
	Report
}

// Analyzer runs the analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, name string, marks model.MarksRecord) (Report, error)
}

// AnalyzeHandler handles analysis requests.
type AnalyzeHandler struct {
	deps         Analyzer
	maxBodyBytes int64
	logger       logger.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Analyzer, maxBodyBytes int64, l logger.Logger) *AnalyzeHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &AnalyzeHandler{deps: deps, maxBodyBytes: maxBodyBytes, logger: l}
}

// HandleAnalyze handles POST /api/analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if !allowMethod(w, r, op, http.MethodPost) {
		return
	}
	ctx := r.Context()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if err := validateAnalyzeRequest(raw); err != nil {
		if errors.Is(err, ErrSchema) {
			h.logger.Error(ctx, "request schema unavailable", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrInternal))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.Analyze(ctx, req.Name, req.marks())
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrInvalidInput, err))
			return
		}
		h.logger.Error(ctx, "analysis failed", logger.String("student", req.Name), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrInternal))
		return
	}

	h.logger.Debug(ctx, "analysis served",
		logger.String("analysisID", report.AnalysisID),
		logger.String("student", report.StudentName),
	)
	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Report: report})
}
