package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/RohanBisht33/trustscan-app/internal/fetch"
	"github.com/RohanBisht33/trustscan-app/internal/ingestion"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// AnalyzeRequest represents the request body for /analyze. Exactly one of
// text or url must be supplied.
type AnalyzeRequest struct {
	Text string `json:"text,omitempty" validate:"required_without=URL,excluded_with=URL"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TextRequest represents the request body for /classify and /resume.
type TextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the TextRequest using the validator.
func (r *TextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse wraps an analysis result with a request-scoped ID.
type AnalyzeResponse struct {
	ID     string                `json:"id"`
	Source string                `json:"source,omitempty"`
	Result *types.AnalysisResult `json:"result"`
}

// ClassifyResponse wraps a raw classification.
type ClassifyResponse struct {
	ID             string               `json:"id"`
	Classification types.Classification `json:"classification"`
}

// ResumeResponse wraps resume insights; Insights is null when the text was
// too short to assess.
type ResumeResponse struct {
	ID       string                `json:"id"`
	Insights *types.ResumeInsights `json:"insights"`
}

// handleAnalyze analyzes inline text or a fetched URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	text := req.Text
	hint := fetch.OriginHint("")
	source := ""

	if req.URL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = s.useBrowser
		result, err := fetch.URL(r.Context(), req.URL, opts)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		text = result.Text
		hint = fetch.OriginHint(req.URL)
		source = req.URL
	}

	text = ingestion.CleanText(text)
	analysis := s.analyzer.AnalyzeSource(text, hint)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ID:     uuid.NewString(),
		Source: source,
		Result: analysis,
	})
}

// handleClassify exposes the raw classifier outcome.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ClassifyResponse{
		ID:             uuid.NewString(),
		Classification: s.analyzer.Classify(ingestion.CleanText(req.Text)),
	})
}

// handleResume returns the resume-only breakdown. Insights is null when the
// text is too short; that is a normal outcome, not an error.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		ID:       uuid.NewString(),
		Insights: s.analyzer.ResumeDetail(ingestion.CleanText(req.Text)),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
