package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Akkii71/perspective-engine/apimodels"
	"github.com/Akkii71/perspective-engine/internal/analyzer"
	"github.com/Akkii71/perspective-engine/internal/chart"
	"github.com/Akkii71/perspective-engine/internal/gemini"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Please enter some text.", http.StatusBadRequest)
		return
	}

	slog.Debug("received analysis request", "request", req)

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("analysis request failed", "error", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	result.Chart = chart.Radar(result.Emotions)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// statusFor maps orchestrator failures onto response codes: preconditions are
// the caller's to fix, rate limits clear on their own, everything else is an
// upstream problem.
func statusFor(err error) int {
	switch {
	case errors.Is(err, analyzer.ErrMissingAPIKey), errors.Is(err, analyzer.ErrEmptyInput):
		return http.StatusBadRequest
	case gemini.IsRateLimit(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
