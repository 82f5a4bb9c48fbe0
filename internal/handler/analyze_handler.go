package handler

import (
	"fmt"
	"net/http"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/textscan"

	"github.com/rs/zerolog"
)

// noVowelMessage is returned in place of a vowel when no character qualifies.
const noVowelMessage = "no vowel found matching the criteria"

// AnalyzeHandler serves the vowel-analysis demo endpoint.
type AnalyzeHandler struct {
	logger zerolog.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		logger: logger.With().Str("handler", "analyze").Logger(),
	}
}

// Analyze handles POST /api/analyze requests.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	result := textscan.FirstUniqueVowel(req.Text)

	vowel := result.Vowel
	if !result.Found {
		vowel = noVowelMessage
	}

	h.logger.Debug().
		Int("text_len", len(req.Text)).
		Bool("found", result.Found).
		Dur("elapsed", result.Elapsed).
		Msg("text analyzed")

	writeJSON(w, http.StatusOK, model.AnalyzeResult{
		Text:      req.Text,
		Vowel:     vowel,
		TotalTime: fmt.Sprintf("%.2fms", float64(result.Elapsed.Microseconds())/1000.0),
	})
}
