package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"arclight/pkg/narrative"
	"arclight/pkg/utils"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	// Analysis carries the validated 7-element JSON array as a string.
	Analysis string `json:"analysis"`
}

// POST /analyze
func (s *Server) handlePostAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	gen, err := narrative.AnalysisRequest(req.Text)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	// Token estimation fetches encodings on first use, so skip it unless
	// debug logging is on.
	if log.GetLevel() <= log.DebugLevel {
		tokens, _ := utils.NumTokens(req.Text)
		log.Debug("analyzing story", "chars", len(req.Text), "tokens", tokens)
	}

	result, err := s.Generator.Generate(c.Request().Context(), gen)
	if err != nil {
		log.Error("analysis inference failed", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("An error occurred during analysis: "+err.Error()))
	}

	analysis, err := narrative.ValidateAnalysis(result.Text)
	if err != nil {
		log.Error("analysis validation failed", "error", err, "output", utils.LimitStr(result.Text, 200))
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("An error occurred during analysis: "+err.Error()))
	}

	return c.JSON(http.StatusOK, analyzeResponse{Analysis: analysis})
}
