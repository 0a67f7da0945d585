package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"arclight/pkg/narrative"
	"arclight/pkg/utils"
)

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Characters []string `json:"characters"`
}

// POST /extract_characters
func (s *Server) handlePostExtractCharacters(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	gen, err := narrative.ExtractionRequest(req.Text)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	result, err := s.Generator.Generate(c.Request().Context(), gen)
	if err != nil {
		log.Error("character extraction failed", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("An error occurred during character extraction."))
	}

	characters := narrative.ParseCharacters(result.Text)
	log.Debug("extracted characters", "count", len(characters))

	return c.JSON(http.StatusOK, extractResponse{Characters: characters})
}
