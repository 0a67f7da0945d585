package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"arclight/pkg/narrative"
	"arclight/pkg/utils"
)

type excerptRequest struct {
	Query string `json:"query"`
}

type excerptResponse struct {
	Excerpt string             `json:"excerpt"`
	Sources []narrative.Source `json:"sources"`
}

// POST /search_excerpt
func (s *Server) handlePostSearchExcerpt(c echo.Context) error {
	var req excerptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	gen, err := narrative.ExcerptRequest(req.Query)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	result, err := s.Generator.Generate(c.Request().Context(), gen)
	if err != nil {
		log.Error("excerpt retrieval failed", "query", utils.LimitStr(req.Query, 80), "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("An error occurred during search/excerpt retrieval: "+err.Error()))
	}

	sources := narrative.Sources(result.Grounding)
	log.Debug("excerpt retrieved", "chars", len(result.Text), "sources", len(sources))

	return c.JSON(http.StatusOK, excerptResponse{
		Excerpt: result.Text,
		Sources: sources,
	})
}
