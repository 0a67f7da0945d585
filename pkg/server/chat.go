package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"arclight/pkg/narrative"
	"arclight/pkg/utils"
)

type chatRequest struct {
	Story           string               `json:"story"`
	History         []narrative.ChatTurn `json:"history"`
	ActiveCharacter string               `json:"activeCharacter"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// POST /chat
func (s *Server) handlePostChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	gen, err := narrative.ChatRequest(req.Story, req.ActiveCharacter, req.History)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	log.Debug("persona chat", "character", req.ActiveCharacter, "turns", len(gen.Turns))

	result, err := s.Generator.Generate(c.Request().Context(), gen)
	if err != nil {
		log.Error("persona chat failed", "character", req.ActiveCharacter, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("An error occurred during character chat: "+err.Error()))
	}

	return c.JSON(http.StatusOK, chatResponse{Response: result.Text})
}
