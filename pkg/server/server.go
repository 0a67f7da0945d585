package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"arclight/pkg/inference"
	"arclight/pkg/utils"
)

type Server struct {
	Echo      *echo.Echo
	Generator inference.Generator
	Ctx       context.Context
}

func NewServer(ctx context.Context, gen inference.Generator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))

	s := &Server{
		Echo:      e,
		Generator: gen,
		Ctx:       ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	s.Echo.POST("/analyze", s.handlePostAnalyze)
	s.Echo.POST("/extract_characters", s.handlePostExtractCharacters)
	s.Echo.POST("/chat", s.handlePostChat)
	s.Echo.POST("/search_excerpt", s.handlePostSearchExcerpt)
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}
