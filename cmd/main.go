package main

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"arclight/pkg/inference"
	"arclight/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	var gen inference.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := inference.NewGeminiGenerator(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client, please ensure GEMINI_API_KEY is valid: %v", err)
		}
		gen = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, falling back to OpenAI-compatible backend (no search grounding)")
		model := cmp.Or(os.Getenv("OPENAI_MODEL"), "gpt-4o-mini")
		openAI := inference.NewOpenAIGenerator(os.Getenv("OPENAI_API_KEY"), model)
		if os.Getenv("OPENAI_API_KEY") == "" {
			openAI.ChangeBaseURL("http://localhost:1234/v1")
			openAI.SetModel("")
		}
		gen = openAI
	}

	srv := server.NewServer(ctx, gen)
	srv.Echo.Logger.SetLevel(log.DEBUG)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}
