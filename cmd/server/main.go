package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/handler"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/internal/server"
	"github.com/mvallejo3/do-genai-api/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("do-genai-api")

	// Optional .env file; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	genAI, err := adapter.NewGenAIAdapter(cfg.GenAI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating GenAI adapter")
	}

	spaces, err := adapter.NewSpacesAdapter(context.Background(), cfg.Spaces, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating Spaces adapter")
	}

	services := service.NewServices(genAI, spaces, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
