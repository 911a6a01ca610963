// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/Akkii71/perspective-engine/internal/analyzer"
	"github.com/Akkii71/perspective-engine/internal/config"
	"github.com/Akkii71/perspective-engine/internal/gemini"
	"github.com/Akkii71/perspective-engine/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	geminiClient, err := gemini.NewClient(&cfg.Gemini)
	if err != nil {
		log.Fatalf("failed to create Gemini client: %v", err)
	}

	analyzer := analyzer.New(geminiClient, cfg.Gemini.APIKey)

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
