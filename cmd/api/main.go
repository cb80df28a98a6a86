package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/logging"
	tracing "portfolio/internal/otel"
)

// @title Portfolio API
// @version 1.0
// @description Content catalog, view-state sessions and contact handoff for a personal portfolio.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logging.Setup(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	serveErr := app.Serve(ctx, cfg)
	if err := shutdownTracing(context.Background()); err != nil {
		logging.Error("otel", "tracing_shutdown_failed", err, nil)
	}
	if serveErr != nil {
		log.Fatalf("server stopped: %v", serveErr)
	}
}
