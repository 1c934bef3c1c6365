package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/claycot/scorecard-bridge/internal/adapters"
	"github.com/claycot/scorecard-bridge/internal/config"
	"github.com/claycot/scorecard-bridge/internal/enrich"
	"github.com/claycot/scorecard-bridge/internal/metrics"
	"github.com/claycot/scorecard-bridge/internal/resolve"
	"github.com/claycot/scorecard-bridge/internal/server"
	"github.com/claycot/scorecard-bridge/internal/statsapi"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "scorecard-bridge ", log.LstdFlags)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Error loading configuration: ", err)
	}

	// Create context with cancel
	ctx, cancel := context.WithCancel(context.Background())

	// Capture termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, os.Kill)
	go func() {
		<-sigChan
		logger.Println("Received terminate signal")
		cancel()
	}()

	// Wire the resolution pipeline
	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)
	client := statsapi.New(cfg.StatsAPIURL, cfg.RequestTimeout, logger)

	var chain []adapters.Adapter
	if cfg.LibraryDir != "" {
		chain = append(chain, adapters.NewLibraryFile(cfg.LibraryDir))
	}
	if cfg.LibraryURL != "" {
		chain = append(chain, adapters.NewLibraryLive(cfg.LibraryURL, cfg.RequestTimeout))
	}
	chain = append(chain, adapters.NewStatsAPI(client))

	resolver := resolve.New(chain, cfg.TemplatePath, logger, recorder)
	enricher := enrich.New(client, logger)

	// Initialize and start the server
	srv, err := server.New(cfg, resolver, enricher, recorder, logger)
	if err != nil {
		logger.Fatal("Failed to start server: ", err)
	}

	if err := srv.Run(ctx); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server error: ", err)
	}
	logger.Println("Server stopped, exiting application.")
}
