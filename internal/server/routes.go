package server

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/claycot/scorecard-bridge/internal/enrich"
	"github.com/claycot/scorecard-bridge/internal/metrics"
	"github.com/claycot/scorecard-bridge/internal/resolve"
)

func Initialize(resolver *resolve.Resolver, enricher *enrich.Enricher, recorder *metrics.Recorder, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	gh := NewGames(resolver, enricher, recorder, logger)

	mux.HandleFunc("GET /api/game/{id}", gh.Get)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
