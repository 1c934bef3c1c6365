package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/claycot/scorecard-bridge/internal/config"
	"github.com/claycot/scorecard-bridge/internal/enrich"
	"github.com/claycot/scorecard-bridge/internal/metrics"
	"github.com/claycot/scorecard-bridge/internal/resolve"
)

type Server struct {
	addr    string
	handler http.Handler
	logger  *log.Logger
}

func New(cfg *config.Config, resolver *resolve.Resolver, enricher *enrich.Enricher, recorder *metrics.Recorder, logger *log.Logger) (*Server, error) {
	router := Initialize(resolver, enricher, recorder, logger)

	// configure CORS using the config
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return &Server{
		addr:    fmt.Sprintf("%s:%d", cfg.Hostname, cfg.Port),
		handler: corsMiddleware.Handler(requestID(logger, router)),
		logger:  logger,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	s.logger.Printf("Starting server on %s", s.addr)

	server := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		s.logger.Println("Shutting down server...")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctxShutdown); err != nil {
			s.logger.Printf("Error during server shutdown: %v", err)
		}
	}()

	return server.ListenAndServe()
}
