package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/claycot/scorecard-bridge/internal/enrich"
	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/metrics"
	"github.com/claycot/scorecard-bridge/internal/resolve"
)

type Games struct {
	resolver *resolve.Resolver
	enricher *enrich.Enricher
	recorder *metrics.Recorder
	l        *log.Logger
}

func NewGames(resolver *resolve.Resolver, enricher *enrich.Enricher, recorder *metrics.Recorder, l *log.Logger) *Games {
	return &Games{resolver, enricher, recorder, l}
}

// Get resolves and enriches one game. A malformed identifier is the only
// client error; everything past parsing degrades to fallback data instead of
// failing the request.
func (g *Games) Get(rw http.ResponseWriter, r *http.Request) {
	g.l.Printf("Handle GET game %s", r.PathValue("id"))

	id, err := gameid.Parse(r.PathValue("id"))
	if err != nil {
		g.writeError(rw, r, err, http.StatusBadRequest)
		return
	}

	game := g.resolver.Resolve(r.Context(), id)
	if g.enricher != nil {
		game = g.enricher.Enrich(r.Context(), game, id)
	}

	body, err := game.ToJSON()
	if err != nil {
		g.writeError(rw, r, errors.New("Unable to marshal JSON"), http.StatusInternalServerError)
		return
	}

	g.recorder.HTTPRequest("/api/game", strconv.Itoa(http.StatusOK))
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	rw.Write(body)
}

func (g *Games) writeError(rw http.ResponseWriter, r *http.Request, err error, code int) {
	g.l.Printf("[ERROR] GET %s: %v", r.URL.Path, err)
	g.recorder.HTTPRequest("/api/game", strconv.Itoa(code))

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(map[string]any{
		"error":   err.Error(),
		"success": false,
	})
}
