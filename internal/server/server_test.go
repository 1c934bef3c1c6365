package server

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claycot/scorecard-bridge/internal/resolve"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

func testRouter() http.Handler {
	logger := log.New(os.Stderr, "test", log.LstdFlags)
	resolver := resolve.New(nil, "", logger, nil)
	return requestID(logger, Initialize(resolver, nil, nil, logger))
}

func TestGetGameReturnsFallbackSummary(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/game/2025-09-14-TB-CHC-1", nil)

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var game summary.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))
	assert.Equal(t, "2025-09-14-TB-CHC-1", game.GameID)
	assert.Equal(t, summary.StatusFallbackMock, game.IntegrationStatus)
	assert.Equal(t, "Chicago Cubs", game.HomeTeam.Name)
}

func TestGetGameRejectsMalformedIdentifier(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/game/not-a-game-id", nil)

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestMetricsEndpointIsWired(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
