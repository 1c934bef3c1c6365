package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/statsapi"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

func mustParse(t *testing.T, s string) gameid.ID {
	t.Helper()
	id, err := gameid.Parse(s)
	require.NoError(t, err)
	return id
}

func TestLibraryFileFetch(t *testing.T) {
	dir := t.TempDir()
	id := mustParse(t, "2025-09-14-TB-CHC-1")

	doc := `{"away_team": {"name": "Tampa Bay Rays"}, "venue": "Wrigley Field"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, id.String()+".json"), []byte(doc), 0o644))

	adapter := NewLibraryFile(dir)
	rec, err := adapter.Fetch(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Wrigley Field", rec.String("venue", ""))
	assert.Equal(t, "Tampa Bay Rays", rec.Child("away_team").String("name", ""))
}

func TestLibraryFileMissingDocumentIsNotFound(t *testing.T) {
	adapter := NewLibraryFile(t.TempDir())

	_, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLibraryFileCorruptDocumentIsAdapterError(t *testing.T) {
	dir := t.TempDir()
	id := mustParse(t, "2025-09-14-TB-CHC-1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, id.String()+".json"), []byte("{nope"), 0o644))

	adapter := NewLibraryFile(dir)
	_, err := adapter.Fetch(context.Background(), id)

	var adapterErr *AdapterError
	assert.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "library_file", adapterErr.Adapter)
}

func TestLibraryLiveFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game/2025-09-14/TB/CHC/1", r.URL.Path)
		fmt.Fprint(rw, `{"home_team": {"name": "Chicago Cubs"}}`)
	}))
	defer server.Close()

	adapter := NewLibraryLive(server.URL, time.Second)
	rec, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))
	assert.NoError(t, err)
	assert.Equal(t, "Chicago Cubs", rec.Child("home_team").String("name", ""))
}

func TestLibraryLiveTranslatesStatusCodes(t *testing.T) {
	status := http.StatusNotFound
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, "nope", status)
	}))
	defer server.Close()

	adapter := NewLibraryLive(server.URL, time.Second)
	id := mustParse(t, "2025-09-14-TB-CHC-1")

	_, err := adapter.Fetch(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	status = http.StatusBadGateway
	_, err = adapter.Fetch(context.Background(), id)
	var adapterErr *AdapterError
	assert.ErrorAs(t, err, &adapterErr)
}

func TestLibraryLiveEmptyRecordIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		fmt.Fprint(rw, `{}`)
	}))
	defer server.Close()

	adapter := NewLibraryLive(server.URL, time.Second)
	_, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsAPIFetchMapsFeedIntoLibraryShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/schedule":
			fmt.Fprint(rw, `{
				"totalGames": 1,
				"dates": [{"date": "2025-09-14", "games": [{
					"gamePk": 700001,
					"gameNumber": 1,
					"status": {"detailedState": "Final"},
					"teams": {
						"away": {"team": {"id": 139, "name": "Tampa Bay Rays"}},
						"home": {"team": {"id": 112, "name": "Chicago Cubs"}}
					},
					"venue": {"id": 17, "name": "Wrigley Field"}
				}]}]
			}`)
		case "/api/v1/game/700001/feed/live":
			fmt.Fprint(rw, `{
				"gamePk": 700001,
				"gameData": {
					"teams": {
						"away": {"id": 139, "name": "Tampa Bay Rays"},
						"home": {"id": 112, "name": "Chicago Cubs"}
					},
					"venue": {"id": 17, "name": "Wrigley Field"},
					"status": {"detailedState": "Final"}
				},
				"liveData": {"linescore": {"innings": [
					{"num": 1, "away": {"runs": 2}, "home": {"runs": 0}},
					{"num": 2, "away": {"runs": 0}, "home": {"runs": 1}}
				]}}
			}`)
		default:
			http.NotFound(rw, r)
		}
	}))
	defer server.Close()

	client := statsapi.New(server.URL, time.Second, nil)
	adapter := NewStatsAPI(client)

	assert.Equal(t, summary.StatusRemoteData, adapter.Provenance())

	rec, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))
	require.NoError(t, err)

	assert.Equal(t, "Tampa Bay Rays", rec.Child("away_team").String("name", ""))
	assert.Equal(t, "Wrigley Field", rec.String("venue", ""))
	assert.Equal(t, "Final", rec.String("status", ""))

	innings := rec.Records("inning_list")
	require.Len(t, innings, 2)
	assert.Equal(t, 1, innings[0].Int("inning", 0))
	assert.Equal(t, 2, innings[0].Int("away_runs", 0))
	assert.Equal(t, 1, innings[1].Int("home_runs", 0))
}

func TestStatsAPIUnscheduledGameIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		fmt.Fprint(rw, `{"totalGames": 0, "dates": []}`)
	}))
	defer server.Close()

	adapter := NewStatsAPI(statsapi.New(server.URL, time.Second, nil))
	_, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsAPIFeedFailureIsAdapterError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/schedule" {
			fmt.Fprint(rw, `{
				"totalGames": 1,
				"dates": [{"games": [{
					"gamePk": 700001,
					"gameNumber": 1,
					"teams": {
						"away": {"team": {"name": "Tampa Bay Rays"}},
						"home": {"team": {"name": "Chicago Cubs"}}
					}
				}]}]
			}`)
			return
		}
		http.Error(rw, "no feed", http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewStatsAPI(statsapi.New(server.URL, time.Second, nil))
	_, err := adapter.Fetch(context.Background(), mustParse(t, "2025-09-14-TB-CHC-1"))

	var adapterErr *AdapterError
	assert.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "stats_api", adapterErr.Adapter)
}
