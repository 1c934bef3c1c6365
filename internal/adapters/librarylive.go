package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/raw"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

// LibraryLive invokes the scorecard library's network-fetch entry point over
// HTTP. The library sits behind a stable URL instead of a filesystem-relative
// import, so the adapter only needs a base URL and a timeout.
type LibraryLive struct {
	baseURL    string
	httpClient *http.Client
}

func NewLibraryLive(baseURL string, timeout time.Duration) *LibraryLive {
	return &LibraryLive{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *LibraryLive) Name() string {
	return "library_live"
}

func (a *LibraryLive) Provenance() string {
	return summary.StatusLibraryData
}

func (a *LibraryLive) Note(id gameid.ID) string {
	return fmt.Sprintf("Real data from baseball library for %s @ %s on %s",
		id.AwayCode, id.HomeCode, id.DateString())
}

func (a *LibraryLive) Fetch(ctx context.Context, id gameid.ID) (raw.Record, error) {
	url := fmt.Sprintf("%s/game/%s/%s/%s/%d",
		a.baseURL, id.DateString(), id.AwayCode, id.HomeCode, id.GameNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &AdapterError{
			Adapter: a.Name(),
			GameID:  id.String(),
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	rec, err := raw.Decode(resp.Body)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}
	if len(rec) == 0 {
		return nil, ErrNotFound
	}
	return rec, nil
}
