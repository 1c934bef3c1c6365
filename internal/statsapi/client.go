package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/teams"
)

const (
	// DefaultBaseURL is the public stats API host.
	DefaultBaseURL = "https://statsapi.mlb.com"

	// DefaultTimeout bounds every remote call; a hung call is treated the
	// same as a failed one.
	DefaultTimeout = 10 * time.Second

	maxRetries = 2
)

// ErrGameNotFound reports that no schedule entry matches the identifier.
var ErrGameNotFound = errors.New("statsapi: no schedule entry matches game")

// Client talks to the MLB stats API. Calls are rate limited and retried with
// exponential backoff; 4xx responses are not retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// New constructs a client. An empty baseURL selects the public host; a
// non-positive timeout selects the default.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		logger:     logger,
	}
}

// Schedule fetches the games scheduled on the given date.
func (c *Client) Schedule(ctx context.Context, date time.Time) (*Schedule, error) {
	// the schedule endpoint takes MM/DD/YYYY
	url := fmt.Sprintf("%s/api/v1/schedule?sportId=1&date=%s", c.baseURL, date.Format("01/02/2006"))
	var schedule Schedule
	if err := c.getJSON(ctx, url, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// LiveFeed fetches the detailed live game document for a gamePk.
func (c *Client) LiveFeed(ctx context.Context, gamePk uint32) (*LiveFeed, error) {
	url := fmt.Sprintf("%s/api/v1/game/%d/feed/live", c.baseURL, gamePk)
	var feed LiveFeed
	if err := c.getJSON(ctx, url, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Coaches fetches the coaching roster for a team.
func (c *Client) Coaches(ctx context.Context, teamID int) (*CoachingStaff, error) {
	url := fmt.Sprintf("%s/api/v1/teams/%d/coaches", c.baseURL, teamID)
	var staff CoachingStaff
	if err := c.getJSON(ctx, url, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// Uniforms fetches the uniform assets worn in a game.
func (c *Client) Uniforms(ctx context.Context, gamePk uint32) (*GameUniforms, error) {
	url := fmt.Sprintf("%s/api/v1/uniforms/game?gamePks=%d", c.baseURL, gamePk)
	var uniforms GameUniforms
	if err := c.getJSON(ctx, url, &uniforms); err != nil {
		return nil, err
	}
	return &uniforms, nil
}

// FindGame resolves a composite identifier to its schedule entry by matching
// full team names and game number on the identifier's date.
func (c *Client) FindGame(ctx context.Context, id gameid.ID) (*ScheduleGame, error) {
	schedule, err := c.Schedule(ctx, id.Date)
	if err != nil {
		return nil, err
	}
	if len(schedule.Dates) == 0 {
		return nil, ErrGameNotFound
	}

	awayName := teams.Name(id.AwayCode)
	homeName := teams.Name(id.HomeCode)

	for i := range schedule.Dates[0].Games {
		game := &schedule.Dates[0].Games[i]
		if game.Teams.Away.Team.Name == awayName &&
			game.Teams.Home.Team.Name == homeName &&
			matchGameNumber(game.GameNumber, id.GameNumber) {
			return game, nil
		}
	}

	return nil, ErrGameNotFound
}

// single games are sometimes reported with gameNumber 0
func matchGameNumber(scheduled, requested int) bool {
	if scheduled == 0 {
		return requested == 1
	}
	return scheduled == requested
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			statusErr := fmt.Errorf("statsapi: unexpected status %d from %s: %s",
				resp.StatusCode, url, strings.TrimSpace(string(body)))
			if resp.StatusCode >= http.StatusInternalServerError {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("statsapi: decoding %s: %w", url, err))
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	return backoff.RetryNotify(operation, bo, func(err error, wait time.Duration) {
		if c.logger != nil {
			c.logger.Printf("[INFO] statsapi: retrying in %s after error: %v", wait, err)
		}
	})
}
