package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/raw"
	"github.com/claycot/scorecard-bridge/internal/statsapi"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

// StatsAPI resolves the identifier to a gamePk through the remote schedule
// endpoint, then fetches the live-feed document and maps it into the shared
// raw shape. The linescore carries per-inning runs but no plate appearance
// detail, so the record's innings hold explicit run fields and empty
// appearance lists.
type StatsAPI struct {
	client *statsapi.Client
}

func NewStatsAPI(client *statsapi.Client) *StatsAPI {
	return &StatsAPI{client: client}
}

func (a *StatsAPI) Name() string {
	return "stats_api"
}

func (a *StatsAPI) Provenance() string {
	return summary.StatusRemoteData
}

func (a *StatsAPI) Note(id gameid.ID) string {
	return fmt.Sprintf("Real data from MLB API for %s @ %s on %s",
		id.AwayCode, id.HomeCode, id.DateString())
}

func (a *StatsAPI) Fetch(ctx context.Context, id gameid.ID) (raw.Record, error) {
	game, err := a.client.FindGame(ctx, id)
	if errors.Is(err, statsapi.ErrGameNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}

	feed, err := a.client.LiveFeed(ctx, game.GamePk)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}

	return mapFeed(game, feed), nil
}

// mapFeed reshapes a schedule entry plus live feed into the library-shaped
// raw record the normalizer consumes.
func mapFeed(game *statsapi.ScheduleGame, feed *statsapi.LiveFeed) raw.Record {
	rec := raw.Record{
		"away_team": map[string]any{"name": coalesce(feed.GameData.Teams.Away.Name, game.Teams.Away.Team.Name)},
		"home_team": map[string]any{"name": coalesce(feed.GameData.Teams.Home.Name, game.Teams.Home.Team.Name)},
	}

	if venue := coalesce(feed.GameData.Venue.Name, game.Venue.Name); venue != "" {
		rec["venue"] = venue
	}
	if status := coalesce(feed.GameData.Status.DetailedState, game.Status.DetailedState); status != "" {
		rec["status"] = status
	}

	innings := make([]any, 0, len(feed.LiveData.Linescore.Innings))
	for i, inning := range feed.LiveData.Linescore.Innings {
		num := inning.Num
		if num == 0 {
			num = i + 1
		}
		innings = append(innings, map[string]any{
			"inning":    float64(num),
			"away_runs": float64(inning.Away.Runs),
			"home_runs": float64(inning.Home.Runs),
		})
	}
	rec["inning_list"] = innings

	return rec
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
