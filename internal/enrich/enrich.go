// Package enrich merges supplementary remote metadata into a normalized game
// summary: umpire assignments, managers, start and end times, weather, and
// uniforms. Every sub-fetch is independently fault tolerant; a failure leaves
// the affected fields at their sentinels and never aborts the pass.
package enrich

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/statsapi"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

// Enricher looks up supplementary game metadata on the remote stats API.
type Enricher struct {
	client *statsapi.Client
	logger *log.Logger
}

func New(client *statsapi.Client, logger *log.Logger) *Enricher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Enricher{client: client, logger: logger}
}

// Enrich fills the summary's supplementary fields in place and returns it.
// Fields start at their sentinels, so a total remote failure still leaves a
// complete record. Re-running with the same upstream data overwrites the same
// fields with the same values.
func (e *Enricher) Enrich(ctx context.Context, game *summary.Game, id gameid.ID) *summary.Game {
	game.Umpires = []summary.Umpire{}
	game.Managers = &summary.Managers{Away: summary.Unknown, Home: summary.Unknown}
	game.StartTime = summary.TBD
	game.EndTime = summary.TBD
	game.Weather = summary.Unknown
	game.Wind = summary.Unknown
	game.Uniforms = &summary.Uniforms{Away: summary.Unknown, Home: summary.Unknown}

	entry, err := e.client.FindGame(ctx, id)
	if err != nil {
		e.logger.Printf("[INFO] enrich: no schedule entry for %s, keeping sentinels: %v", id, err)
		return game
	}

	feed, err := e.client.LiveFeed(ctx, entry.GamePk)
	if err != nil {
		e.logger.Printf("[ERROR] enrich: live feed unavailable for %s: %v", id, err)
	} else {
		e.applyFeed(game, feed)
	}

	e.applyManagers(ctx, game, feed, entry)
	e.applyUniforms(ctx, game, feed, entry)

	return game
}

func (e *Enricher) applyFeed(game *summary.Game, feed *statsapi.LiveFeed) {
	// the feed's venue is authoritative over table-derived placeholders
	if feed.GameData.Venue.Name != "" {
		game.Venue = feed.GameData.Venue.Name
	}

	if !feed.GameData.Datetime.DateTime.IsZero() {
		game.StartTime = feed.GameData.Datetime.DateTime.Format("3:04 PM")
	}
	if start := feed.GameData.GameInfo.FirstPitch; !start.IsZero() {
		game.StartTime = start.Format("3:04 PM")
		if minutes := feed.GameData.GameInfo.GameDurationMinutes; minutes > 0 {
			game.EndTime = start.Add(time.Duration(minutes) * time.Minute).Format("3:04 PM")
		}
	}

	weather := feed.GameData.Weather
	if weather.Condition != "" && weather.Temp != "" {
		game.Weather = fmt.Sprintf("%s, %s°F", weather.Condition, weather.Temp)
	} else if weather.Condition != "" {
		game.Weather = weather.Condition
	}
	if weather.Wind != "" {
		game.Wind = weather.Wind
	}

	for _, field := range feed.LiveData.Boxscore.Info {
		if field.Label == "Umpires" {
			game.Umpires = ParseUmpires(field.Value)
			break
		}
	}
}

// applyManagers pulls each team's coaching roster and keeps the entry whose
// job is Manager. Either lookup may fail independently.
func (e *Enricher) applyManagers(ctx context.Context, game *summary.Game, feed *statsapi.LiveFeed, entry *statsapi.ScheduleGame) {
	awayID, homeID := teamIDs(feed, entry)
	if name, ok := e.manager(ctx, awayID); ok {
		game.Managers.Away = name
	}
	if name, ok := e.manager(ctx, homeID); ok {
		game.Managers.Home = name
	}
}

func (e *Enricher) manager(ctx context.Context, teamID int) (string, bool) {
	if teamID == 0 {
		return "", false
	}
	staff, err := e.client.Coaches(ctx, teamID)
	if err != nil {
		e.logger.Printf("[ERROR] enrich: coaches unavailable for team %d: %v", teamID, err)
		return "", false
	}
	for _, coach := range staff.Roster {
		if coach.Job == "Manager" && coach.Person.FullName != "" {
			return coach.Person.FullName, true
		}
	}
	return "", false
}

func (e *Enricher) applyUniforms(ctx context.Context, game *summary.Game, feed *statsapi.LiveFeed, entry *statsapi.ScheduleGame) {
	uniforms, err := e.client.Uniforms(ctx, entry.GamePk)
	if err != nil {
		e.logger.Printf("[ERROR] enrich: uniforms unavailable for gamePk %d: %v", entry.GamePk, err)
		return
	}

	awayID, homeID := teamIDs(feed, entry)
	for _, team := range uniforms.Uniforms {
		if len(team.Assets) == 0 || team.Assets[0].Text == "" {
			continue
		}
		switch team.TeamID {
		case awayID:
			game.Uniforms.Away = team.Assets[0].Text
		case homeID:
			game.Uniforms.Home = team.Assets[0].Text
		}
	}
}

// teamIDs prefers the live feed's team identifiers and falls back to the
// schedule entry's.
func teamIDs(feed *statsapi.LiveFeed, entry *statsapi.ScheduleGame) (away, home int) {
	if feed != nil {
		away = feed.GameData.Teams.Away.ID
		home = feed.GameData.Teams.Home.ID
	}
	if away == 0 {
		away = entry.Teams.Away.Team.ID
	}
	if home == 0 {
		home = entry.Teams.Home.Team.ID
	}
	return away, home
}

// umpirePositions are the base-position abbreviations the info blob uses.
var umpirePositions = map[string]bool{
	"HP": true,
	"1B": true,
	"2B": true,
	"3B": true,
	"LF": true,
	"RF": true,
}

// ParseUmpires splits the boxscore's free-text umpire assignment blob, e.g.
// "HP: Marvin Hudson. 1B: Hunter Wendelstedt.", into structured entries.
// Entries with an unrecognized position or an empty name are dropped.
func ParseUmpires(blob string) []summary.Umpire {
	umpires := []summary.Umpire{}

	segments := strings.FieldsFunc(blob, func(r rune) bool {
		return r == ';' || r == '.'
	})
	for _, segment := range segments {
		position, name, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		position = strings.TrimSpace(position)
		name = strings.TrimSpace(name)
		if !umpirePositions[position] || name == "" {
			continue
		}
		umpires = append(umpires, summary.Umpire{Name: name, Position: position})
	}

	return umpires
}
