// Package normalize converts a raw source record into the canonical game
// summary. Every field access tolerates absence: a sparse record produces a
// sparse but well-formed summary, never an error. Only a record with nothing
// usable in it fails.
package normalize

import (
	"fmt"
	"strings"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/raw"
	"github.com/claycot/scorecard-bridge/internal/summary"
	"github.com/claycot/scorecard-bridge/internal/teams"
)

// NormalizationError reports that a fetched record could not be turned into a
// summary at all. The controller falls through to the next source and, if the
// chain ends here, tags the mock result as an error fallback.
type NormalizationError struct {
	GameID string
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s: %s", e.GameID, e.Reason)
}

// Normalize builds the canonical summary for one game from a raw record.
// Team names, venue, and status fall back to identifier-derived defaults;
// totals are always recomputed from the inning lines.
func Normalize(rec raw.Record, id gameid.ID) (*summary.Game, error) {
	if len(rec) == 0 {
		return nil, &NormalizationError{GameID: id.String(), Reason: "empty record"}
	}

	game := &summary.Game{
		GameID: id.String(),
		Date:   id.DateString(),
		AwayTeam: summary.TeamInfo{
			Name:         teamName(rec.Child("away_team"), id.AwayCode),
			Abbreviation: id.AwayCode,
		},
		HomeTeam: summary.TeamInfo{
			Name:         teamName(rec.Child("home_team"), id.HomeCode),
			Abbreviation: id.HomeCode,
		},
		Venue:   rec.String("venue", teams.Venue(id.HomeCode)),
		Status:  rec.String("status", "completed"),
		Innings: extractInnings(rec),
		Batters: summary.BatterBox{
			Away: extractBatters(rec.List("away_batter_box_score_dict")),
			Home: extractBatters(rec.List("home_batter_box_score_dict")),
		},
		Pitchers: summary.PitcherBox{
			Away: extractPitchers(rec.List("away_pitcher_box_score_dict")),
			Home: extractPitchers(rec.List("home_pitcher_box_score_dict")),
		},
		Events: []summary.PitchEvent{},
	}
	game.RecomputeTotals()

	return game, nil
}

// teamName prefers the record's own team name, then the static table, then a
// "<CODE> Team" placeholder. A bare string team field is accepted too.
func teamName(team raw.Record, code string) string {
	if name := team.String("name", ""); name != "" {
		return name
	}
	return teams.Name(code)
}

// extractInnings builds the linescore. Inning numbers come from the record
// when present and are otherwise positional; a duplicated number keeps the
// first occurrence.
func extractInnings(rec raw.Record) []summary.InningLine {
	innings := []summary.InningLine{}
	seen := map[int]bool{}

	for i, inningRec := range rec.Records("inning_list") {
		num := inningRec.Int("inning", i+1)
		if num < 1 || seen[num] {
			continue
		}
		seen[num] = true

		top := halfAppearances(inningRec, "top_half_appearance_list", "top_events")
		bottom := halfAppearances(inningRec, "bottom_half_appearance_list", "bottom_events")

		line := summary.InningLine{
			Inning:       num,
			AwayRuns:     halfRuns(inningRec, top, "away_runs"),
			HomeRuns:     halfRuns(inningRec, bottom, "home_runs"),
			TopEvents:    extractAppearances(top, summary.HalfTop),
			BottomEvents: extractAppearances(bottom, summary.HalfBottom),
		}
		innings = append(innings, line)
	}

	return innings
}

// halfAppearances returns the appearance records for one half, accepting both
// the library's key and the already-normalized key.
func halfAppearances(inning raw.Record, keys ...string) []raw.Record {
	for _, key := range keys {
		if inning.Has(key) {
			return inning.Records(key)
		}
	}
	return nil
}

// halfRuns counts a half's runs. When appearance data exists, runs are the
// sum over appearances; the inning-level field only matters for linescore-only
// records such as the remote feed's.
func halfRuns(inning raw.Record, appearances []raw.Record, inningKey string) int {
	if len(appearances) == 0 {
		return inning.Int(inningKey, 0)
	}
	runs := 0
	for _, app := range appearances {
		runs += appearanceRuns(app)
	}
	return runs
}

// appearanceRuns prefers the scoring-runner list over the bare count field.
func appearanceRuns(app raw.Record) int {
	if app.Has("scoring_runners_list") {
		return len(app.List("scoring_runners_list"))
	}
	return app.Int("runs_scored", 0)
}

func extractAppearances(appearances []raw.Record, half string) []summary.PlateAppearance {
	out := make([]summary.PlateAppearance, 0, len(appearances))
	for _, app := range appearances {
		out = append(out, extractAppearance(app, half))
	}
	return out
}

func extractAppearance(app raw.Record, half string) summary.PlateAppearance {
	rbis := app.Int("rbis", 0)
	if app.Has("runners_batted_in_list") {
		rbis = len(app.List("runners_batted_in_list"))
	}

	outs := app.Int("inning_outs", app.Int("outs", 0))
	if outs < 0 {
		outs = 0
	}
	if outs > 3 {
		outs = 3
	}

	return summary.PlateAppearance{
		Batter:      personName(app, "batter"),
		Pitcher:     personName(app, "pitcher"),
		Description: app.String("plate_appearance_description", app.String("description", "Unknown play")),
		Summary:     app.String("plate_appearance_summary", app.String("summary", "?")),
		GotOnBase:   app.Bool("got_on_base", false),
		RunsScored:  appearanceRuns(app),
		RBIs:        rbis,
		Outs:        outs,
		Half:        half,
		Pitches:     extractPitches(app),
	}
}

// personName handles both shapes the sources use for a player field: a
// nested first/last object and a bare display string.
func personName(rec raw.Record, key string) string {
	if person := rec.Child(key); person != nil {
		name := strings.TrimSpace(person.String("first_name", "") + " " + person.String("last_name", ""))
		if name != "" {
			return name
		}
	}
	if name := rec.String(key, ""); name != "" {
		return name
	}
	return summary.Unknown
}

func extractPitches(app raw.Record) []summary.PitchEvent {
	events := app.Records("event_list")
	if events == nil {
		events = app.Records("events")
	}

	out := make([]summary.PitchEvent, 0, len(events))
	for _, event := range events {
		description := event.String("pitch_description", event.String("description", summary.Unknown))
		out = append(out, summary.PitchEvent{
			Type:        event.String("pitch_type", event.String("type", summary.Unknown)),
			Description: description,
			Result:      event.String("result", description),
			Speed:       event.FloatPtr("pitch_speed"),
			Location:    event.Pair("pitch_position"),
		})
	}
	return out
}

// boxPair splits one box-score entry into its [player info, stat line] halves.
// The library emits these as two-element arrays; malformed entries are
// skipped by returning nils.
func boxPair(entry any) (raw.Record, raw.Record) {
	pair, ok := entry.([]any)
	if !ok || len(pair) < 2 {
		return nil, nil
	}
	info, ok := pair[0].(map[string]any)
	if !ok {
		return nil, nil
	}
	stats, _ := pair[1].(map[string]any)
	return raw.Record(info), raw.Record(stats)
}

func playerDisplayName(info raw.Record) string {
	name := strings.TrimSpace(info.String("first_name", "") + " " + info.String("last_name", ""))
	if name == "" {
		return summary.Unknown
	}
	return name
}

func extractBatters(entries []any) []summary.BatterLine {
	batters := []summary.BatterLine{}
	for _, entry := range entries {
		info, stats := boxPair(entry)
		if info == nil {
			continue
		}
		batters = append(batters, summary.BatterLine{
			Name:        playerDisplayName(info),
			AtBats:      stats.Int("AB", 0),
			Hits:        stats.Int("H", 0),
			Runs:        stats.Int("R", 0),
			RBIs:        stats.Int("RBI", 0),
			Average:     fmt.Sprintf("%.3f", info.Float("obp", 0)),
			Position:    "?",
			LineupOrder: len(batters) + 1,
		})
	}
	return batters
}

func extractPitchers(entries []any) []summary.PitcherLine {
	pitchers := []summary.PitcherLine{}
	for _, entry := range entries {
		info, stats := boxPair(entry)
		if info == nil {
			continue
		}
		pitchers = append(pitchers, summary.PitcherLine{
			Name:           playerDisplayName(info),
			InningsPitched: stats.Float("IP", 0),
			Hits:           stats.Int("H", 0),
			Runs:           stats.Int("R", 0),
			EarnedRuns:     stats.Int("ER", 0),
			Walks:          stats.Int("BB", 0),
			Strikeouts:     stats.Int("SO", 0),
			ERA:            fmt.Sprintf("%.2f", info.Float("era", 0)),
		})
	}
	return pitchers
}
