// Package resolve runs the fallback chain: source adapters in priority
// order, then an optional template customization, then static mock data.
// Resolution is total; every identifier yields a summary.
package resolve

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/claycot/scorecard-bridge/internal/adapters"
	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/metrics"
	"github.com/claycot/scorecard-bridge/internal/normalize"
	"github.com/claycot/scorecard-bridge/internal/raw"
	"github.com/claycot/scorecard-bridge/internal/summary"
	"github.com/claycot/scorecard-bridge/internal/teams"
)

// Resolver tries each adapter in order and falls back to generated data when
// every source misses or fails.
type Resolver struct {
	adapters     []adapters.Adapter
	templatePath string
	logger       *log.Logger
	metrics      *metrics.Recorder
}

// New builds a resolver over the given chain. templatePath may be empty to
// skip template customization; metrics may be nil.
func New(chain []adapters.Adapter, templatePath string, logger *log.Logger, recorder *metrics.Recorder) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{
		adapters:     chain,
		templatePath: templatePath,
		logger:       logger,
		metrics:      recorder,
	}
}

// Resolve returns a summary for the identifier. It never fails: adapter
// misses and errors fall through the chain, and the mock fallback closes it.
// A record that fetched but would not normalize poisons the whole resolution,
// so the final mock is tagged as an error fallback in that case.
func (r *Resolver) Resolve(ctx context.Context, id gameid.ID) *summary.Game {
	sawBadRecord := false

	for _, adapter := range r.adapters {
		rec, err := adapter.Fetch(ctx, id)
		if errors.Is(err, adapters.ErrNotFound) {
			r.metrics.AdapterAttempt(adapter.Name(), metrics.OutcomeMiss)
			r.logger.Printf("[INFO] resolve: %s has no record of %s", adapter.Name(), id)
			continue
		}
		if err != nil {
			r.metrics.AdapterAttempt(adapter.Name(), metrics.OutcomeError)
			r.logger.Printf("[ERROR] resolve: %s failed for %s: %v", adapter.Name(), id, err)
			continue
		}

		game, err := normalize.Normalize(rec, id)
		if err != nil {
			sawBadRecord = true
			r.metrics.AdapterAttempt(adapter.Name(), metrics.OutcomeRejected)
			r.logger.Printf("[ERROR] resolve: %s returned an unusable record for %s: %v", adapter.Name(), id, err)
			continue
		}

		r.metrics.AdapterAttempt(adapter.Name(), metrics.OutcomeHit)
		game.IntegrationStatus = adapter.Provenance()
		game.Note = adapter.Note(id)
		r.logger.Printf("[INFO] resolve: %s answered %s (%s %d - %s %d)",
			adapter.Name(), id, id.AwayCode, game.TotalAwayRuns, id.HomeCode, game.TotalHomeRuns)
		return game
	}

	if r.templatePath != "" {
		if game := r.customizeTemplate(id); game != nil {
			r.logger.Printf("[INFO] resolve: customized template data for %s", id)
			return game
		}
	}

	r.metrics.Fallback()
	game := Mock(id)
	if sawBadRecord {
		game.IntegrationStatus = summary.StatusErrorFallback
		game.Note = "Error fallback data"
	}
	r.logger.Printf("[INFO] resolve: mock fallback for %s (%s)", id, game.IntegrationStatus)
	return game
}

// customizeTemplate loads the configured template document and rewrites its
// identity fields for the requested game. Any failure is logged and skipped;
// the mock fallback still stands behind it.
func (r *Resolver) customizeTemplate(id gameid.ID) *summary.Game {
	f, err := os.Open(r.templatePath)
	if err != nil {
		r.logger.Printf("[ERROR] resolve: template unavailable at %s: %v", r.templatePath, err)
		return nil
	}
	defer f.Close()

	rec, err := raw.Decode(f)
	if err != nil {
		r.logger.Printf("[ERROR] resolve: template at %s is not valid JSON: %v", r.templatePath, err)
		return nil
	}

	game, err := normalize.Normalize(rec, id)
	if err != nil {
		r.logger.Printf("[ERROR] resolve: template at %s did not normalize: %v", r.templatePath, err)
		return nil
	}

	game.GameID = id.String()
	game.Date = id.DateString()
	game.AwayTeam = summary.TeamInfo{Name: teams.Name(id.AwayCode), Abbreviation: id.AwayCode}
	game.HomeTeam = summary.TeamInfo{Name: teams.Name(id.HomeCode), Abbreviation: id.HomeCode}
	game.Venue = teams.Venue(id.HomeCode)
	game.IntegrationStatus = summary.StatusTemplateData
	game.Note = "Template data customized for " + id.AwayCode + " @ " + id.HomeCode + " on " + id.DateString()
	return game
}

// Mock is the terminal fallback: a complete, empty game shell built entirely
// from the identifier and the static team tables.
func Mock(id gameid.ID) *summary.Game {
	return &summary.Game{
		GameID: id.String(),
		Date:   id.DateString(),
		AwayTeam: summary.TeamInfo{
			Name:         teams.Name(id.AwayCode),
			Abbreviation: id.AwayCode,
		},
		HomeTeam: summary.TeamInfo{
			Name:         teams.Name(id.HomeCode),
			Abbreviation: id.HomeCode,
		},
		Venue:             teams.Venue(id.HomeCode),
		Status:            "completed",
		Innings:           []summary.InningLine{},
		Batters:           summary.BatterBox{Away: []summary.BatterLine{}, Home: []summary.BatterLine{}},
		Pitchers:          summary.PitcherBox{Away: []summary.PitcherLine{}, Home: []summary.PitcherLine{}},
		Events:            []summary.PitchEvent{},
		IntegrationStatus: summary.StatusFallbackMock,
		Note:              "Fallback mock data due to API unavailability",
	}
}
