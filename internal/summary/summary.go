// Package summary defines the canonical game record emitted to the front
// end. Key names are stable; consumers rely on them.
package summary

import "encoding/json"

// Provenance tags identifying which source (or fallback) produced a record.
const (
	StatusLibraryData   = "real_baseball_library_data"
	StatusRemoteData    = "real_mlb_api_data"
	StatusTemplateData  = "customized_template_data"
	StatusEnhancedMock  = "enhanced_mock_data"
	StatusFallbackMock  = "fallback_mock_data"
	StatusErrorFallback = "error_fallback"
)

// Sentinel values used when real data is unavailable, so consumers never see
// null fields.
const (
	Unknown = "Unknown"
	TBD     = "TBD"
)

// Game is the normalized output record for one game.
type Game struct {
	GameID   string       `json:"game_id"`
	Date     string       `json:"date"`
	AwayTeam TeamInfo     `json:"away_team"`
	HomeTeam TeamInfo     `json:"home_team"`
	Venue    string       `json:"venue"`
	Status   string       `json:"status"`
	Innings  []InningLine `json:"innings"`
	Batters  BatterBox    `json:"batters"`
	Pitchers PitcherBox   `json:"pitchers"`

	// Events is reserved for future use and always empty.
	Events []PitchEvent `json:"events"`

	IntegrationStatus string `json:"integration_status"`
	Note              string `json:"note"`

	TotalAwayRuns int `json:"total_away_runs"`
	TotalHomeRuns int `json:"total_home_runs"`

	// Supplementary metadata merged in by enrichment. Absent until an
	// enrichment pass runs; after one, every field holds at least its
	// sentinel.
	Umpires   []Umpire  `json:"umpires,omitempty"`
	Managers  *Managers `json:"managers,omitempty"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Weather   string    `json:"weather,omitempty"`
	Wind      string    `json:"wind,omitempty"`
	Uniforms  *Uniforms `json:"uniforms,omitempty"`
}

type TeamInfo struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// InningLine is one row of the linescore plus the plate appearances behind
// it. Inning numbers are unique within a game; runs match the appearance
// lists whenever appearance data exists.
type InningLine struct {
	Inning       int               `json:"inning"`
	AwayRuns     int               `json:"away_runs"`
	HomeRuns     int               `json:"home_runs"`
	TopEvents    []PlateAppearance `json:"top_events"`
	BottomEvents []PlateAppearance `json:"bottom_events"`
}

// PlateAppearance is one batter's turn against a pitcher.
type PlateAppearance struct {
	Batter      string       `json:"batter"`
	Pitcher     string       `json:"pitcher"`
	Description string       `json:"description"`
	Summary     string       `json:"summary"`
	GotOnBase   bool         `json:"got_on_base"`
	RunsScored  int          `json:"runs_scored"`
	RBIs        int          `json:"rbis"`
	Outs        int          `json:"outs"`
	Half        string       `json:"half"`
	Pitches     []PitchEvent `json:"events"`
}

// Halves of an inning, as carried on each plate appearance.
const (
	HalfTop    = "top"
	HalfBottom = "bottom"
)

type PitchEvent struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Result      string    `json:"result"`
	Speed       *float64  `json:"speed"`
	Location    []float64 `json:"location"`
}

type BatterBox struct {
	Away []BatterLine `json:"away"`
	Home []BatterLine `json:"home"`
}

type PitcherBox struct {
	Away []PitcherLine `json:"away"`
	Home []PitcherLine `json:"home"`
}

// BatterLine is one batter's box score row. Average is always a formatted
// 3-decimal string, "0.000" when the underlying number is absent.
type BatterLine struct {
	Name        string `json:"name"`
	AtBats      int    `json:"at_bats"`
	Hits        int    `json:"hits"`
	Runs        int    `json:"runs"`
	RBIs        int    `json:"rbis"`
	Average     string `json:"average"`
	Position    string `json:"position"`
	LineupOrder int    `json:"lineup_order"`
}

// PitcherLine is one pitcher's box score row. ERA is always a formatted
// 2-decimal string, "0.00" when the underlying number is absent.
type PitcherLine struct {
	Name           string  `json:"name"`
	InningsPitched float64 `json:"innings_pitched"`
	Hits           int     `json:"hits"`
	Runs           int     `json:"runs"`
	EarnedRuns     int     `json:"earned_runs"`
	Walks          int     `json:"walks"`
	Strikeouts     int     `json:"strikeouts"`
	ERA            string  `json:"era"`
}

type Umpire struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type Managers struct {
	Away string `json:"away"`
	Home string `json:"home"`
}

type Uniforms struct {
	Away string `json:"away"`
	Home string `json:"home"`
}

// RecomputeTotals derives the game totals from the per-inning values.
func (g *Game) RecomputeTotals() {
	away, home := 0, 0
	for _, inning := range g.Innings {
		away += inning.AwayRuns
		home += inning.HomeRuns
	}
	g.TotalAwayRuns = away
	g.TotalHomeRuns = home
}

// ToJSON renders the record the way the CLI and server emit it.
func (g *Game) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
