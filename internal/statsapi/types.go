package statsapi

// Response shapes for the MLB stats API endpoints the bridge uses: schedule
// (lists games on a date), live feed (detail for one gamePk), team coaches,
// and uniform assets. The provider owns these schemas; every field here is
// optional on the wire, so consumers must tolerate zero values.

import (
	"encoding/json"
	"io"
	"time"
)

// Schedule is the response to the schedule endpoint.
type Schedule struct {
	TotalGames int            `json:"totalGames"`
	Dates      []ScheduleDate `json:"dates"`
}

func (s *Schedule) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(s)
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	GamePk     uint32        `json:"gamePk"`
	GameNumber int           `json:"gameNumber"`
	GameDate   time.Time     `json:"gameDate"`
	Status     Status        `json:"status"`
	Teams      ScheduleTeams `json:"teams"`
	Venue      Venue         `json:"venue"`
}

type ScheduleTeams struct {
	Away ScheduleTeam `json:"away"`
	Home ScheduleTeam `json:"home"`
}

type ScheduleTeam struct {
	Score int     `json:"score"`
	Team  TeamRef `json:"team"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Status struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type Venue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LiveFeed is the response to the live game endpoint.
type LiveFeed struct {
	GamePk   uint32   `json:"gamePk"`
	GameData GameData `json:"gameData"`
	LiveData LiveData `json:"liveData"`
}

func (lg *LiveFeed) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(lg)
}

type GameData struct {
	Datetime Datetime  `json:"datetime"`
	Status   Status    `json:"status"`
	Teams    FeedTeams `json:"teams"`
	Venue    Venue     `json:"venue"`
	Weather  Weather   `json:"weather"`
	GameInfo GameInfo  `json:"gameInfo"`
}

type Datetime struct {
	DateTime time.Time `json:"dateTime"`
}

type FeedTeams struct {
	Away FeedTeam `json:"away"`
	Home FeedTeam `json:"home"`
}

type FeedTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type Weather struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
	Wind      string `json:"wind"`
}

type GameInfo struct {
	FirstPitch          time.Time `json:"firstPitch"`
	GameDurationMinutes int       `json:"gameDurationMinutes"`
}

type LiveData struct {
	Linescore Linescore `json:"linescore"`
	Boxscore  Boxscore  `json:"boxscore"`
}

type Linescore struct {
	CurrentInning int               `json:"currentInning"`
	Innings       []LinescoreInning `json:"innings"`
	Teams         LinescoreTeams    `json:"teams"`
}

type LinescoreInning struct {
	Num  int      `json:"num"`
	Away HalfLine `json:"away"`
	Home HalfLine `json:"home"`
}

type HalfLine struct {
	Runs int `json:"runs"`
	Hits int `json:"hits"`
}

type LinescoreTeams struct {
	Away TeamRuns `json:"away"`
	Home TeamRuns `json:"home"`
}

type TeamRuns struct {
	Runs int `json:"runs"`
}

type Boxscore struct {
	Info []LabeledField `json:"info"`
}

// LabeledField carries free-text metadata such as the umpire assignments
// ("Umpires" / "HP: Marvin Hudson. 1B: ...").
type LabeledField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CoachingStaff is the response to the team coaches endpoint.
type CoachingStaff struct {
	Roster []Coach `json:"roster"`
}

type Coach struct {
	Person Person `json:"person"`
	Job    string `json:"job"`
	Title  string `json:"title"`
}

type Person struct {
	FullName string `json:"fullName"`
}

// GameUniforms is the response to the uniforms-by-game endpoint.
type GameUniforms struct {
	Uniforms []TeamUniform `json:"uniforms"`
}

type TeamUniform struct {
	TeamID int            `json:"teamId"`
	Assets []UniformAsset `json:"uniformAssets"`
}

type UniformAsset struct {
	Text string `json:"uniformAssetText"`
}
