package summary

func fptr(f float64) *float64 { return &f }

// SampleGame returns a synthetic but internally consistent game record
// (TB @ CHC). It exists for tests and demos only; production records come
// from the resolver.
func SampleGame() *Game {
	g := &Game{
		GameID:   "2025-09-14-TB-CHC-1",
		Date:     "2025-09-14",
		AwayTeam: TeamInfo{Name: "Tampa Bay Rays", Abbreviation: "TB"},
		HomeTeam: TeamInfo{Name: "Chicago Cubs", Abbreviation: "CHC"},
		Venue:    "Wrigley Field",
		Status:   "completed",
		Innings: []InningLine{
			{
				Inning:   1,
				AwayRuns: 2,
				HomeRuns: 0,
				TopEvents: []PlateAppearance{
					{
						Batter:      "Yandy Díaz",
						Pitcher:     "Justin Steele",
						Description: "Single to center field",
						Summary:     "1B",
						GotOnBase:   true,
						Half:        HalfTop,
						Pitches: []PitchEvent{
							{Type: "Fastball", Description: "Called Strike", Result: "0-1", Speed: fptr(94.2)},
							{Type: "Slider", Description: "Ball", Result: "1-1"},
							{Type: "Fastball", Description: "In play, single", Result: "1B"},
						},
					},
					{
						Batter:      "Randy Arozarena",
						Pitcher:     "Justin Steele",
						Description: "Home run to left field",
						Summary:     "HR",
						GotOnBase:   true,
						RunsScored:  2,
						RBIs:        2,
						Half:        HalfTop,
						Pitches: []PitchEvent{
							{Type: "Fastball", Description: "Ball", Result: "1-0"},
							{Type: "Curveball", Description: "Home run", Result: "HR"},
						},
					},
					{
						Batter:      "Isaac Paredes",
						Pitcher:     "Justin Steele",
						Description: "Strikeout swinging",
						Summary:     "K",
						Outs:        1,
						Half:        HalfTop,
						Pitches: []PitchEvent{
							{Type: "Fastball", Description: "Called Strike", Result: "0-1"},
							{Type: "Slider", Description: "Swinging Strike", Result: "0-2"},
							{Type: "Fastball", Description: "Swinging Strike", Result: "K"},
						},
					},
				},
				BottomEvents: []PlateAppearance{
					{
						Batter:      "Nico Hoerner",
						Pitcher:     "Tyler Glasnow",
						Description: "Ground out to shortstop",
						Summary:     "6-3",
						Outs:        1,
						Half:        HalfBottom,
						Pitches: []PitchEvent{
							{Type: "Fastball", Description: "Ball", Result: "1-0"},
							{Type: "Curveball", Description: "Ground out", Result: "6-3"},
						},
					},
				},
			},
			{
				Inning:    2,
				AwayRuns:  0,
				HomeRuns:  1,
				TopEvents: []PlateAppearance{},
				BottomEvents: []PlateAppearance{
					{
						Batter:      "Cody Bellinger",
						Pitcher:     "Tyler Glasnow",
						Description: "Home run to right field",
						Summary:     "HR",
						GotOnBase:   true,
						RunsScored:  1,
						RBIs:        1,
						Half:        HalfBottom,
						Pitches: []PitchEvent{
							{Type: "Fastball", Description: "Home run", Result: "HR"},
						},
					},
				},
			},
		},
		Batters: BatterBox{
			Away: []BatterLine{
				{Name: "Yandy Díaz", AtBats: 4, Hits: 2, Runs: 1, Average: "0.285", Position: "1B", LineupOrder: 1},
				{Name: "Randy Arozarena", AtBats: 4, Hits: 1, Runs: 1, RBIs: 2, Average: "0.254", Position: "LF", LineupOrder: 2},
				{Name: "Isaac Paredes", AtBats: 4, Hits: 1, Average: "0.267", Position: "3B", LineupOrder: 3},
				{Name: "Harold Ramírez", AtBats: 3, Hits: 1, Average: "0.298", Position: "DH", LineupOrder: 4},
				{Name: "Josh Lowe", AtBats: 3, Average: "0.292", Position: "RF", LineupOrder: 5},
			},
			Home: []BatterLine{
				{Name: "Nico Hoerner", AtBats: 4, Hits: 1, Average: "0.283", Position: "2B", LineupOrder: 1},
				{Name: "Cody Bellinger", AtBats: 4, Hits: 2, Runs: 1, RBIs: 1, Average: "0.307", Position: "1B", LineupOrder: 2},
				{Name: "Seiya Suzuki", AtBats: 4, Hits: 1, Average: "0.285", Position: "RF", LineupOrder: 3},
				{Name: "Christopher Morel", AtBats: 3, Average: "0.247", Position: "3B", LineupOrder: 4},
				{Name: "Ian Happ", AtBats: 3, Hits: 1, Average: "0.248", Position: "LF", LineupOrder: 5},
			},
		},
		Pitchers: PitcherBox{
			Away: []PitcherLine{
				{Name: "Tyler Glasnow", InningsPitched: 6.0, Hits: 5, Runs: 1, EarnedRuns: 1, Walks: 2, Strikeouts: 7, ERA: "3.53"},
			},
			Home: []PitcherLine{
				{Name: "Justin Steele", InningsPitched: 5.2, Hits: 6, Runs: 2, EarnedRuns: 2, Walks: 1, Strikeouts: 6, ERA: "3.06"},
			},
		},
		Events:            []PitchEvent{},
		IntegrationStatus: StatusEnhancedMock,
		Note:              "Enhanced mock data with realistic player names and pitch sequences",
	}
	g.RecomputeTotals()
	return g
}
