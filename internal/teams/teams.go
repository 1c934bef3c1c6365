// Package teams carries the static code lookups used whenever a source
// doesn't tell us who is playing or where. Unknown codes degrade to
// "<CODE> Team" / "<CODE> Stadium" rather than failing.
package teams

var names = map[string]string{
	"ARI": "Arizona Diamondbacks",
	"ATL": "Atlanta Braves",
	"BAL": "Baltimore Orioles",
	"BOS": "Boston Red Sox",
	"CHC": "Chicago Cubs",
	"CHW": "Chicago White Sox",
	"CIN": "Cincinnati Reds",
	"CLE": "Cleveland Guardians",
	"COL": "Colorado Rockies",
	"DET": "Detroit Tigers",
	"HOU": "Houston Astros",
	"KC":  "Kansas City Royals",
	"LAA": "Los Angeles Angels",
	"LAD": "Los Angeles Dodgers",
	"MIA": "Miami Marlins",
	"MIL": "Milwaukee Brewers",
	"MIN": "Minnesota Twins",
	"NYM": "New York Mets",
	"NYY": "New York Yankees",
	"OAK": "Oakland Athletics",
	"PHI": "Philadelphia Phillies",
	"PIT": "Pittsburgh Pirates",
	"SD":  "San Diego Padres",
	"SEA": "Seattle Mariners",
	"SF":  "San Francisco Giants",
	"STL": "St. Louis Cardinals",
	"TB":  "Tampa Bay Rays",
	"TEX": "Texas Rangers",
	"TOR": "Toronto Blue Jays",
	"WSH": "Washington Nationals",
}

var venues = map[string]string{
	"ARI": "Chase Field",
	"ATL": "Truist Park",
	"BAL": "Oriole Park at Camden Yards",
	"BOS": "Fenway Park",
	"CHC": "Wrigley Field",
	"CHW": "Guaranteed Rate Field",
	"CIN": "Great American Ball Park",
	"CLE": "Progressive Field",
	"COL": "Coors Field",
	"DET": "Comerica Park",
	"HOU": "Minute Maid Park",
	"KC":  "Kauffman Stadium",
	"LAA": "Angel Stadium",
	"LAD": "Dodger Stadium",
	"MIA": "loanDepot park",
	"MIL": "American Family Field",
	"MIN": "Target Field",
	"NYM": "Citi Field",
	"NYY": "Yankee Stadium",
	"OAK": "Oakland Coliseum",
	"PHI": "Citizens Bank Park",
	"PIT": "PNC Park",
	"SD":  "Petco Park",
	"SEA": "T-Mobile Park",
	"SF":  "Oracle Park",
	"STL": "Busch Stadium",
	"TB":  "Tropicana Field",
	"TEX": "Globe Life Field",
	"TOR": "Rogers Centre",
	"WSH": "Nationals Park",
}

// Name maps a team code to its full name.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return code + " Team"
}

// Venue maps a home team code to its ballpark.
func Venue(code string) string {
	if venue, ok := venues[code]; ok {
		return venue
	}
	return code + " Stadium"
}
