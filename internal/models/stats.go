package models

// StatColumns is the tracked box-score column set in its canonical order.
// The names are the training-time column names and feed directly into
// feature names ("home_MP", "away_3P", ...).
var StatColumns = []string{
	"MP", "FG", "FGA", "3P", "3PA", "FT", "FTA",
	"TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

// StatLine holds a minutes-weighted team aggregate, one value per tracked
// column. Values are NaN when no player rows matched the (team, season).
type StatLine struct {
	MP  float64 `json:"mp"`
	FG  float64 `json:"fg"`
	FGA float64 `json:"fga"`
	P3  float64 `json:"three_p"`
	PA3 float64 `json:"three_pa"`
	FT  float64 `json:"ft"`
	FTA float64 `json:"fta"`
	TRB float64 `json:"trb"`
	AST float64 `json:"ast"`
	STL float64 `json:"stl"`
	BLK float64 `json:"blk"`
	TOV float64 `json:"tov"`
	PF  float64 `json:"pf"`
	PTS float64 `json:"pts"`
}

// Values returns the stat line in StatColumns order.
func (s StatLine) Values() []float64 {
	return []float64{
		s.MP, s.FG, s.FGA, s.P3, s.PA3, s.FT, s.FTA,
		s.TRB, s.AST, s.STL, s.BLK, s.TOV, s.PF, s.PTS,
	}
}

// RecentForm holds trailing-window means over a team's most recent games.
// All values are NaN when the team has no match history.
type RecentForm struct {
	PointDiff float64 `json:"point_diff_rolling"`
	Scored    float64 `json:"Tm_rolling"`
	Allowed   float64 `json:"Opp_rolling"`
	WinRate   float64 `json:"win_rolling"`
	Games     int     `json:"games"` // games actually included in the window
}
