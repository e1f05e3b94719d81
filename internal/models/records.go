package models

import "time"

// MatchRecord is one historical game for a team, translated from the
// external match-history table at load time. Immutable once loaded.
type MatchRecord struct {
	Team          string    `json:"team"`     // abbreviation
	Date          time.Time `json:"date"`
	Venue         string    `json:"venue"`    // "Home" or "Away"
	Opponent      string    `json:"opponent"` // abbreviation
	TeamScore     int       `json:"team_score"`
	OpponentScore int       `json:"opponent_score"`
	Result        string    `json:"result"` // "W" or "L"
	Streak        string    `json:"streak"` // raw streak string, e.g. "W 3"
	StreakValue   int       `json:"streak_value"`
	Hour          int       `json:"hour"`
	DayCode       int       `json:"day_code"` // 0=Mon .. 6=Sun
}

// Won reports whether the team won this game.
func (m MatchRecord) Won() bool {
	return m.Result == "W"
}

// PointDiff is the scored-minus-allowed margin for this game.
func (m MatchRecord) PointDiff() int {
	return m.TeamScore - m.OpponentScore
}

// PlayerSeasonRecord is one player's season totals for a team.
// Immutable once loaded.
type PlayerSeasonRecord struct {
	Player            string   `json:"player"`
	Team              string   `json:"team"` // abbreviation
	Season            int      `json:"season"`
	MinutesPlayed     float64  `json:"mp"`
	FieldGoals        float64  `json:"fg"`
	FieldGoalAttempts float64  `json:"fga"`
	ThreePointers     float64  `json:"three_p"`
	ThreePointAtt     float64  `json:"three_pa"`
	FreeThrows        float64  `json:"ft"`
	FreeThrowAtt      float64  `json:"fta"`
	Rebounds          float64  `json:"trb"`
	Assists           float64  `json:"ast"`
	Steals            float64  `json:"stl"`
	Blocks            float64  `json:"blk"`
	Turnovers         float64  `json:"tov"`
	PersonalFouls     float64  `json:"pf"`
	Points            float64  `json:"pts"`
	HeightInches      int      `json:"height_inches"`
	Experience        *float64 `json:"experience,omitempty"` // years; nil when unknown
}
