package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTeam is returned when a team full name or abbreviation has no
// entry in the static team table.
var ErrUnknownTeam = errors.New("unknown team")

// abbrToFull is the static bijection between the 30 NBA team abbreviations
// and their full names. Category codes are derived from this table, so it
// must match the universe the model was trained on.
var abbrToFull = map[string]string{
	"ATL": "Atlanta Hawks",
	"BOS": "Boston Celtics",
	"BRK": "Brooklyn Nets",
	"CHA": "Charlotte Hornets",
	"CHI": "Chicago Bulls",
	"CLE": "Cleveland Cavaliers",
	"DAL": "Dallas Mavericks",
	"DEN": "Denver Nuggets",
	"DET": "Detroit Pistons",
	"GSW": "Golden State Warriors",
	"HOU": "Houston Rockets",
	"IND": "Indiana Pacers",
	"LAC": "Los Angeles Clippers",
	"LAL": "Los Angeles Lakers",
	"MEM": "Memphis Grizzlies",
	"MIA": "Miami Heat",
	"MIL": "Milwaukee Bucks",
	"MIN": "Minnesota Timberwolves",
	"NOP": "New Orleans Pelicans",
	"NYK": "New York Knicks",
	"OKC": "Oklahoma City Thunder",
	"ORL": "Orlando Magic",
	"PHI": "Philadelphia 76ers",
	"PHX": "Phoenix Suns",
	"POR": "Portland Trail Blazers",
	"SAC": "Sacramento Kings",
	"SAS": "San Antonio Spurs",
	"TOR": "Toronto Raptors",
	"UTA": "Utah Jazz",
	"WAS": "Washington Wizards",
}

var (
	fullToAbbr  map[string]string
	abbrToCode  map[string]int
	sortedAbbrs []string
)

func init() {
	fullToAbbr = make(map[string]string, len(abbrToFull))
	sortedAbbrs = make([]string, 0, len(abbrToFull))
	for abbr, full := range abbrToFull {
		fullToAbbr[full] = abbr
		sortedAbbrs = append(sortedAbbrs, abbr)
	}
	// Codes are assigned by lexicographic order over the full abbreviation
	// universe, fixed at training time. Never rebuild from a filtered subset.
	sort.Strings(sortedAbbrs)
	abbrToCode = make(map[string]int, len(sortedAbbrs))
	for i, abbr := range sortedAbbrs {
		abbrToCode[abbr] = i
	}
}

// TeamCode returns the category code for a team abbreviation.
func TeamCode(abbr string) (int, error) {
	code, ok := abbrToCode[abbr]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTeam, abbr)
	}
	return code, nil
}

// AbbrFor resolves a team full name to its abbreviation.
func AbbrFor(fullName string) (string, error) {
	abbr, ok := fullToAbbr[fullName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, fullName)
	}
	return abbr, nil
}

// FullNameFor resolves a team abbreviation to its full name.
func FullNameFor(abbr string) (string, error) {
	full, ok := abbrToFull[abbr]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, abbr)
	}
	return full, nil
}

// TeamInfo is one entry of the static team table.
type TeamInfo struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	Code         int    `json:"code"`
}

// Teams returns the full team table ordered by abbreviation.
func Teams() []TeamInfo {
	teams := make([]TeamInfo, 0, len(sortedAbbrs))
	for _, abbr := range sortedAbbrs {
		teams = append(teams, TeamInfo{
			Abbreviation: abbr,
			FullName:     abbrToFull[abbr],
			Code:         abbrToCode[abbr],
		})
	}
	return teams
}
