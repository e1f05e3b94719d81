// Package dataset holds the load-once tables the prediction pipeline reads.
// Both tables are built at process start from an external source (CSV files
// by default, Postgres when configured) and are never mutated afterwards.
package dataset

import (
	"github.com/hoopsight/predictor-api/internal/models"
)

// Dataset is the immutable in-memory copy of the match-history and
// player-season tables. It is constructed once at startup and passed into
// the logic services; no ambient global state.
type Dataset struct {
	Matches []models.MatchRecord
	Players []models.PlayerSeasonRecord
}

// MatchesFor returns the match history for one team, in load order.
func (d *Dataset) MatchesFor(abbr string) []models.MatchRecord {
	var out []models.MatchRecord
	for _, m := range d.Matches {
		if m.Team == abbr {
			out = append(out, m)
		}
	}
	return out
}

// PlayersFor returns the player-season rows for one (team, season).
func (d *Dataset) PlayersFor(abbr string, season int) []models.PlayerSeasonRecord {
	var out []models.PlayerSeasonRecord
	for _, p := range d.Players {
		if p.Team == abbr && p.Season == season {
			out = append(out, p)
		}
	}
	return out
}
