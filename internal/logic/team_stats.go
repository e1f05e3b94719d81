package logic

import (
	"math"
	"sort"

	"github.com/hoopsight/predictor-api/internal/dataset"
	"github.com/hoopsight/predictor-api/internal/models"
)

type teamStatsService struct {
	data         *dataset.Dataset
	topPlayers   int
	formWindow   int
	formFallback bool
}

// Options configures the stats service's window sizes and fallback mode.
type Options struct {
	TopPlayers   int  // roster cutoff for weighted aggregates (default 8)
	FormWindow   int  // trailing games for rolling form (default 4)
	FormFallback bool // substitute placeholder form when history is empty
}

func NewTeamStatsService(data *dataset.Dataset, opts Options) TeamStatsService {
	if opts.TopPlayers <= 0 {
		opts.TopPlayers = 8
	}
	if opts.FormWindow <= 0 {
		opts.FormWindow = 4
	}
	return &teamStatsService{
		data:         data,
		topPlayers:   opts.TopPlayers,
		formWindow:   opts.FormWindow,
		formFallback: opts.FormFallback,
	}
}

// SeasonAverages computes the minutes-weighted average of each tracked stat
// over the team's top players by minutes. Each player's weight is their
// share of the selected group's total minutes, so weights sum to 1. With no
// matching rows (or zero total minutes) every stat is NaN; the degenerate
// case propagates instead of being coerced to zero.
func (s *teamStatsService) SeasonAverages(abbr string, season int) (models.StatLine, error) {
	if _, err := models.TeamCode(abbr); err != nil {
		return models.StatLine{}, err
	}

	roster := s.data.PlayersFor(abbr, season)
	sort.Slice(roster, func(i, j int) bool {
		return roster[i].MinutesPlayed > roster[j].MinutesPlayed
	})
	if len(roster) > s.topPlayers {
		roster = roster[:s.topPlayers]
	}

	var totalMinutes float64
	for _, p := range roster {
		totalMinutes += p.MinutesPlayed
	}
	if len(roster) == 0 || totalMinutes == 0 {
		return nanStatLine(), nil
	}

	var agg models.StatLine
	for _, p := range roster {
		w := p.MinutesPlayed / totalMinutes
		agg.MP += w * p.MinutesPlayed
		agg.FG += w * p.FieldGoals
		agg.FGA += w * p.FieldGoalAttempts
		agg.P3 += w * p.ThreePointers
		agg.PA3 += w * p.ThreePointAtt
		agg.FT += w * p.FreeThrows
		agg.FTA += w * p.FreeThrowAtt
		agg.TRB += w * p.Rebounds
		agg.AST += w * p.Assists
		agg.STL += w * p.Steals
		agg.BLK += w * p.Blocks
		agg.TOV += w * p.Turnovers
		agg.PF += w * p.PersonalFouls
		agg.PTS += w * p.Points
	}
	return agg, nil
}

func nanStatLine() models.StatLine {
	nan := math.NaN()
	return models.StatLine{
		MP: nan, FG: nan, FGA: nan, P3: nan, PA3: nan, FT: nan, FTA: nan,
		TRB: nan, AST: nan, STL: nan, BLK: nan, TOV: nan, PF: nan, PTS: nan,
	}
}
