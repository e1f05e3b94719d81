package logic

import (
	"math"
	"sort"

	"github.com/hoopsight/predictor-api/internal/models"
)

// Placeholder form used only in explicit fallback mode for teams with no
// match history: neutral margin, league-typical scoring, even win rate.
var fallbackForm = models.RecentForm{
	PointDiff: 0,
	Scored:    100,
	Allowed:   100,
	WinRate:   0.5,
}

// RecentForm computes plain means over the team's trailing window of games
// (most recent by date; fewer when history is shorter). Short-term momentum
// the season aggregates don't track: point differential, points scored and
// allowed, and win rate. An empty history yields all-NaN form unless
// fallback mode is enabled.
func (s *teamStatsService) RecentForm(abbr string) (models.RecentForm, error) {
	if _, err := models.TeamCode(abbr); err != nil {
		return models.RecentForm{}, err
	}

	games := s.data.MatchesFor(abbr)
	sort.Slice(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})
	if len(games) > s.formWindow {
		games = games[len(games)-s.formWindow:]
	}

	if len(games) == 0 {
		if s.formFallback {
			return fallbackForm, nil
		}
		nan := math.NaN()
		return models.RecentForm{PointDiff: nan, Scored: nan, Allowed: nan, WinRate: nan}, nil
	}

	var form models.RecentForm
	for _, g := range games {
		form.PointDiff += float64(g.PointDiff())
		form.Scored += float64(g.TeamScore)
		form.Allowed += float64(g.OpponentScore)
		if g.Won() {
			form.WinRate++
		}
	}
	n := float64(len(games))
	form.PointDiff /= n
	form.Scored /= n
	form.Allowed /= n
	form.WinRate /= n
	form.Games = len(games)
	return form, nil
}
