package logic

import (
	"fmt"

	"github.com/hoopsight/predictor-api/internal/models"
)

// Venue values accepted from callers.
const (
	VenueHome = "Home"
	VenueAway = "Away"
)

// Training-time encoding conventions. The loaded model artifact records the
// conventions it was trained with; startup validates these constants against
// it and refuses to serve on a mismatch.
const (
	// VenueHomeCode is the binary venue encoding: Home=1, Away=0.
	VenueHomeCode = 1
	VenueAwayCode = 0
	// HomePrefixRule records that the home_/away_ stat prefixes follow the
	// venue toggle: whichever side plays at home gets the home_ prefix,
	// regardless of which team the user selected.
	HomePrefixRule = "venue"
)

// baseFeatures are the directly-encoded and rolling-form feature names, in
// assembly order. The remaining names are the prefixed stat columns plus
// the derived point_diff_player_avg.
var baseFeatures = []string{
	"venue_code", "opp_code", "hour", "day_code", "streak_value",
	"point_diff_rolling", "Tm_rolling", "Opp_rolling", "win_rolling",
}

type featureService struct {
	stats TeamStatsService
}

func NewFeatureService(stats TeamStatsService) FeatureService {
	return &featureService{stats: stats}
}

// Assemble builds the model input vector for one matchup. Pure function of
// the request and the two static tables; no side effects.
func (s *featureService) Assemble(req models.PredictRequest) (*models.FeatureVector, error) {
	yourAbbr, err := models.AbbrFor(req.Team)
	if err != nil {
		return nil, err
	}
	oppAbbr, err := models.AbbrFor(req.Opponent)
	if err != nil {
		return nil, err
	}
	oppCode, err := models.TeamCode(oppAbbr)
	if err != nil {
		return nil, err
	}

	var venueCode float64
	switch req.Venue {
	case VenueHome:
		venueCode = VenueHomeCode
	case VenueAway:
		venueCode = VenueAwayCode
	default:
		return nil, fmt.Errorf("invalid venue %q", req.Venue)
	}

	form, err := s.stats.RecentForm(yourAbbr)
	if err != nil {
		return nil, err
	}
	yourStats, err := s.stats.SeasonAverages(yourAbbr, req.Season)
	if err != nil {
		return nil, err
	}
	oppStats, err := s.stats.SeasonAverages(oppAbbr, req.Season)
	if err != nil {
		return nil, err
	}

	// The side playing at home gets the home_ prefix. With venue=Away the
	// opponent occupies the home slot, so the prefixes swap.
	homeStats, awayStats := yourStats, oppStats
	if req.Venue == VenueAway {
		homeStats, awayStats = oppStats, yourStats
	}

	vec := models.NewFeatureVector()
	vec.Set("venue_code", venueCode)
	vec.Set("opp_code", float64(oppCode))
	vec.Set("hour", float64(req.Hour))
	vec.Set("day_code", float64(req.DayCode))
	vec.Set("streak_value", float64(req.Streak))
	vec.Set("point_diff_rolling", form.PointDiff)
	vec.Set("Tm_rolling", form.Scored)
	vec.Set("Opp_rolling", form.Allowed)
	vec.Set("win_rolling", form.WinRate)

	setPrefixed(vec, "home_", homeStats)
	setPrefixed(vec, "away_", awayStats)
	vec.Set("point_diff_player_avg", homeStats.PTS-awayStats.PTS)

	return vec, nil
}

func setPrefixed(vec *models.FeatureVector, prefix string, stats models.StatLine) {
	values := stats.Values()
	for i, col := range models.StatColumns {
		vec.Set(prefix+col, values[i])
	}
}

// FeatureNames lists the names Assemble produces, in assembly order.
func (s *featureService) FeatureNames() []string {
	names := make([]string, 0, len(baseFeatures)+2*len(models.StatColumns)+1)
	names = append(names, baseFeatures...)
	for _, col := range models.StatColumns {
		names = append(names, "home_"+col)
	}
	for _, col := range models.StatColumns {
		names = append(names, "away_"+col)
	}
	return append(names, "point_diff_player_avg")
}
