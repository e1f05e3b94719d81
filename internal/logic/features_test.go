package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hoopsight/predictor-api/internal/models"
)

// MockTeamStatsService implements TeamStatsService for testing
type MockTeamStatsService struct {
	SeasonAveragesFunc func(abbr string, season int) (models.StatLine, error)
	RecentFormFunc     func(abbr string) (models.RecentForm, error)
}

func (m *MockTeamStatsService) SeasonAverages(abbr string, season int) (models.StatLine, error) {
	if m.SeasonAveragesFunc != nil {
		return m.SeasonAveragesFunc(abbr, season)
	}
	return models.StatLine{}, nil
}

func (m *MockTeamStatsService) RecentForm(abbr string) (models.RecentForm, error) {
	if m.RecentFormFunc != nil {
		return m.RecentFormFunc(abbr)
	}
	return models.RecentForm{}, nil
}

// statsByTeam returns a mock whose season aggregate points identify the team.
func statsByTeam(points map[string]float64) *MockTeamStatsService {
	return &MockTeamStatsService{
		SeasonAveragesFunc: func(abbr string, season int) (models.StatLine, error) {
			return models.StatLine{PTS: points[abbr]}, nil
		},
		RecentFormFunc: func(abbr string) (models.RecentForm, error) {
			return models.RecentForm{PointDiff: 4, Scored: 112, Allowed: 108, WinRate: 0.75}, nil
		},
	}
}

func TestAssembleHomeVenue(t *testing.T) {
	s := NewFeatureService(statsByTeam(map[string]float64{"BOS": 118, "MIA": 104}))

	vec, err := s.Assemble(models.PredictRequest{
		Team:     "Boston Celtics",
		Opponent: "Miami Heat",
		Venue:    "Home",
		Hour:     19,
		DayCode:  2,
		Streak:   2,
		Season:   2024,
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	miaCode, _ := models.TeamCode("MIA")
	checks := map[string]float64{
		"venue_code":            VenueHomeCode,
		"opp_code":              float64(miaCode),
		"hour":                  19,
		"day_code":              2,
		"streak_value":          2,
		"point_diff_rolling":    4,
		"Tm_rolling":            112,
		"Opp_rolling":           108,
		"win_rolling":           0.75,
		"home_PTS":              118, // Boston is home
		"away_PTS":              104,
		"point_diff_player_avg": 14,
	}
	for name, want := range checks {
		got, ok := vec.Get(name)
		if !ok {
			t.Errorf("feature %s missing", name)
			continue
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestAssembleAwayVenueFlipsPrefixes(t *testing.T) {
	s := NewFeatureService(statsByTeam(map[string]float64{"BOS": 118, "MIA": 104}))

	vec, err := s.Assemble(models.PredictRequest{
		Team:     "Boston Celtics",
		Opponent: "Miami Heat",
		Venue:    "Away",
		Hour:     19,
		DayCode:  2,
		Streak:   2,
		Season:   2024,
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	// Miami occupies the home slot now; the prefixes swap, not just the flag.
	if got, _ := vec.Get("venue_code"); got != VenueAwayCode {
		t.Errorf("venue_code = %v, want %v", got, float64(VenueAwayCode))
	}
	if got, _ := vec.Get("home_PTS"); got != 104 {
		t.Errorf("home_PTS = %v, want Miami's 104", got)
	}
	if got, _ := vec.Get("away_PTS"); got != 118 {
		t.Errorf("away_PTS = %v, want Boston's 118", got)
	}
	if got, _ := vec.Get("point_diff_player_avg"); got != -14 {
		t.Errorf("point_diff_player_avg = %v, want -14", got)
	}
}

func TestAssembleStreakPassthrough(t *testing.T) {
	s := NewFeatureService(statsByTeam(nil))

	vec, err := s.Assemble(models.PredictRequest{
		Team:     "Boston Celtics",
		Opponent: "Miami Heat",
		Venue:    "Home",
		Streak:   -10,
		Season:   2024,
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if got, _ := vec.Get("streak_value"); got != -10 {
		t.Errorf("streak_value = %v, want -10 (no clamping)", got)
	}
}

func TestAssembleErrors(t *testing.T) {
	s := NewFeatureService(statsByTeam(nil))

	tests := []struct {
		name string
		req  models.PredictRequest
	}{
		{"Unknown Team", models.PredictRequest{Team: "Seattle SuperSonics", Opponent: "Miami Heat", Venue: "Home"}},
		{"Unknown Opponent", models.PredictRequest{Team: "Boston Celtics", Opponent: "Vancouver Grizzlies", Venue: "Home"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Assemble(tt.req); !errors.Is(err, models.ErrUnknownTeam) {
				t.Errorf("Assemble() error = %v, want ErrUnknownTeam", err)
			}
		})
	}

	if _, err := s.Assemble(models.PredictRequest{
		Team: "Boston Celtics", Opponent: "Miami Heat", Venue: "Neutral",
	}); err == nil {
		t.Error("Assemble() accepted an invalid venue")
	}
}

func TestFeatureNamesMatchAssembledVector(t *testing.T) {
	s := NewFeatureService(statsByTeam(nil))

	vec, err := s.Assemble(models.PredictRequest{
		Team:     "Boston Celtics",
		Opponent: "Miami Heat",
		Venue:    "Home",
		Season:   2024,
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !reflect.DeepEqual(vec.Names(), s.FeatureNames()) {
		t.Errorf("assembled names %v != declared names %v", vec.Names(), s.FeatureNames())
	}

	// 5 base + 4 rolling + 2x14 prefixed stats + 1 derived
	if got, want := vec.Len(), 38; got != want {
		t.Errorf("vector has %d features, want %d", got, want)
	}
}
