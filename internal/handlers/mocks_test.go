package handlers

import (
	"context"

	"github.com/hoopsight/predictor-api/internal/models"
)

// MockTeamStatsService
type MockTeamStatsService struct {
	SeasonAveragesFunc func(abbr string, season int) (models.StatLine, error)
	RecentFormFunc     func(abbr string) (models.RecentForm, error)
}

func (m *MockTeamStatsService) SeasonAverages(abbr string, season int) (models.StatLine, error) {
	if m.SeasonAveragesFunc != nil {
		return m.SeasonAveragesFunc(abbr, season)
	}
	return models.StatLine{MP: 240}, nil
}

func (m *MockTeamStatsService) RecentForm(abbr string) (models.RecentForm, error) {
	if m.RecentFormFunc != nil {
		return m.RecentFormFunc(abbr)
	}
	return models.RecentForm{WinRate: 0.5, Games: 4}, nil
}

// MockPredictionService
type MockPredictionService struct {
	PredictMatchFunc func(ctx context.Context, req models.PredictRequest) (*models.MatchPrediction, error)
}

func (m *MockPredictionService) PredictMatch(ctx context.Context, req models.PredictRequest) (*models.MatchPrediction, error) {
	if m.PredictMatchFunc != nil {
		return m.PredictMatchFunc(ctx, req)
	}
	return &models.MatchPrediction{
		Team:      req.Team,
		Opponent:  req.Opponent,
		Venue:     req.Venue,
		Season:    req.Season,
		Predicted: "Win",
		Class:     1,
		Probabilities: models.ClassProbabilities{
			Loss: 0.35,
			Win:  0.65,
		},
	}, nil
}
