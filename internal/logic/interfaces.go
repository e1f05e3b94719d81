package logic

import (
	"context"

	"github.com/hoopsight/predictor-api/internal/models"
)

// TeamStatsService derives per-team statistics from the load-once tables.
type TeamStatsService interface {
	// SeasonAverages returns the minutes-weighted box-score aggregate for a
	// (team, season), restricted to the top players by minutes. Every value
	// is NaN when no rows match.
	SeasonAverages(abbr string, season int) (models.StatLine, error)
	// RecentForm returns trailing-window means over the team's most recent
	// games. Every value is NaN when the team has no history and fallback
	// mode is off.
	RecentForm(abbr string) (models.RecentForm, error)
}

// FeatureService assembles the model input row for a prediction request.
type FeatureService interface {
	Assemble(req models.PredictRequest) (*models.FeatureVector, error)
	// FeatureNames lists the feature names the assembler produces,
	// in assembly order. Used for fail-fast schema validation at startup.
	FeatureNames() []string
}

// PredictionService runs the full pipeline: assemble, reindex to the
// model's schema, and invoke the classifier.
type PredictionService interface {
	PredictMatch(ctx context.Context, req models.PredictRequest) (*models.MatchPrediction, error)
}
