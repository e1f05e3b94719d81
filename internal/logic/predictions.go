package logic

import (
	"context"
	"time"

	"github.com/hoopsight/predictor-api/internal/classifier"
	"github.com/hoopsight/predictor-api/internal/models"
)

type predictionService struct {
	features FeatureService
	model    *classifier.Model
}

func NewPredictionService(features FeatureService, model *classifier.Model) PredictionService {
	return &predictionService{features: features, model: model}
}

// PredictMatch runs one prediction: assemble the feature vector, reorder it
// to the model's declared schema, and evaluate the classifier. NaN
// aggregates (teams with no data) flow through to the probabilities; the
// caller decides how to surface the degenerate case.
func (s *predictionService) PredictMatch(ctx context.Context, req models.PredictRequest) (*models.MatchPrediction, error) {
	vec, err := s.features.Assemble(req)
	if err != nil {
		return nil, err
	}
	row, err := vec.Reindex(s.model.FeatureNames)
	if err != nil {
		return nil, err
	}

	probs, err := s.model.Proba(row)
	if err != nil {
		return nil, err
	}
	class, err := s.model.Predict(row)
	if err != nil {
		return nil, err
	}

	label := "Loss"
	if class == 1 {
		label = "Win"
	}
	return &models.MatchPrediction{
		Team:      req.Team,
		Opponent:  req.Opponent,
		Venue:     req.Venue,
		Season:    req.Season,
		Predicted: label,
		Class:     class,
		Probabilities: models.ClassProbabilities{
			Loss: probs[0],
			Win:  probs[1],
		},
		ModelVersion: s.model.Version,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
