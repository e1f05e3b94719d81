package models

import "time"

// PredictRequest is the user-facing input for a match prediction.
// Teams are selected by full name; the streak is a signed integer where
// negative values mean a losing streak. The streak passes through to the
// feature vector unchanged.
type PredictRequest struct {
	Team     string `json:"team" validate:"required"`
	Opponent string `json:"opponent" validate:"required"`
	Venue    string `json:"venue" validate:"required,oneof=Home Away"`
	Hour     int    `json:"hour" validate:"gte=0,lte=23"`
	DayCode  int    `json:"day_code" validate:"gte=0,lte=6"` // 0=Mon .. 6=Sun
	Streak   int    `json:"streak"`
	Season   int    `json:"season,omitempty"` // defaults to the configured season
}

// ClassProbabilities holds the two class probabilities of the classifier.
type ClassProbabilities struct {
	Loss float64 `json:"loss"`
	Win  float64 `json:"win"`
}

// MatchPrediction is the outcome of a prediction request.
type MatchPrediction struct {
	Team          string             `json:"team"`
	Opponent      string             `json:"opponent"`
	Venue         string             `json:"venue"`
	Season        int                `json:"season"`
	Predicted     string             `json:"predicted"` // "Win" or "Loss"
	Class         int                `json:"class"`     // 1=win, 0=loss
	Probabilities ClassProbabilities `json:"probabilities"`
	ModelVersion  string             `json:"model_version,omitempty"`
	GeneratedAt   time.Time          `json:"generated_at"`
}
