package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/hoopsight/predictor-api/internal/classifier"
	"github.com/hoopsight/predictor-api/internal/models"
)

const cacheKeyPrefix = "predict:"

// PredictMatch predicts the outcome of a matchup from the trained model
// @Summary Predict Match Outcome
// @Description Derives the feature vector for the given matchup and returns the model's win/loss prediction with class probabilities
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Matchup"
// @Success 200 {object} models.MatchPrediction
// @Failure 400 {object} map[string]string "Validation or unknown team"
// @Failure 422 {object} map[string]string "Aggregates undefined for this matchup"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /predictions/match [post]
func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req models.PredictRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Season == 0 {
		req.Season = h.defaultSeason
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// Cache lookup keyed by the normalized request
	cacheKey := ""
	if h.redis != nil {
		normalized, _ := json.Marshal(req)
		cacheKey = cacheKeyPrefix + hashRequest(normalized)
		if cached, err := h.redis.Get(r.Context(), cacheKey).Bytes(); err == nil {
			cacheHits.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		cacheMisses.Inc()
	}

	start := time.Now()
	pred, err := h.prediction.PredictMatch(r.Context(), req)
	predictionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.predictError(w, req, err)
		return
	}

	// Undefined aggregates (no player or match data for a side) surface as
	// NaN probabilities. Report the failed prediction rather than patching.
	if math.IsNaN(pred.Probabilities.Win) || math.IsNaN(pred.Probabilities.Loss) {
		predictionsFailed.WithLabelValues("undefined_aggregate").Inc()
		h.errorResponse(w, http.StatusUnprocessableEntity,
			"Prediction undefined: no player or match data for this matchup/season")
		return
	}

	predictionsServed.WithLabelValues(pred.Predicted).Inc()

	if h.redis != nil && cacheKey != "" {
		if payload, err := json.Marshal(pred); err == nil {
			if err := h.redis.Set(r.Context(), cacheKey, payload, h.cacheTTL).Err(); err != nil {
				h.logger.Warnw("Failed to cache prediction", "error", err, "key", cacheKey)
			}
		}
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

func (h *Handler) predictError(w http.ResponseWriter, req models.PredictRequest, err error) {
	var schemaErr *models.SchemaMismatchError
	var inputErr *classifier.ModelInputError
	switch {
	case errors.Is(err, models.ErrUnknownTeam):
		predictionsFailed.WithLabelValues("unknown_team").Inc()
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &schemaErr):
		predictionsFailed.WithLabelValues("schema_mismatch").Inc()
		h.logger.Errorw("Feature schema mismatch", "error", err, "team", req.Team, "opponent", req.Opponent)
		h.errorResponse(w, http.StatusInternalServerError, "Prediction failed: feature schema mismatch")
	case errors.As(err, &inputErr):
		predictionsFailed.WithLabelValues("model_input").Inc()
		h.logger.Errorw("Model rejected input row", "error", err, "team", req.Team, "opponent", req.Opponent)
		h.errorResponse(w, http.StatusInternalServerError, "Prediction failed: "+err.Error())
	default:
		predictionsFailed.WithLabelValues("internal").Inc()
		h.logger.Errorw("Failed to predict match", "error", err, "team", req.Team, "opponent", req.Opponent)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to predict match")
	}
}
