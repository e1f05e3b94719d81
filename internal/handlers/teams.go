package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoopsight/predictor-api/internal/models"
)

// ListTeams returns the static team table
// @Summary List Teams
// @Description Get the 30 teams with abbreviation, full name, and category code
// @Tags Teams
// @Produce json
// @Success 200 {array} models.TeamInfo
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, models.Teams())
}

// GetTeamForm returns a team's rolling form
// @Summary Team Rolling Form
// @Description Trailing-window averages over the team's most recent games
// @Tags Teams
// @Produce json
// @Param abbr path string true "Team abbreviation"
// @Success 200 {object} models.RecentForm
// @Failure 404 {object} map[string]string "Unknown team"
// @Failure 422 {object} map[string]string "No match history"
// @Router /teams/{abbr}/form [get]
func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	abbr := chi.URLParam(r, "abbr")

	form, err := h.teamStats.RecentForm(abbr)
	if err != nil {
		if errors.Is(err, models.ErrUnknownTeam) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Errorw("Failed to get team form", "error", err, "abbr", abbr)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get team form")
		return
	}
	if math.IsNaN(form.WinRate) {
		h.errorResponse(w, http.StatusUnprocessableEntity, "No match history for team "+abbr)
		return
	}

	h.jsonResponse(w, http.StatusOK, form)
}

// GetTeamStats returns a team's minutes-weighted season aggregate
// @Summary Team Season Averages
// @Description Minutes-weighted box-score averages over the team's top players for a season
// @Tags Teams
// @Produce json
// @Param abbr path string true "Team abbreviation"
// @Param season query int false "Season (defaults to the configured season)"
// @Success 200 {object} models.StatLine
// @Failure 404 {object} map[string]string "Unknown team"
// @Failure 422 {object} map[string]string "No player data"
// @Router /teams/{abbr}/stats [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	abbr := chi.URLParam(r, "abbr")

	season := h.defaultSeason
	if s := r.URL.Query().Get("season"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid season")
			return
		}
		season = parsed
	}

	stats, err := h.teamStats.SeasonAverages(abbr, season)
	if err != nil {
		if errors.Is(err, models.ErrUnknownTeam) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Errorw("Failed to get team stats", "error", err, "abbr", abbr, "season", season)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get team stats")
		return
	}
	if math.IsNaN(stats.MP) {
		h.errorResponse(w, http.StatusUnprocessableEntity,
			"No player data for team "+abbr+" in season "+strconv.Itoa(season))
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}
