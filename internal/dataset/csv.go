package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hoopsight/predictor-api/internal/models"
)

// Expected CSV headers. These are the column names of the external export;
// the loader translates the untyped rows into typed records once and fails
// fast on anything malformed.
var (
	matchColumns  = []string{"Team", "Date", "Venue", "Opponent", "Tm", "Opp", "Result", "Streak", "Start (ET)"}
	playerColumns = []string{"Player", "Team", "Season", "MP", "FG", "FGA", "3P", "3PA", "FT", "FTA", "TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS", "Ht", "Exp"}
)

// LoadCSV builds a Dataset from the match-history and player-season CSV
// exports. The two tables load concurrently.
func LoadCSV(ctx context.Context, matchesPath, playersPath string) (*Dataset, error) {
	ds := &Dataset{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := loadMatchesCSV(matchesPath)
		if err != nil {
			return fmt.Errorf("load matches: %w", err)
		}
		ds.Matches = matches
		return nil
	})
	g.Go(func() error {
		players, err := loadPlayersCSV(playersPath)
		if err != nil {
			return fmt.Errorf("load players: %w", err)
		}
		ds.Players = players
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func loadMatchesCSV(path string) ([]models.MatchRecord, error) {
	rows, idx, err := readTable(path, matchColumns)
	if err != nil {
		return nil, err
	}
	matches := make([]models.MatchRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := parseMatchRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		matches = append(matches, rec)
	}
	return matches, nil
}

func loadPlayersCSV(path string) ([]models.PlayerSeasonRecord, error) {
	rows, idx, err := readTable(path, playerColumns)
	if err != nil {
		return nil, err
	}
	players := make([]models.PlayerSeasonRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := parsePlayerRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		players = append(players, rec)
	}
	return players, nil
}

// readTable reads a CSV file and resolves the required column indexes from
// its header. Extra columns (like the pandas index column) are ignored.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}

	idx := make(map[string]int, len(required))
	for col, name := range records[0] {
		idx[strings.TrimSpace(name)] = col
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}
	return records[1:], idx, nil
}

func parseMatchRow(row []string, idx map[string]int) (models.MatchRecord, error) {
	var rec models.MatchRecord

	rec.Team = strings.TrimSpace(row[idx["Team"]])
	rec.Opponent = strings.TrimSpace(row[idx["Opponent"]])
	rec.Venue = strings.TrimSpace(row[idx["Venue"]])
	if rec.Venue != "Home" && rec.Venue != "Away" {
		return rec, fmt.Errorf("invalid venue %q", rec.Venue)
	}
	rec.Result = strings.TrimSpace(row[idx["Result"]])
	if rec.Result != "W" && rec.Result != "L" {
		return rec, fmt.Errorf("invalid result %q", rec.Result)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[idx["Date"]]))
	if err != nil {
		return rec, fmt.Errorf("invalid date: %w", err)
	}
	rec.Date = date
	// time.Weekday starts at Sunday; the model's day code starts at Monday.
	rec.DayCode = (int(date.Weekday()) + 6) % 7

	if rec.TeamScore, err = strconv.Atoi(strings.TrimSpace(row[idx["Tm"]])); err != nil {
		return rec, fmt.Errorf("invalid team score: %w", err)
	}
	if rec.OpponentScore, err = strconv.Atoi(strings.TrimSpace(row[idx["Opp"]])); err != nil {
		return rec, fmt.Errorf("invalid opponent score: %w", err)
	}

	rec.Streak = strings.TrimSpace(row[idx["Streak"]])
	if rec.StreakValue, err = ParseStreak(rec.Streak); err != nil {
		return rec, err
	}
	if rec.Hour, err = ParseStartHour(strings.TrimSpace(row[idx["Start (ET)"]])); err != nil {
		return rec, err
	}
	return rec, nil
}

func parsePlayerRow(row []string, idx map[string]int) (models.PlayerSeasonRecord, error) {
	var rec models.PlayerSeasonRecord
	var err error

	rec.Player = strings.TrimSpace(row[idx["Player"]])
	rec.Team = strings.TrimSpace(row[idx["Team"]])
	if rec.Season, err = strconv.Atoi(strings.TrimSpace(row[idx["Season"]])); err != nil {
		return rec, fmt.Errorf("invalid season: %w", err)
	}

	stats := map[string]*float64{
		"MP": &rec.MinutesPlayed, "FG": &rec.FieldGoals, "FGA": &rec.FieldGoalAttempts,
		"3P": &rec.ThreePointers, "3PA": &rec.ThreePointAtt,
		"FT": &rec.FreeThrows, "FTA": &rec.FreeThrowAtt,
		"TRB": &rec.Rebounds, "AST": &rec.Assists, "STL": &rec.Steals,
		"BLK": &rec.Blocks, "TOV": &rec.Turnovers, "PF": &rec.PersonalFouls,
		"PTS": &rec.Points,
	}
	for col, dst := range stats {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx[col]]), 64)
		if err != nil {
			return rec, fmt.Errorf("invalid %s: %w", col, err)
		}
		*dst = v
	}

	if rec.HeightInches, err = ParseHeight(strings.TrimSpace(row[idx["Ht"]])); err != nil {
		return rec, err
	}
	// Experience is nullable: rookies are exported as "R" and some rows are
	// blank; both become nil rather than zero.
	if exp, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Exp"]]), 64); err == nil {
		rec.Experience = &exp
	}
	return rec, nil
}

// ParseStreak converts a streak string like "W 3" or "L 2" to a signed
// integer (losing streaks are negative).
func ParseStreak(s string) (int, error) {
	var sign int
	switch {
	case strings.HasPrefix(s, "W "):
		sign = 1
	case strings.HasPrefix(s, "L "):
		sign = -1
	default:
		return 0, fmt.Errorf("invalid streak %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[2:]))
	if err != nil {
		return 0, fmt.Errorf("invalid streak %q: %w", s, err)
	}
	return sign * n, nil
}

// ParseStartHour extracts the hour from a start-time string like "7:30p"
// or "19:00": the leading digit run before any separator.
func ParseStartHour(s string) (int, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("invalid start time %q", s)
	}
	return strconv.Atoi(s[:end])
}

// ParseHeight converts a feet-inches string like "6-7" to total inches.
func ParseHeight(s string) (int, error) {
	feet, inches, ok := strings.Cut(s, "-")
	if !ok {
		return 0, fmt.Errorf("invalid height %q", s)
	}
	f, err := strconv.Atoi(feet)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q: %w", s, err)
	}
	i, err := strconv.Atoi(inches)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q: %w", s, err)
	}
	return f*12 + i, nil
}
