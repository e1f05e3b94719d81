package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/hoopsight/predictor-api/internal/models"
)

// LoadPostgres builds a Dataset from the matches and player_seasons tables.
// Used when the scraped tables live in Postgres instead of CSV exports;
// the in-memory result is identical to LoadCSV's.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool) (*Dataset, error) {
	ds := &Dataset{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := loadMatchesPG(ctx, pool)
		if err != nil {
			return fmt.Errorf("load matches: %w", err)
		}
		ds.Matches = matches
		return nil
	})
	g.Go(func() error {
		players, err := loadPlayersPG(ctx, pool)
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

func loadMatchesPG(ctx context.Context, pool *pgxpool.Pool) ([]models.MatchRecord, error) {
	rows, err := pool.Query(ctx, `
		SELECT team, date, venue, opponent, team_score, opponent_score, result, streak, start_time
		FROM matches
		ORDER BY team, date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.MatchRecord
	for rows.Next() {
		var rec models.MatchRecord
		var startTime string
		if err := rows.Scan(&rec.Team, &rec.Date, &rec.Venue, &rec.Opponent,
			&rec.TeamScore, &rec.OpponentScore, &rec.Result, &rec.Streak, &startTime); err != nil {
			return nil, err
		}
		if rec.StreakValue, err = ParseStreak(rec.Streak); err != nil {
			return nil, fmt.Errorf("match %s %s: %w", rec.Team, rec.Date.Format("2006-01-02"), err)
		}
		if rec.Hour, err = ParseStartHour(startTime); err != nil {
			return nil, fmt.Errorf("match %s %s: %w", rec.Team, rec.Date.Format("2006-01-02"), err)
		}
		rec.DayCode = (int(rec.Date.Weekday()) + 6) % 7
		matches = append(matches, rec)
	}
	return matches, rows.Err()
}

func loadPlayersPG(ctx context.Context, pool *pgxpool.Pool) ([]models.PlayerSeasonRecord, error) {
	rows, err := pool.Query(ctx, `
		SELECT player, team, season, mp, fg, fga, three_p, three_pa, ft, fta,
		       trb, ast, stl, blk, tov, pf, pts, height, experience
		FROM player_seasons
		ORDER BY team, season
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.PlayerSeasonRecord
	for rows.Next() {
		var rec models.PlayerSeasonRecord
		var height string
		if err := rows.Scan(&rec.Player, &rec.Team, &rec.Season,
			&rec.MinutesPlayed, &rec.FieldGoals, &rec.FieldGoalAttempts,
			&rec.ThreePointers, &rec.ThreePointAtt, &rec.FreeThrows, &rec.FreeThrowAtt,
			&rec.Rebounds, &rec.Assists, &rec.Steals, &rec.Blocks,
			&rec.Turnovers, &rec.PersonalFouls, &rec.Points,
			&height, &rec.Experience); err != nil {
			return nil, err
		}
		if rec.HeightInches, err = ParseHeight(height); err != nil {
			return nil, fmt.Errorf("player %s (%s %d): %w", rec.Player, rec.Team, rec.Season, err)
		}
		players = append(players, rec)
	}
	return players, rows.Err()
}
