package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Data sources
	MatchesCSV  string
	PlayersCSV  string
	PostgresURL string // optional; when set, tables load from Postgres instead of CSV
	RedisURL    string // optional; when set, prediction responses are cached

	// Model artifact
	ModelPath string

	// Pipeline
	TopPlayers        int  // roster cutoff for minutes-weighted aggregates
	FormWindow        int  // trailing games for rolling form
	DefaultSeason     int  // season used when a request omits one
	AllowFormFallback bool // substitute placeholder form for teams with no history

	// Cache
	CacheTTL time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		MatchesCSV:  getEnv("MATCHES_CSV", "data/matches.csv"),
		PlayersCSV:  getEnv("PLAYERS_CSV", "data/players.csv"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		ModelPath: getEnv("MODEL_PATH", "model.json"),

		TopPlayers:        getEnvInt("TOP_PLAYERS", 8),
		FormWindow:        getEnvInt("FORM_WINDOW", 4),
		DefaultSeason:     getEnvInt("DEFAULT_SEASON", 2024),
		AllowFormFallback: getEnvBool("ALLOW_FORM_FALLBACK", false),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
