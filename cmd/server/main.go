package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hoopsight/predictor-api/internal/classifier"
	"github.com/hoopsight/predictor-api/internal/config"
	"github.com/hoopsight/predictor-api/internal/dataset"
	"github.com/hoopsight/predictor-api/internal/handlers"
	"github.com/hoopsight/predictor-api/internal/logic"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the static tables once; they stay read-only for the process
	// lifetime. Postgres when configured, CSV exports otherwise.
	var data *dataset.Dataset
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			sugar.Fatalw("Failed to connect to Postgres", "error", err)
		}
		defer pool.Close()
		if data, err = dataset.LoadPostgres(ctx, pool); err != nil {
			sugar.Fatalw("Failed to load dataset from Postgres", "error", err)
		}
	} else {
		if data, err = dataset.LoadCSV(ctx, cfg.MatchesCSV, cfg.PlayersCSV); err != nil {
			sugar.Fatalw("Failed to load dataset from CSV", "error", err)
		}
	}
	sugar.Infow("Dataset loaded", "matches", len(data.Matches), "players", len(data.Players))

	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		sugar.Fatalw("Failed to load model artifact", "error", err, "path", cfg.ModelPath)
	}

	teamStats := logic.NewTeamStatsService(data, logic.Options{
		TopPlayers:   cfg.TopPlayers,
		FormWindow:   cfg.FormWindow,
		FormFallback: cfg.AllowFormFallback,
	})
	features := logic.NewFeatureService(teamStats)

	// Fail fast if the assembler and the model disagree on the feature
	// schema or the training-time encoding conventions.
	if err := model.ValidateSchema(features.FeatureNames()); err != nil {
		sugar.Fatalw("Model schema validation failed", "error", err)
	}
	if err := model.ValidateConventions(logic.VenueHomeCode, logic.HomePrefixRule); err != nil {
		sugar.Fatalw("Model convention validation failed", "error", err)
	}
	sugar.Infow("Model loaded", "version", model.Version, "features", len(model.FeatureNames))

	prediction := logic.NewPredictionService(features, model)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid Redis URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	h := handlers.New(handlers.Config{
		Redis:         redisClient,
		CacheTTL:      cfg.CacheTTL,
		Logger:        logger,
		TeamStats:     teamStats,
		Prediction:    prediction,
		DefaultSeason: cfg.DefaultSeason,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", h.Routes(cfg.AllowedOrigins))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		sugar.Infow("Starting HTTP server", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Errorw("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	sugar.Info("Server stopped")
}
