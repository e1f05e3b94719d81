package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hoopsight/predictor-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Redis    *redis.Client // optional; nil disables the prediction cache
	CacheTTL time.Duration
	Logger   *zap.Logger
	// Services
	TeamStats  logic.TeamStatsService
	Prediction logic.PredictionService
	// Defaults
	DefaultSeason int
}

type Handler struct {
	redis         *redis.Client
	cacheTTL      time.Duration
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	teamStats     logic.TeamStatsService
	prediction    logic.PredictionService
	defaultSeason int
}

func New(cfg Config) *Handler {
	return &Handler{
		redis:         cfg.Redis,
		cacheTTL:      cfg.CacheTTL,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		teamStats:     cfg.TeamStats,
		prediction:    cfg.Prediction,
		defaultSeason: cfg.DefaultSeason,
	}
}
