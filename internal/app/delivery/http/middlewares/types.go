package middlewares

import (
	"time"

	"vitalab-service/internal/app/config"
	"vitalab-service/internal/app/contracts"

	"go.uber.org/zap"
)

// Middlewares bundles the cross-cutting HTTP concerns: login-session
// authentication, admin API key checks, request logging and rate limiting.
type Middlewares struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	RateLimiter     *RateLimiter
}

func NewMiddlewares(log *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             log,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		RateLimiter: NewRateLimiter(
			internalConfig.App.SessionMaxRequestsPerSecond,
			time.Second,
			time.Duration(internalConfig.App.SessionBlockTimeInMinutes)*time.Minute,
		),
	}
}
