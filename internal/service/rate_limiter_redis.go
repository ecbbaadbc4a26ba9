package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// slidingWindowScript mantiene un sorted set por IP con un miembro por predicción aceptada
// (score = ms). Devuelve 1 si la predicción entra en la ventana, 0 si no.
const slidingWindowScript = `
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", now - window)
if redis.call("ZCARD", KEYS[1]) >= tonumber(ARGV[3]) then
  return 0
end
redis.call("ZADD", KEYS[1], now, ARGV[4])
redis.call("PEXPIRE", KEYS[1], window)
return 1
`

const (
	predictRateKeyPrefix = "house-price:predict:"
	redisLimiterTimeout  = 300 * time.Millisecond
)

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter comparte la ventana de predicciones entre réplicas de la API.
type redisRateLimiter struct {
	client redisEvaler
	logger *zap.Logger
	window time.Duration
	max    int
	now    func() time.Time
}

// NewRedisRateLimiter usa la misma ventana deslizante que el limiter en memoria, guardada en Redis.
func NewRedisRateLimiter(client *redis.Client, logger *zap.Logger, window time.Duration, max int) PredictRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisRateLimiter{
		client: client,
		logger: logger,
		window: window,
		max:    max,
		now:    time.Now,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, clientIP string) bool {
	ctx, cancel := context.WithTimeout(ctx, redisLimiterTimeout)
	defer cancel()

	allowed, err := l.client.Eval(ctx, slidingWindowScript,
		[]string{predictRateKeyPrefix + clientIP},
		l.now().UnixMilli(), l.window.Milliseconds(), l.max, uuid.NewString(),
	).Int()
	if err != nil {
		// Redis caído: la predicción pasa.
		l.logger.Warn("predict rate limiter unavailable", zap.String("client_ip", clientIP), zap.Error(err))
		return true
	}
	return allowed == 1
}
