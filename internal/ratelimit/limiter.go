// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

// refill is computed in milliseconds from the server clock, tokens are
// returned as a string since lua numbers are truncated to integers
const tokenBucketScript = `
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl = tonumber(ARGV[3])

local nowData = redis.call("TIME")
local now = (nowData[1] * 1000) + math.floor(nowData[2] / 1000)

local data = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(data[1])
local ts = tonumber(data[2])

if tokens == nil then
  tokens = burst
else
  local delta = now - ts
  if delta < 0 then
    delta = 0
  end
  tokens = math.min(burst, tokens + (delta / 1000) * rate)
end

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call("HSET", KEYS[1], "tokens", tokens, "ts", now)
redis.call("PEXPIRE", KEYS[1], ttl)

return {allowed, tostring(tokens)}
`

var errInvalidResponse = errors.New("invalid rate limit script response")

// Limiter is a per-key token bucket kept in redis
type Limiter struct {
	client *redis.Client
	script *redis.Script

	rate   float64
	burst  int
	prefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "ratelimit.Limiter.Allow")
	defer span.End()

	key = strings.TrimSpace(key)
	if key == "" {
		return false, errors.New("rate limiter key is empty")
	}

	res, err := l.script.Run(
		ctx,
		l.client,
		[]string{l.prefix + key},
		l.rate,
		l.burst,
		bucketTTL(l.rate, l.burst).Milliseconds(),
	).Slice()
	if err != nil {
		return false, fmt.Errorf("rate limiter script failed: %w", err)
	}

	allowed, remaining, err := parseResult(res)
	if err != nil {
		return false, err
	}

	if !allowed {
		l.logger.Debugf("rate limit hit for %s, %.2f tokens left", key, remaining)
	}

	return allowed, nil
}

func (l *Limiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *Limiter) Close() error {
	return l.client.Close()
}

func parseResult(res []any) (bool, float64, error) {
	if len(res) < 2 {
		return false, 0, errInvalidResponse
	}

	allowed, ok := res[0].(int64)
	if !ok {
		return false, 0, errInvalidResponse
	}

	var remaining float64
	switch v := res[1].(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return false, 0, errInvalidResponse
		}
		remaining = f
	case int64:
		remaining = float64(v)
	default:
		return false, 0, errInvalidResponse
	}

	return allowed == 1, remaining, nil
}

// bucketTTL keeps an idle bucket around for twice the time it takes to refill
func bucketTTL(rate float64, burst int) time.Duration {
	if rate <= 0 || burst <= 0 {
		return time.Second
	}

	seconds := math.Ceil((float64(burst) / rate) * 2)
	if seconds < 1 {
		seconds = 1
	}

	return time.Duration(seconds) * time.Second
}

func NewLimiter(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Limiter, error) {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}

	if cfg.Rate <= 0 || cfg.Burst <= 0 {
		return nil, errors.New("rate limit rate and burst must be positive")
	}

	l := new(Limiter)
	l.client = redis.NewClient(
		&redis.Options{
			Addr:        addr,
			Password:    strings.TrimSpace(cfg.RedisPassword),
			DB:          cfg.RedisDB,
			DialTimeout: cfg.DialTimeout,
		},
	)
	l.script = redis.NewScript(tokenBucketScript)
	l.rate = cfg.Rate
	l.burst = cfg.Burst
	l.prefix = cfg.KeyPrefix

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l, nil
}
