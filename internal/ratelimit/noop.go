// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
)

// NoopLimiter allows every request, used when rate limiting is disabled
type NoopLimiter struct{}

func (n *NoopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func NewNoopLimiter() *NoopLimiter {
	return new(NoopLimiter)
}

func (n *NoopLimiter) Ping(ctx context.Context) error {
	return nil
}
