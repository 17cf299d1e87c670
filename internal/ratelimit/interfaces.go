// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
)

type LimiterInterface interface {
	// Allow takes one token from the bucket identified by key
	Allow(ctx context.Context, key string) (bool, error)
}
