// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
)

// DependencyInterface is a backing service the readiness probe pings
type DependencyInterface interface {
	Ping(context.Context) error
}
