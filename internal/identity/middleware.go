// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

// HeaderName is the header the authenticating proxy uses to pass the identity ID
const HeaderName = "X-Authenticated-Identity-Id"

// Middleware trusts the identity asserted by an upstream proxy, it is used
// when JWT verification is disabled.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			m.logger.Debugf("request to %s without %s header", r.URL.Path, HeaderName)
			_ = httptypes.WriteError(w, httptypes.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}
