// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

// Principal is the identity a verified access token acts for
type Principal struct {
	UserID  string
	Subject string
	Scopes  []string
}

type accessTokenClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
	Ext     struct {
		IdentityID string `json:"identity_id"`
	} `json:"ext"`
}

func (c *accessTokenClaims) scopes() []string {
	scopes := strings.Fields(c.Scope)

	for _, s := range c.Scopes {
		if !slices.Contains(scopes, s) {
			scopes = append(scopes, s)
		}
	}

	return scopes
}

// userID prefers the identity carried in the session extension, tokens
// minted through a login flow have the OAuth client as subject
func (c *accessTokenClaims) userID() string {
	if c.Ext.IdentityID != "" {
		return c.Ext.IdentityID
	}

	return c.Subject
}

type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	claims := new(accessTokenClaims)
	if err := token.Claims(claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	principal := &Principal{
		UserID:  claims.userID(),
		Subject: claims.Subject,
		Scopes:  claims.scopes(),
	}

	if principal.UserID == "" {
		return nil, fmt.Errorf("unauthorized: token carries no identity")
	}

	if slices.Contains(v.allowedSubjects, principal.Subject) {
		return principal, nil
	}

	if v.requiredScope == "" || slices.Contains(principal.Scopes, v.requiredScope) {
		return principal, nil
	}

	v.logger.Security().AuthzFailure(principal.UserID, "workspace_api_access")
	return nil, fmt.Errorf("unauthorized: missing required scope %q", v.requiredScope)
}

func NewJWTVerifier(
	provider ProviderInterface,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return NewJWTVerifierDirect(
		provider.Verifier(&oidc.Config{SkipClientIDCheck: true}),
		allowedSubjects,
		requiredScope,
		tracer,
		monitor,
		logger,
	)
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.allowedSubjects = allowedSubjects
	v.requiredScope = requiredScope

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
