// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthzFailure   = "authz_fail"
	eventAuthzSuccess   = "authz_success"
	eventInviteRedeemed = "invite_redeemed"
	eventInviteRevoked  = "invite_revoked"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"user not authorized",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzSuccess(userID, resource string) {
	s.l.Info(
		"user authorized",
		zap.String("event", eventAuthzSuccess+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) InviteRedeemed(userID, workspaceID string) {
	s.l.Info(
		"invite redeemed",
		zap.String("event", eventInviteRedeemed+":"+userID+","+workspaceID),
		zap.String("user_id", userID),
		zap.String("workspace_id", workspaceID),
	)
}

func (s *SecurityLogger) InviteRevoked(userID, code string) {
	s.l.Info(
		"invite revoked",
		zap.String("event", eventInviteRevoked+":"+userID),
		zap.String("user_id", userID),
		zap.String("invite", code),
	)
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
