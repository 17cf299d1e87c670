// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid_input")
	ErrInviteNotFound     = errors.New("invite_not_found")
	ErrInviteExpired      = errors.New("invite_expired")
	ErrInviteInactive     = errors.New("invite_inactive")
	ErrInviteExhausted    = errors.New("invite_exhausted")
	ErrAlreadyRedeemed    = errors.New("already_redeemed")
	ErrAlreadyMember      = errors.New("already_member")
	ErrWorkspaceGone      = errors.New("workspace_gone")
	ErrWorkspaceNotFound  = errors.New("workspace_not_found")
	ErrNotAMember         = errors.New("not_a_member")
	ErrConflict           = errors.New("conflict")
	ErrRateLimited        = errors.New("rate_limited")
	ErrStorageUnavailable = errors.New("storage_unavailable")
)

var knownErrors = []error{
	ErrInvalidInput,
	ErrInviteNotFound,
	ErrInviteExpired,
	ErrInviteInactive,
	ErrInviteExhausted,
	ErrAlreadyRedeemed,
	ErrAlreadyMember,
	ErrWorkspaceGone,
	ErrWorkspaceNotFound,
	ErrNotAMember,
	ErrConflict,
	ErrRateLimited,
	ErrStorageUnavailable,
}

// ErrorKind returns the stable kind string of a domain error, or an empty
// string when err does not wrap one.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return ""
}

// IsDomainError reports whether err wraps one of the known domain errors.
func IsDomainError(err error) bool {
	return ErrorKind(err) != ""
}
