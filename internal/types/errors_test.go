// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "plain", err: ErrInviteExpired, expected: "invite_expired"},
		{name: "wrapped", err: fmt.Errorf("redeem: %w", ErrConflict), expected: "conflict"},
		{name: "unknown", err: errors.New("boom"), expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if kind := ErrorKind(test.err); kind != test.expected {
				t.Errorf("expected kind %q, got %q", test.expected, kind)
			}
			if IsDomainError(test.err) != (test.expected != "") {
				t.Errorf("unexpected IsDomainError result for %v", test.err)
			}
		})
	}
}

func TestWorkspace_HasMember(t *testing.T) {
	ws := &Workspace{Members: []Member{{UserID: "a"}, {UserID: "b"}}}

	if !ws.HasMember("b") {
		t.Errorf("expected b to be a member")
	}
	if ws.HasMember("c") {
		t.Errorf("expected c not to be a member")
	}
}

func TestUserWorkspaces_HasMembership(t *testing.T) {
	uw := &UserWorkspaces{Memberships: []UserMembership{{WorkspaceID: "ws-1"}}}

	if !uw.HasMembership("ws-1") {
		t.Errorf("expected membership of ws-1")
	}
	if uw.HasMembership("ws-2") {
		t.Errorf("expected no membership of ws-2")
	}
}
