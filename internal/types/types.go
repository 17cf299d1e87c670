// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
	"time"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Workspace struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Members   []Member  `json:"members"`
}

// HasMember reports whether userID is already part of the workspace.
func (w *Workspace) HasMember(userID string) bool {
	return slices.ContainsFunc(w.Members, func(m Member) bool { return m.UserID == userID })
}

type Member struct {
	UserID   string    `db:"user_id" json:"user_id"`
	Role     string    `db:"role" json:"role"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}

type UserMembership struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Role        string    `db:"role" json:"role"`
	JoinedAt    time.Time `db:"joined_at" json:"joined_at"`
}

type UserWorkspaces struct {
	UserID             string           `json:"user_id"`
	Memberships        []UserMembership `json:"memberships"`
	CurrentWorkspaceID *string          `json:"current_workspace_id"`
}

// HasMembership reports whether the user belongs to workspaceID.
func (u *UserWorkspaces) HasMembership(workspaceID string) bool {
	return slices.ContainsFunc(u.Memberships, func(m UserMembership) bool { return m.WorkspaceID == workspaceID })
}

// Invite is a shareable code granting membership to a workspace.
// UsedCount always equals len(UsedBy); once MaxUses is reached the invite
// is deactivated.
type Invite struct {
	Code        string    `db:"code"`
	WorkspaceID string    `db:"workspace_id"`
	CreatedBy   string    `db:"created_by"`
	ExpiresAt   time.Time `db:"expires_at"`
	MaxUses     *int      `db:"max_uses"`
	UsedCount   int       `db:"used_count"`
	UsedBy      []string
	Active      bool      `db:"active"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// RedeemedBy reports whether userID already consumed a use of the invite.
func (i *Invite) RedeemedBy(userID string) bool {
	return slices.Contains(i.UsedBy, userID)
}

// InviteValidation is the read-only eligibility verdict of an invite.
type InviteValidation struct {
	Valid       bool       `json:"valid"`
	Reason      string     `json:"reason,omitempty"`
	WorkspaceID string     `json:"workspace_id,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
