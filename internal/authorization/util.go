// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"

	CAN_INVITE_PERMISSION = "can_invite"
	CAN_VIEW_PERMISSION   = "can_view"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func WorkspaceTuple(workspaceId string) string {
	return "workspace:" + workspaceId
}
