// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
)

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name          string
		ctx           context.Context
		expectedID    string
		expectedFound bool
	}{
		{
			name: "no user in context",
			ctx:  context.Background(),
		},
		{
			name: "empty user id",
			ctx:  WithUserID(context.Background(), ""),
		},
		{
			name:          "user id present",
			ctx:           WithUserID(context.Background(), "user-1"),
			expectedID:    "user-1",
			expectedFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := GetUserID(tt.ctx)

			if id != tt.expectedID {
				t.Errorf("expected id %q, got %q", tt.expectedID, id)
			}
			if found != tt.expectedFound {
				t.Errorf("expected found %v, got %v", tt.expectedFound, found)
			}
		})
	}
}
