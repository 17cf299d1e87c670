// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"
)

func TestAuthorizationModelProvider_GetModel(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()
	if model == nil {
		t.Fatal("expected v0 model to parse")
	}

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema 1.1, got %s", model.SchemaVersion)
	}

	relations := map[string]bool{}
	for _, td := range model.TypeDefinitions {
		if td.Type != "workspace" || td.Relations == nil {
			continue
		}
		for name := range *td.Relations {
			relations[name] = true
		}
	}

	for _, r := range []string{OWNER_RELATION, MEMBER_RELATION, CAN_INVITE_PERMISSION, CAN_VIEW_PERMISSION} {
		if !relations[r] {
			t.Errorf("expected workspace relation %s in model", r)
		}
	}

	if NewAuthorizationModelProvider("v9").GetModel() != nil {
		t.Error("expected unknown version to return nil")
	}
}
