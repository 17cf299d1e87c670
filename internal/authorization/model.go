// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0AuthzModel = `
model
  schema 1.1

type user

type workspace
  relations
    define owner: [user]
    define member: [user] or owner
    define can_invite: owner
    define can_view: member
`

var models = map[string]string{
	"v0": v0AuthzModel,
}

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel returns the parsed model for the provider version, nil if the
// version is unknown or the definition does not parse
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[a.apiVersion]
	if !ok {
		return nil
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.apiVersion = apiVersion

	return a
}
