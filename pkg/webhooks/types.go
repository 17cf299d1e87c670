// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationIdentity is the identity payload posted by the identity
// provider after a successful sign-up.
type RegistrationIdentity struct {
	ID     string             `json:"id"`
	Traits RegistrationTraits `json:"traits"`
}

type RegistrationTraits struct {
	Email string `json:"email"`
}
