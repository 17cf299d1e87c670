// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

// checkEligibility is the predicate shared by validation and redemption.
// An invite deactivated because its cap was reached reports exhaustion,
// one deactivated by revocation reports inactive.
func checkEligibility(invite *types.Invite, now time.Time) error {
	capReached := invite.MaxUses != nil && invite.UsedCount >= *invite.MaxUses

	switch {
	case !invite.Active && capReached:
		return types.ErrInviteExhausted
	case !invite.Active:
		return types.ErrInviteInactive
	case now.After(invite.ExpiresAt):
		return types.ErrInviteExpired
	case capReached:
		return types.ErrInviteExhausted
	}

	return nil
}

// domainError translates storage failures into the error kinds callers see
func domainError(err error) error {
	switch {
	case err == nil:
		return nil
	case types.IsDomainError(err):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, storage.ErrConflict),
		errors.Is(err, storage.ErrDuplicateKey),
		storage.IsTransientError(err):
		return fmt.Errorf("%w: %v", types.ErrConflict, err)
	}

	return fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
}
