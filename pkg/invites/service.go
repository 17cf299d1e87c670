// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const (
	MinExpiresInDays = 1
	MaxExpiresInDays = 30

	defaultRedeemAttempts = 3
	defaultCodeAttempts   = 5

	outcomeSuccess = "success"
)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	authz   AuthorizerInterface
	limiter LimiterInterface

	redeemAttempts int
	codeAttempts   int

	now     func() time.Time
	newCode func() (string, error)

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GenerateInvite(ctx context.Context, workspaceID, requesterID string, expiresInDays int, maxUses *int) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.GenerateInvite")
	defer span.End()

	if workspaceID == "" || requesterID == "" {
		return nil, fmt.Errorf("%w: workspace and requester are required", types.ErrInvalidInput)
	}

	if expiresInDays < MinExpiresInDays || expiresInDays > MaxExpiresInDays {
		return nil, fmt.Errorf("%w: expires_in_days must be between %d and %d", types.ErrInvalidInput, MinExpiresInDays, MaxExpiresInDays)
	}

	if maxUses != nil && *maxUses < 1 {
		return nil, fmt.Errorf("%w: max_uses must be at least 1", types.ErrInvalidInput)
	}

	now := s.now().UTC()
	invite := &types.Invite{
		WorkspaceID: workspaceID,
		CreatedBy:   requesterID,
		ExpiresAt:   now.Add(time.Duration(expiresInDays) * 24 * time.Hour),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if maxUses != nil {
		limit := *maxUses
		invite.MaxUses = &limit
	}

	for attempt := 1; attempt <= s.codeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invite code: %w", err)
		}

		invite.Code = code

		created, err := s.storage.CreateInvite(ctx, invite)
		if err == nil {
			s.logger.Infof("invite created for workspace %s by %s", workspaceID, requesterID)
			return created, nil
		}

		if !errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Errorf("failed to store invite: %v", err)
			return nil, domainError(err)
		}

		s.logger.Warnf("invite code collision on attempt %d", attempt)
	}

	return nil, fmt.Errorf("%w: no unique invite code after %d attempts", types.ErrConflict, s.codeAttempts)
}

func (s *Service) ValidateInvite(ctx context.Context, code string) (*types.InviteValidation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ValidateInvite")
	defer span.End()

	if code == "" {
		return nil, fmt.Errorf("%w: code is required", types.ErrInvalidInput)
	}

	invite, err := s.storage.GetInviteByCode(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return &types.InviteValidation{Valid: false, Reason: types.ErrInviteNotFound.Error()}, nil
	}

	if err != nil {
		s.logger.Errorf("failed to read invite: %v", err)
		return nil, domainError(err)
	}

	expiresAt := invite.ExpiresAt
	v := &types.InviteValidation{
		Valid:       true,
		WorkspaceID: invite.WorkspaceID,
		ExpiresAt:   &expiresAt,
	}

	if err := checkEligibility(invite, s.now().UTC()); err != nil {
		v.Valid = false
		v.Reason = types.ErrorKind(err)
	}

	return v, nil
}

// RedeemInvite joins userID to the invite's workspace. The membership
// writes and the guarded invite update commit together or not at all;
// a concurrent writer winning the guard makes the attempt start over.
func (s *Service) RedeemInvite(ctx context.Context, code, userID string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.RedeemInvite")
	defer span.End()

	if code == "" || userID == "" {
		return nil, fmt.Errorf("%w: code and user are required", types.ErrInvalidInput)
	}

	if err := s.throttle(ctx, userID); err != nil {
		s.recordRedemption(types.ErrorKind(err))
		return nil, err
	}

	var (
		workspace *types.Workspace
		err       error
	)

	for attempt := 1; attempt <= s.redeemAttempts; attempt++ {
		workspace, err = s.redeemOnce(ctx, code, userID)
		if !errors.Is(err, types.ErrConflict) || ctx.Err() != nil {
			break
		}

		s.logger.Debugf("redeem attempt %d/%d of invite hit a concurrent update", attempt, s.redeemAttempts)
	}

	if err != nil {
		s.recordRedemption(types.ErrorKind(err))
		return nil, err
	}

	if aErr := s.authz.AssignWorkspaceMember(ctx, workspace.ID, userID); aErr != nil {
		s.logger.Errorf("failed to assign member relation for %s on workspace %s: %v", userID, workspace.ID, aErr)
	}

	s.logger.Security().InviteRedeemed(userID, workspace.ID)
	s.recordRedemption(outcomeSuccess)

	return workspace, nil
}

func (s *Service) redeemOnce(ctx context.Context, code, userID string) (*types.Workspace, error) {
	var workspace *types.Workspace

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		now := s.now().UTC()

		invite, err := s.storage.GetInviteByCode(ctx, code)
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrInviteNotFound
		}

		if err != nil {
			return domainError(err)
		}

		if err := checkEligibility(invite, now); err != nil {
			return err
		}

		if invite.RedeemedBy(userID) {
			return types.ErrAlreadyRedeemed
		}

		ws, err := s.storage.GetWorkspaceByID(ctx, invite.WorkspaceID)
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrWorkspaceGone
		}

		if err != nil {
			return domainError(err)
		}

		if ws.HasMember(userID) {
			return types.ErrAlreadyMember
		}

		member := types.Member{UserID: userID, Role: types.RoleMember, JoinedAt: now}
		if err := s.storage.AddWorkspaceMember(ctx, ws.ID, member); err != nil {
			return membershipError(err)
		}

		membership := types.UserMembership{WorkspaceID: ws.ID, Role: types.RoleMember, JoinedAt: now}
		if err := s.storage.AddUserWorkspace(ctx, userID, membership); err != nil {
			return membershipError(err)
		}

		if err := s.storage.SetCurrentWorkspace(ctx, userID, ws.ID, now); err != nil {
			return membershipError(err)
		}

		if _, err := s.storage.ConsumeInvite(ctx, invite.Code, userID, invite.Version, now); err != nil {
			return domainError(err)
		}

		ws.Members = append(ws.Members, member)
		workspace = ws

		return nil
	})

	if err != nil {
		return nil, domainError(err)
	}

	return workspace, nil
}

func membershipError(err error) error {
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		return types.ErrWorkspaceGone
	}

	return domainError(err)
}

// throttle fails open when the limiter backend is unreachable
func (s *Service) throttle(ctx context.Context, userID string) error {
	allowed, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		s.logger.Warnf("rate limiter unavailable, allowing redemption: %v", err)
		return nil
	}

	if !allowed {
		return types.ErrRateLimited
	}

	return nil
}

func (s *Service) recordRedemption(outcome string) {
	if outcome == "" {
		outcome = "error"
	}

	if err := s.monitor.IncInviteRedemptionMetric(map[string]string{"outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record redemption metric: %v", err)
	}
}

func (s *Service) GetInvite(ctx context.Context, code string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.GetInvite")
	defer span.End()

	invite, err := s.storage.GetInviteByCode(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.ErrInviteNotFound
	}

	if err != nil {
		return nil, domainError(err)
	}

	return invite, nil
}

// RevokeInvite deactivates the invite, it stays stored for audit
func (s *Service) RevokeInvite(ctx context.Context, code, requesterID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.RevokeInvite")
	defer span.End()

	err := s.storage.DeactivateInvite(ctx, code, s.now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrInviteNotFound
	}

	if err != nil {
		s.logger.Errorf("failed to revoke invite: %v", err)
		return domainError(err)
	}

	s.logger.Security().InviteRevoked(requesterID, code)

	return nil
}

func (s *Service) ListWorkspaceInvites(ctx context.Context, workspaceID string, page, size int64) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListWorkspaceInvites")
	defer span.End()

	invites, err := s.storage.ListInvitesByWorkspaceID(ctx, workspaceID, page, size)
	if err != nil {
		s.logger.Errorf("failed to list invites: %v", err)
		return nil, domainError(err)
	}

	return invites, nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	authz AuthorizerInterface,
	limiter LimiterInterface,
	redeemAttempts int,
	codeAttempts int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.limiter = limiter

	s.redeemAttempts = redeemAttempts
	if s.redeemAttempts < 1 {
		s.redeemAttempts = defaultRedeemAttempts
	}

	s.codeAttempts = codeAttempts
	if s.codeAttempts < 1 {
		s.codeAttempts = defaultCodeAttempts
	}

	s.now = time.Now
	s.newCode = newCode

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
