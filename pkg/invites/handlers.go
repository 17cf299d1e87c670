// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type CreateInviteRequest struct {
	ExpiresInDays int  `json:"expires_in_days" validate:"required,min=1,max=30"`
	MaxUses       *int `json:"max_uses,omitempty" validate:"omitempty,min=1"`
}

// InviteResponse omits the redeemers, they are not exposed over the API
type InviteResponse struct {
	Code        string    `json:"code"`
	WorkspaceID string    `json:"workspace_id"`
	CreatedBy   string    `json:"created_by"`
	ExpiresAt   time.Time `json:"expires_at"`
	MaxUses     *int      `json:"max_uses,omitempty"`
	UsedCount   int       `json:"used_count"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newInviteResponse(i *types.Invite) InviteResponse {
	return InviteResponse{
		Code:        i.Code,
		WorkspaceID: i.WorkspaceID,
		CreatedBy:   i.CreatedBy,
		ExpiresAt:   i.ExpiresAt,
		MaxUses:     i.MaxUses,
		UsedCount:   i.UsedCount,
		Active:      i.Active,
		CreatedAt:   i.CreatedAt,
	}
}

type API struct {
	service   ServiceInterface
	authz     AuthorizerInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/workspaces/{workspace_id}/invites", a.handleCreate)
	mux.Get("/api/v0/workspaces/{workspace_id}/invites", a.handleList)
	mux.Get("/api/v0/invites/{code}", a.handleValidate)
	mux.Post("/api/v0/invites/{code}/redeem", a.handleRedeem)
	mux.Delete("/api/v0/invites/{code}", a.handleRevoke)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleCreate")
	defer span.End()

	workspaceID := chi.URLParam(r, "workspace_id")

	userID, err := a.authorize(ctx, workspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	req := new(CreateInviteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, fmt.Errorf("%w: malformed request body", types.ErrInvalidInput))
		return
	}

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, fmt.Errorf("%w: %v", types.ErrInvalidInput, err))
		return
	}

	invite, err := a.service.GenerateInvite(ctx, workspaceID, userID, req.ExpiresInDays, req.MaxUses)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, newInviteResponse(invite), "invite created")
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleList")
	defer span.End()

	workspaceID := chi.URLParam(r, "workspace_id")

	if _, err := a.authorize(ctx, workspaceID); err != nil {
		a.writeError(w, err)
		return
	}

	page := queryInt(r, "page")
	size := queryInt(r, "size")

	invites, err := a.service.ListWorkspaceInvites(ctx, workspaceID, page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	data := make([]InviteResponse, 0, len(invites))
	for _, i := range invites {
		data = append(data, newInviteResponse(i))
	}

	_ = httptypes.WriteData(w, http.StatusOK, data, "list of invites")
}

func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleValidate")
	defer span.End()

	validation, err := a.service.ValidateInvite(ctx, chi.URLParam(r, "code"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, validation, "invite validation")
}

func (a *API) handleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleRedeem")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, httptypes.ErrUnauthenticated)
		return
	}

	workspace, err := a.service.RedeemInvite(ctx, chi.URLParam(r, "code"), userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, workspace, "invite redeemed")
}

func (a *API) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleRevoke")
	defer span.End()

	invite, err := a.service.GetInvite(ctx, chi.URLParam(r, "code"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	userID, err := a.authorize(ctx, invite.WorkspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.RevokeInvite(ctx, invite.Code, userID); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorize resolves the caller and checks they can manage invites of the workspace
func (a *API) authorize(ctx context.Context, workspaceID string) (string, error) {
	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return "", httptypes.ErrUnauthenticated
	}

	allowed, err := a.authz.CanManageInvites(ctx, workspaceID, userID)
	if err != nil {
		return "", err
	}

	if !allowed {
		return "", httptypes.ErrForbidden
	}

	return userID, nil
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.HTTPStatusFromError(err) >= http.StatusInternalServerError {
		a.logger.Errorf("invite request failed: %v", err)
	}

	_ = httptypes.WriteError(w, err)
}

func queryInt(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func NewAPI(service ServiceInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.authz = authz
	a.validator = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
