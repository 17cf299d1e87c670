// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type SwitchWorkspaceRequest struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
}

type SwitchWorkspaceResponse struct {
	CurrentWorkspaceID string `json:"current_workspace_id"`
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
	mux.Post("/api/v0/workspaces", a.handleCreate)
	mux.Get("/api/v0/workspaces/{workspace_id}", a.handleGet)
	mux.Get("/api/v0/me/workspaces", a.handleListMine)
	mux.Put("/api/v0/me/workspace", a.handleSwitch)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.handleCreate")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, httptypes.ErrUnauthenticated)
		return
	}

	req := new(CreateWorkspaceRequest)
	if err := a.decode(r, req); err != nil {
		a.writeError(w, err)
		return
	}

	ws, err := a.service.CreateWorkspace(ctx, req.Name, userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusCreated, ws, "workspace created")
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.handleGet")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, httptypes.ErrUnauthenticated)
		return
	}

	workspaceID := chi.URLParam(r, "workspace_id")

	allowed, err := a.authz.CanViewWorkspace(ctx, workspaceID, userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if !allowed {
		a.writeError(w, httptypes.ErrForbidden)
		return
	}

	ws, err := a.service.GetWorkspace(ctx, workspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, ws, "workspace")
}

func (a *API) handleListMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.handleListMine")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, httptypes.ErrUnauthenticated)
		return
	}

	uw, err := a.service.ListUserWorkspaces(ctx, userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, uw, "list of workspaces")
}

func (a *API) handleSwitch(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.handleSwitch")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, httptypes.ErrUnauthenticated)
		return
	}

	req := new(SwitchWorkspaceRequest)
	if err := a.decode(r, req); err != nil {
		a.writeError(w, err)
		return
	}

	current, err := a.service.SwitchWorkspace(ctx, userID, req.WorkspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, SwitchWorkspaceResponse{CurrentWorkspaceID: current}, "workspace switched")
}

func (a *API) decode(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("%w: malformed request body", types.ErrInvalidInput)
	}

	if err := a.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	return nil
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if httptypes.HTTPStatusFromError(err) >= http.StatusInternalServerError {
		a.logger.Errorf("workspace request failed: %v", err)
	}

	_ = httptypes.WriteError(w, err)
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
