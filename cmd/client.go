// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/invites"
	"github.com/canonical/workspace-service/pkg/workspaces"
)

// envelope mirrors the JSON body written by the API handlers
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type apiClient struct {
	client *resty.Client
}

func newAPIClient(endpoint string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	client := resty.New().SetBaseURL(strings.TrimSuffix(endpoint, "/"))

	if bearerToken != "" {
		client.SetAuthToken(bearerToken)
	} else if userID != "" {
		client.SetHeader(identity.HeaderName, userID)
	}

	return &apiClient{client: client}
}

func do[T any](ctx context.Context, c *apiClient, method, path string, body any) (T, error) {
	out := new(envelope[T])
	errOut := new(envelope[any])

	req := c.client.R().SetContext(ctx).SetResult(out).SetError(errOut)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return out.Data, fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		return out.Data, fmt.Errorf("api error (status %d): %s", resp.StatusCode(), errOut.Message)
	}

	return out.Data, nil
}

func (c *apiClient) CreateWorkspace(ctx context.Context, name string) (*types.Workspace, error) {
	return do[*types.Workspace](ctx, c, http.MethodPost, "/api/v0/workspaces", workspaces.CreateWorkspaceRequest{Name: name})
}

func (c *apiClient) GetWorkspace(ctx context.Context, workspaceID string) (*types.Workspace, error) {
	return do[*types.Workspace](ctx, c, http.MethodGet, "/api/v0/workspaces/"+workspaceID, nil)
}

func (c *apiClient) ListMyWorkspaces(ctx context.Context) (*types.UserWorkspaces, error) {
	return do[*types.UserWorkspaces](ctx, c, http.MethodGet, "/api/v0/me/workspaces", nil)
}

func (c *apiClient) SwitchWorkspace(ctx context.Context, workspaceID string) (string, error) {
	out, err := do[workspaces.SwitchWorkspaceResponse](ctx, c, http.MethodPut, "/api/v0/me/workspace", workspaces.SwitchWorkspaceRequest{WorkspaceID: workspaceID})
	return out.CurrentWorkspaceID, err
}

func (c *apiClient) CreateInvite(ctx context.Context, workspaceID string, expiresInDays int, maxUses *int) (invites.InviteResponse, error) {
	return do[invites.InviteResponse](
		ctx, c, http.MethodPost,
		fmt.Sprintf("/api/v0/workspaces/%s/invites", workspaceID),
		invites.CreateInviteRequest{ExpiresInDays: expiresInDays, MaxUses: maxUses},
	)
}

func (c *apiClient) ListInvites(ctx context.Context, workspaceID string, page, size int) ([]invites.InviteResponse, error) {
	return do[[]invites.InviteResponse](ctx, c, http.MethodGet, fmt.Sprintf("/api/v0/workspaces/%s/invites?page=%d&size=%d", workspaceID, page, size), nil)
}

func (c *apiClient) ValidateInvite(ctx context.Context, code string) (*types.InviteValidation, error) {
	return do[*types.InviteValidation](ctx, c, http.MethodGet, "/api/v0/invites/"+code, nil)
}

func (c *apiClient) RedeemInvite(ctx context.Context, code string) (*types.Workspace, error) {
	return do[*types.Workspace](ctx, c, http.MethodPost, "/api/v0/invites/"+code+"/redeem", nil)
}

func (c *apiClient) RevokeInvite(ctx context.Context, code string) error {
	_, err := do[any](ctx, c, http.MethodDelete, "/api/v0/invites/"+code, nil)
	return err
}
