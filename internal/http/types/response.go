// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/workspace-service/internal/types"
)

// ErrUnauthenticated is returned when a request carries no caller identity
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the caller lacks the permission on the target
var ErrForbidden = errors.New("forbidden")

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

var statusByKind = map[string]int{
	types.ErrInvalidInput.Error():       http.StatusBadRequest,
	types.ErrInviteNotFound.Error():     http.StatusNotFound,
	types.ErrWorkspaceGone.Error():      http.StatusNotFound,
	types.ErrWorkspaceNotFound.Error():  http.StatusNotFound,
	types.ErrInviteExpired.Error():      http.StatusGone,
	types.ErrInviteInactive.Error():     http.StatusGone,
	types.ErrInviteExhausted.Error():    http.StatusGone,
	types.ErrAlreadyRedeemed.Error():    http.StatusConflict,
	types.ErrAlreadyMember.Error():      http.StatusConflict,
	types.ErrConflict.Error():           http.StatusConflict,
	types.ErrNotAMember.Error():         http.StatusForbidden,
	types.ErrRateLimited.Error():        http.StatusTooManyRequests,
	types.ErrStorageUnavailable.Error(): http.StatusServiceUnavailable,
}

// HTTPStatusFromError maps a domain error to the response status code
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	}

	if status, ok := statusByKind[types.ErrorKind(err)]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// MessageFromError returns the message exposed to clients, internal errors are not leaked
func MessageFromError(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return ErrUnauthenticated.Error()
	case errors.Is(err, ErrForbidden):
		return ErrForbidden.Error()
	case types.IsDomainError(err):
		return types.ErrorKind(err)
	}

	return "internal_error"
}

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, data any, message string) error {
	return WriteJSON(
		w,
		status,
		Response{
			Data:    data,
			Message: message,
			Status:  status,
		},
	)
}

func WriteError(w http.ResponseWriter, err error) error {
	status := HTTPStatusFromError(err)

	return WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:  status,
			Message: MessageFromError(err),
		},
	)
}
