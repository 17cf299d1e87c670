// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity RegistrationIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		_ = httptypes.WriteError(w, fmt.Errorf("%w: invalid request body", types.ErrInvalidInput))
		return
	}

	ws, err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email)
	if err != nil {
		a.logger.Errorf("registration hook failed for identity %s: %v", identity.ID, err)
		_ = httptypes.WriteError(w, err)
		return
	}

	_ = httptypes.WriteData(w, http.StatusOK, ws, "registration processed")
}
