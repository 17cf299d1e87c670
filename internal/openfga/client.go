// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) availability(err error) {
	value := 1.0
	if err != nil {
		value = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, value); mErr != nil {
		c.logger.Debugf("failed to set openfga availability: %v", mErr)
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string, tuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	contextual := make([]client.ClientContextualTupleKey, 0, len(tuples))
	for _, t := range tuples {
		contextual = append(contextual, *t.ToOpenFGATupleKey())
	}

	r, err := c.c.Check(ctx).
		Body(
			client.ClientCheckRequest{
				User:             user,
				Relation:         relation,
				Object:           object,
				ContextualTuples: contextual,
			},
		).
		Execute()
	c.availability(err)

	if err != nil {
		c.logger.Errorf("issues performing check operation: %v", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).
		Body(client.ClientWriteTuplesBody{*NewTuple(user, relation, object).ToOpenFGATupleKey()}).
		Execute()
	c.availability(err)

	if err != nil {
		c.logger.Errorf("issues performing write operation: %v", err)
		return err
	}

	return nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := c.c.ReadAuthorizationModel(ctx).Execute()
	c.availability(err)

	if err != nil {
		c.logger.Errorf("issues reading authorization model: %v", err)
		return nil, err
	}

	return r.AuthorizationModel, nil
}

// CompareModel reports whether the stored model matches the given one
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if current == nil || current.SchemaVersion != model.SchemaVersion {
		return false, nil
	}

	expected, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	actual, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}

	return string(expected) == string(actual), nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("issues writing authorization model: %w", err)
	}

	return r.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("issues creating store: %w", err)
	}

	return r.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	if err := c.c.SetStoreId(storeID); err != nil {
		c.logger.Errorf("failed to set store id: %v", err)
	}
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
		HTTPClient:           &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{ApiToken: cfg.ApiToken},
		}
	}

	fgaClient, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		c.logger.Fatalf("issues with the openfga client: %v", err)
	}

	c.c = fgaClient

	return c
}
