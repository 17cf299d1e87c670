// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/monitoring/prometheus"
	"github.com/canonical/workspace-service/internal/openfga"
	"github.com/canonical/workspace-service/internal/ratelimit"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/migrations"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/invites"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/web"
	"github.com/canonical/workspace-service/pkg/webhooks"
	"github.com/canonical/workspace-service/pkg/workspaces"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newDBClient(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*db.DBClient, error) {
	switch specs.DBDriver {
	case db.DriverPostgres:
		return db.NewDBClient(
			db.Config{
				DSN:             specs.DSN,
				MaxConns:        specs.DBMaxConns,
				MinConns:        specs.DBMinConns,
				MaxConnLifetime: specs.DBMaxConnLifetime,
				MaxConnIdleTime: specs.DBMaxConnIdleTime,
				TracingEnabled:  specs.TracingEnabled,
			},
			tracer,
			monitor,
			logger,
		)
	case db.DriverSQLite:
		return db.NewSQLiteClient(db.SQLiteConfig{Path: specs.SQLitePath}, tracer, monitor, logger)
	}

	return nil, fmt.Errorf("unsupported database driver %q", specs.DBDriver)
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")

	if authorizer.ValidateModel(context.Background()) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer
}

// limiterDependency is the redemption limiter together with its readiness probe
type limiterDependency interface {
	invites.LimiterInterface
	status.DependencyInterface
}

func newLimiter(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (limiterDependency, func(), error) {
	if !specs.RateLimitEnabled {
		logger.Info("Redemption rate limiting is disabled")
		return ratelimit.NewNoopLimiter(), func() {}, nil
	}

	limiter, err := ratelimit.NewLimiter(
		ratelimit.NewConfig(specs.RedisAddr, specs.RedisPassword, specs.RedisDB, specs.RedemptionRate, specs.RedemptionBurst, specs.RateLimitKeyPrefix),
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, nil, err
	}

	return limiter, func() { _ = limiter.Close() }, nil
}

func newAuthenticationMiddleware(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if !specs.AuthenticationEnabled {
		logger.Info("JWT authentication is disabled, trusting the identity header")
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
	}

	verifier, err := authentication.NewJWTAuthenticator(
		context.Background(),
		specs.AuthenticationIssuer,
		specs.AuthenticationJWKSURL,
		specs.AllowedSubjects,
		specs.RequiredScope,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := newDBClient(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	if specs.MigrateOnStart {
		if err := migrations.Up(context.Background(), dbClient.DB(), specs.DBDriver); err != nil {
			return err
		}
		logger.Info("Database migrations applied")
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := newAuthorizer(specs, tracer, monitor, logger)

	limiter, closeLimiter, err := newLimiter(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %v", err)
	}
	defer closeLimiter()

	authenticate, err := newAuthenticationMiddleware(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %v", err)
	}

	inviteService := invites.NewService(
		s,
		dbClient,
		authorizer,
		limiter,
		specs.InviteRedeemMaxAttempts,
		specs.InviteCodeMaxAttempts,
		tracer,
		monitor,
		logger,
	)
	workspaceService := workspaces.NewService(s, dbClient, authorizer, tracer, monitor, logger)
	webhookService := webhooks.NewService(workspaceService, tracer, monitor, logger)

	dependencies := map[string]status.DependencyInterface{
		"database": dbClient,
	}
	if specs.RateLimitEnabled {
		dependencies["redis"] = limiter
	}

	router := web.NewRouter(
		inviteService,
		workspaceService,
		webhookService,
		authorizer,
		authenticate,
		dependencies,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
