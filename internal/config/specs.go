// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DBDriver   string `envconfig:"db_driver" default:"postgres"`
	DSN        string `envconfig:"DSN"`
	SQLitePath string `envconfig:"sqlite_path" default:"workspace.db"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	MigrateOnStart    bool          `envconfig:"migrate_on_start" default:"false"`

	InviteRedeemMaxAttempts int `envconfig:"invite_redeem_max_attempts" default:"3"`
	InviteCodeMaxAttempts   int `envconfig:"invite_code_max_attempts" default:"5"`

	RateLimitEnabled   bool    `envconfig:"rate_limit_enabled" default:"false"`
	RedisAddr          string  `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword      string  `envconfig:"redis_password"`
	RedisDB            int     `envconfig:"redis_db" default:"0"`
	RedemptionRate     float64 `envconfig:"redemption_rate" default:"0.2"`
	RedemptionBurst    int     `envconfig:"redemption_burst" default:"5"`
	RateLimitKeyPrefix string  `envconfig:"rate_limit_key_prefix" default:"workspace:redeem:"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer  string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL string   `envconfig:"authentication_jwks_url"`
	AllowedSubjects       []string `envconfig:"authentication_allowed_subjects"`
	RequiredScope         string   `envconfig:"authentication_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
