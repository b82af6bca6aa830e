// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// renglo-api application. It is populated from an optional config file,
// environment variables, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Settings holds the allow-listed keys handed to controllers. Every field
	// may be overridden by the environment variable named in its env tag.
	Settings Settings

	// Extra holds file-sourced keys that are not part of the allow-list.
	// They are passed to controllers unchanged and cannot be overridden by
	// the environment.
	Extra map[string]any

	// Server holds network and runtime settings of the HTTP layer itself.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the state storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// LambdaFunctionName is set by the AWS Lambda runtime. A non-empty value
	// switches the application into serverless mode.
	LambdaFunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`

	warnings []error
}

// Settings is the single canonical allow-list of configuration keys that
// environment variables may override. The env tag doubles as the key name
// used in config files and in the controller configuration map.
type Settings struct {
	WLName        string `env:"WL_NAME"`
	BaseURL       string `env:"BASE_URL"`
	FEBaseURL     string `env:"FE_BASE_URL"`
	DocBaseURL    string `env:"DOC_BASE_URL"`
	AppFEBaseURL  string `env:"APP_FE_BASE_URL"`
	APIGatewayARN string `env:"API_GATEWAY_ARN"`
	RoleARN       string `env:"ROLE_ARN"`
	SysEnv        string `env:"SYS_ENV"`

	DynamoDBEntityTable    string `env:"DYNAMODB_ENTITY_TABLE"`
	DynamoDBBlueprintTable string `env:"DYNAMODB_BLUEPRINT_TABLE"`
	DynamoDBRingDataTable  string `env:"DYNAMODB_RINGDATA_TABLE"`
	DynamoDBRelTable       string `env:"DYNAMODB_REL_TABLE"`
	DynamoDBChatTable      string `env:"DYNAMODB_CHAT_TABLE"`

	CSRFSessionKey string `env:"CSRF_SESSION_KEY"`
	SecretKey      string `env:"SECRET_KEY"`

	CognitoRegion      string `env:"COGNITO_REGION"`
	CognitoUserPoolID  string `env:"COGNITO_USERPOOL_ID"`
	CognitoAppClientID string `env:"COGNITO_APP_CLIENT_ID"`
	// CognitoCheckTokenExpiration is nil when no source sets it; see
	// [Settings.CheckTokenExpiration] for the effective value.
	CognitoCheckTokenExpiration *bool `env:"COGNITO_CHECK_TOKEN_EXPIRATION"`

	PreviewLayer         string `env:"PREVIEW_LAYER"`
	S3BucketName         string `env:"S3_BUCKET_NAME"`
	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	WebsocketConnections string `env:"WEBSOCKET_CONNECTIONS"`
	AllowDevOrigins      bool   `env:"ALLOW_DEV_ORIGINS"`

	AgentAPIOutput  string `env:"AGENT_API_OUTPUT"`
	AgentAPIHandler string `env:"AGENT_API_HANDLER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address the local HTTP server listens on, in
	// "host:port" format. Defaults to "0.0.0.0:5000".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Defaults to "debug".
	// Env: SERVER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// StaticDir is the directory index.html is served from on GET /.
	// Defaults to "static/dist".
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for state storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQL state backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path. Empty disables the SQL backend.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

const (
	defaultAddress   = "0.0.0.0:5000"
	defaultLogLevel  = "debug"
	defaultStaticDir = "static/dist"
)

func defaultServer() Server {
	return Server{
		Address:   defaultAddress,
		LogLevel:  defaultLogLevel,
		StaticDir: defaultStaticDir,
	}
}

// IsLambda reports whether the process runs inside the AWS Lambda runtime.
func (cfg *StructuredConfig) IsLambda() bool {
	return cfg.LambdaFunctionName != ""
}

// Warnings returns the non-fatal problems collected while loading the
// configuration. A missing config file is reported as [ErrConfigFileNotFound].
func (cfg *StructuredConfig) Warnings() []error {
	return cfg.warnings
}

// CheckTokenExpiration reports whether Cognito token expiry is enforced.
// It defaults to true when no source sets COGNITO_CHECK_TOKEN_EXPIRATION.
func (s Settings) CheckTokenExpiration() bool {
	return s.CognitoCheckTokenExpiration == nil || *s.CognitoCheckTokenExpiration
}

// GetStructuredConfig loads the application configuration in the following
// order (later sources win):
//  1. Config file (explicit path from flags, the CONFIG env variable, or
//     env_config.{json,yaml,yml} in the working directory)
//  2. Environment variables
//  3. Command-line flags (only the server and storage sections)
//
// Loading never fails: problems are collected and exposed through
// [StructuredConfig.Warnings] so that startup can continue with a partial
// configuration.
func GetStructuredConfig(flags *StructuredConfig) *StructuredConfig {
	if flags == nil {
		flags = &StructuredConfig{}
	}

	return newConfigBuilder().
		withFile(flags.ConfigFilePath).
		withEnv().
		withFlags(flags).
		build()
}
