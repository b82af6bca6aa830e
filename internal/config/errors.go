package config

import "errors"

// Loading problems reported through [StructuredConfig.Warnings]. None of them
// stops the application from starting.
var (
	// ErrConfigFileNotFound indicates that no config file was found; the
	// configuration then comes from environment variables only.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrUnsupportedConfigFormat indicates a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrMalformedConfigFile indicates a config file that could not be decoded.
	ErrMalformedConfigFile = errors.New("malformed config file")
	// ErrInvalidConfigValue indicates a config file value of the wrong type
	// for its key (for example a non-boolean ALLOW_DEV_ORIGINS).
	ErrInvalidConfigValue = errors.New("invalid config value")
	// ErrMissingFrontendURL indicates serverless mode without FE_BASE_URL,
	// which leaves the CORS origin list without a production front end.
	ErrMissingFrontendURL = errors.New("FE_BASE_URL is not set")
	// ErrIncompleteCognitoConfig indicates that only part of the Cognito
	// settings are present; guarded routes will reject every request.
	ErrIncompleteCognitoConfig = errors.New("incomplete cognito configuration")
)
