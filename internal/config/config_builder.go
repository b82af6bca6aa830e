package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"dario.cat/mergo"
)

type configBuilder struct {
	config   *StructuredConfig
	warnings []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		config: &StructuredConfig{Extra: make(map[string]any)},
	}
}

func (b *configBuilder) build() *StructuredConfig {
	if err := mergo.Merge(&b.config.Server, defaultServer()); err != nil {
		b.warnings = append(b.warnings, fmt.Errorf("error applying server defaults: %w", err))
	}

	b.warnings = append(b.warnings, b.config.validate()...)
	b.config.warnings = b.warnings

	return b.config
}

// withFile loads the config file. An empty path falls back to the CONFIG
// environment variable and then to the default file names.
func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" {
		path = os.Getenv("CONFIG")
	}

	resolved, err := resolveConfigPath(path)
	if err != nil {
		b.warnings = append(b.warnings, err)
		return b
	}

	values, err := readConfigFile(resolved)
	if err != nil {
		b.warnings = append(b.warnings, err)
		return b
	}

	b.config.ConfigFilePath = resolved
	b.warnings = append(b.warnings, applyValues(b.config, values)...)
	return b
}

// withEnv overlays environment variables on top of the values read so far.
// A variable that is present replaces the field even when it is empty.
func (b *configBuilder) withEnv() *configBuilder {
	loadedFrom := b.config.ConfigFilePath
	checkExpiration := b.config.Settings.CognitoCheckTokenExpiration

	if err := parseEnv(b.config); err != nil {
		b.warnings = append(b.warnings, err)

		// a failed bool parse still allocates the pointer; keep the previous value
		if _, parseErr := strconv.ParseBool(os.Getenv("COGNITO_CHECK_TOKEN_EXPIRATION")); parseErr != nil {
			b.config.Settings.CognitoCheckTokenExpiration = checkExpiration
		}
	}

	clearEmptyEnv(&b.config.Settings)

	if loadedFrom != "" {
		b.config.ConfigFilePath = loadedFrom
	}

	return b
}

// clearEmptyEnv resets the settings whose variable is present but empty.
// env.Parse skips empty values, which would let a file value win.
func clearEmptyEnv(s *Settings) {
	for key, field := range settingsFields(s) {
		if v, ok := os.LookupEnv(key); !ok || v != "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString("")
		case reflect.Bool:
			field.SetBool(false)
		case reflect.Ptr:
			field.Set(reflect.ValueOf(new(bool)))
		}
	}
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if err := mergo.Merge(&b.config.Server, flags.Server, mergo.WithOverride); err != nil {
		b.warnings = append(b.warnings, fmt.Errorf("error merging server flags: %w", err))
	}

	if err := mergo.Merge(&b.config.Storage, flags.Storage, mergo.WithOverride); err != nil {
		b.warnings = append(b.warnings, fmt.Errorf("error merging storage flags: %w", err))
	}

	return b
}

// FromMap builds a configuration from an explicit key/value map, skipping
// config file and environment discovery for controller settings. The
// deployment marker and server defaults are still resolved.
func FromMap(values map[string]any) *StructuredConfig {
	b := newConfigBuilder()
	b.warnings = append(b.warnings, applyValues(b.config, values)...)
	b.config.LambdaFunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	return b.build()
}
