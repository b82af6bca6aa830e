package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "SECRET_KEY", want: true},
		{key: "S3_BUCKET_NAME", want: true},
		{key: "A", want: true},
		{key: "_PRIVATE", want: false},
		{key: "__DUNDER__", want: false},
		{key: "lowercase", want: false},
		{key: "Mixed_Case", want: false},
		{key: "123", want: false},
		{key: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isConfigKey(tt.key))
		})
	}
}

func TestReadConfigFile_Formats(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "env_config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"WL_NAME":"json"}`), 0o600))
	values, err := readConfigFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "json", values["WL_NAME"])

	ymlPath := filepath.Join(dir, "env_config.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte("WL_NAME: yaml\n"), 0o600))
	values, err = readConfigFile(ymlPath)
	require.NoError(t, err)
	assert.Equal(t, "yaml", values["WL_NAME"])

	pyPath := filepath.Join(dir, "env_config.py")
	require.NoError(t, os.WriteFile(pyPath, []byte("WL_NAME = 'py'\n"), 0o600))
	_, err = readConfigFile(pyPath)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestReadConfigFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("WL_NAME: [unclosed\n"), 0o600))

	_, err := readConfigFile(path)
	assert.ErrorIs(t, err, ErrMalformedConfigFile)
}

func TestApplyValues_SplitsSettingsAndExtras(t *testing.T) {
	cfg := &StructuredConfig{}

	warnings := applyValues(cfg, map[string]any{
		"SYS_ENV":                        "prod",
		"PREVIEW_LAYER":                  42,
		"ALLOW_DEV_ORIGINS":              "true",
		"COGNITO_CHECK_TOKEN_EXPIRATION": false,
		"EXTRA_LIMIT":                    10,
		"lower_key":                      "ignored",
		"_HIDDEN":                        "ignored",
	})

	assert.Empty(t, warnings)
	assert.Equal(t, "prod", cfg.Settings.SysEnv)
	assert.Equal(t, "42", cfg.Settings.PreviewLayer)
	assert.True(t, cfg.Settings.AllowDevOrigins)
	assert.False(t, cfg.Settings.CheckTokenExpiration())
	assert.Equal(t, map[string]any{"EXTRA_LIMIT": 10}, cfg.Extra)
}

func TestApplyValues_InvalidBoolIsWarning(t *testing.T) {
	cfg := &StructuredConfig{}

	warnings := applyValues(cfg, map[string]any{
		"ALLOW_DEV_ORIGINS": []any{"yes"},
		"WL_NAME":           "renglo",
	})

	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], ErrInvalidConfigValue)
	assert.False(t, cfg.Settings.AllowDevOrigins)
	assert.Equal(t, "renglo", cfg.Settings.WLName)
}

func TestSettingsMap_OmitsUnsetKeys(t *testing.T) {
	enabled := true
	s := Settings{
		SecretKey:                   "secret",
		AllowDevOrigins:             false,
		CognitoCheckTokenExpiration: &enabled,
	}

	assert.Equal(t, map[string]any{
		"SECRET_KEY":                     "secret",
		"COGNITO_CHECK_TOKEN_EXPIRATION": true,
	}, s.Map())
}

func TestSettingsCheckTokenExpiration_DefaultsToTrue(t *testing.T) {
	assert.True(t, Settings{}.CheckTokenExpiration())
}
