package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are looked up in the working directory, in order, when
// no explicit config path is given.
var defaultConfigFiles = []string{"env_config.json", "env_config.yaml", "env_config.yml"}

// resolveConfigPath returns the config file to read. An explicit path must
// exist; otherwise the first default file present is used.
func resolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrConfigFileNotFound, path, err)
		}
		return path, nil
	}

	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	return "", ErrConfigFileNotFound
}

// readConfigFile decodes a JSON or YAML file into a flat key/value map.
// The format is chosen by file extension.
func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	values := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedConfigFile, path, err)
	}

	return values, nil
}

// applyValues copies every configuration key of values into cfg.
// Allow-listed keys go to cfg.Settings, everything else to cfg.Extra.
// Keys that are not uppercase or start with an underscore are ignored.
func applyValues(cfg *StructuredConfig, values map[string]any) []error {
	if cfg.Extra == nil {
		cfg.Extra = make(map[string]any)
	}

	fields := settingsFields(&cfg.Settings)

	var warnings []error
	for key, value := range values {
		if !isConfigKey(key) {
			continue
		}

		field, ok := fields[key]
		if !ok {
			cfg.Extra[key] = value
			continue
		}

		if err := assignValue(field, value); err != nil {
			warnings = append(warnings, fmt.Errorf("%w: %s: %w", ErrInvalidConfigValue, key, err))
		}
	}

	return warnings
}

// isConfigKey reports whether key follows the constant naming convention:
// at least one letter, no lowercase letters, no leading underscore.
func isConfigKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "_") {
		return false
	}

	hasLetter := false
	for _, r := range key {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}

	return hasLetter
}

// settingsFields indexes the settable fields of s by their env tag.
func settingsFields(s *Settings) map[string]reflect.Value {
	v := reflect.ValueOf(s).Elem()
	t := v.Type()

	fields := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("env"); key != "" {
			fields[key] = v.Field(i)
		}
	}

	return fields
}

func assignValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		if value == nil {
			field.SetString("")
			return nil
		}
		field.SetString(fmt.Sprint(value))
		return nil
	case reflect.Bool:
		b, err := toBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
		return nil
	case reflect.Ptr:
		if field.Type().Elem().Kind() != reflect.Bool {
			return fmt.Errorf("unsupported field type %s", field.Type())
		}
		b, err := toBool(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(&b))
		return nil
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case nil:
		return false, nil
	default:
		return false, errors.New("value is not a boolean")
	}
}

// Map renders the settings as the flat configuration map handed to
// controllers. Empty strings and unset booleans are omitted so that only
// keys actually configured appear.
func (s Settings) Map() map[string]any {
	v := reflect.ValueOf(s)
	t := v.Type()

	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			if field.String() != "" {
				out[key] = field.String()
			}
		case reflect.Bool:
			if field.Bool() {
				out[key] = true
			}
		case reflect.Ptr:
			if !field.IsNil() {
				out[key] = field.Elem().Interface()
			}
		}
	}

	return out
}
