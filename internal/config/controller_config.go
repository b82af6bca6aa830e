package config

import (
	"fmt"

	"dario.cat/mergo"
)

// ControllerConfig returns the flat configuration map injected into
// controllers: allow-listed settings, file-only extras, and IS_LAMBDA.
// Allow-listed settings win over extras with the same key.
func (cfg *StructuredConfig) ControllerConfig() (map[string]any, error) {
	out := cfg.Settings.Map()
	if err := mergo.Merge(&out, cfg.Extra); err != nil {
		return nil, fmt.Errorf("error merging extra config keys: %w", err)
	}

	out["IS_LAMBDA"] = cfg.IsLambda()
	return out, nil
}
