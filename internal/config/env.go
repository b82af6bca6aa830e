// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays environment variables onto cfg using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Fields whose variable is unset or empty keep their current value; the
// builder clears present-but-empty variables afterwards. A value that cannot be converted (e.g. a
// non-boolean ALLOW_DEV_ORIGINS) leaves that field untouched; the remaining
// fields are still applied and the error is returned as a warning.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
