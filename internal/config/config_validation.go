// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] for combinations that will
// misbehave at runtime. Problems are returned as warnings only: a partial
// configuration must never abort startup.
func (cfg *StructuredConfig) validate() []error {
	var warnings []error

	if cfg.IsLambda() && cfg.Settings.FEBaseURL == "" {
		warnings = append(warnings, ErrMissingFrontendURL)
	}

	s := cfg.Settings
	if (s.CognitoRegion == "") != (s.CognitoUserPoolID == "") {
		warnings = append(warnings, ErrIncompleteCognitoConfig)
	}

	return warnings
}
