// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata injected with -ldflags.
// It is logged once at startup for release traceability.
type AppBuildInfo struct {
	BuildVersion string
	BuildDate    string
	BuildCommit  string
}

// NewAppBuildInfo returns [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: orNA(buildVersion),
		BuildDate:    orNA(buildDate),
		BuildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
