// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier values):
//  1. Config file (env_config.json / env_config.yaml or an explicit path)
//  2. Environment variables, restricted to the allow-list in [Settings]
//  3. Command-line flags (server and storage sections only)
//
// Loading never fails: missing or malformed sources are collected as
// warnings instead of errors. The main entry points are
// [GetStructuredConfig] for discovery-based loading and [FromMap] for
// direct injection.
package config
