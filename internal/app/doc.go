// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the renglo-api application: configuration, cache,
// storage, services, the CORS policy for the deployment environment and the
// router with every route group registered.
package app
