// Package http implements the HTTP transport layer of the application.
//
// It wires the chi router: panic recovery, request tracing, access logging,
// CORS and the Cognito bearer guard, the utility routes and every registered
// [RouteGroup]. Handlers translate service errors into JSON error bodies via
// statusFromError.
package http
