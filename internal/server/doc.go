// Package server runs the application router.
//
// Locally it serves HTTP with graceful shutdown on SIGINT, SIGTERM and
// SIGQUIT. Inside AWS Lambda it translates API Gateway HTTP API (v2) events
// into requests for the same router.
package server
