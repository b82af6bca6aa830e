// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// Messages written into {"error": ...} response bodies.
const (
	MsgInternalServerError     = "internal server error"
	MsgInvalidJSON             = "invalid JSON was passed"
	MsgMethodNotAllowed        = "method not allowed"
	MsgStaticSiteMoved         = "Static site has moved, go to: "
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgAuthNotConfigured       = "authentication is not configured"
	MsgStateNotFound           = "state not found"
	MsgStorageNotConfigured    = "state storage is not configured"
	MsgStorageUnavailable      = "state storage is unavailable"
	MsgInvalidStateRequest     = "invalid state name or version"
	MsgRequestTimeout          = "request timed out"
	MsgRequestBodyTooLarge     = "request body too large"
)
