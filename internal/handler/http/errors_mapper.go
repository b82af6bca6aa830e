package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/renglo-api/internal/service"
	"github.com/MKhiriev/renglo-api/internal/store"
	"github.com/MKhiriev/renglo-api/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked with errors.Is; the first sentinel found in
// the chain decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidStateRequest, errorResponse{http.StatusBadRequest, MsgInvalidStateRequest}},
	{service.ErrAuthNotConfigured, errorResponse{http.StatusUnauthorized, MsgAuthNotConfigured}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, MsgTokenIsExpiredOrInvalid}},
	{utils.ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, utils.ErrInvalidAuthorizationHeader.Error()}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()}},

	{store.ErrStateNotFound, errorResponse{http.StatusNotFound, MsgStateNotFound}},
	{store.ErrStorageNotConfigured, errorResponse{http.StatusServiceUnavailable, MsgStorageNotConfigured}},
	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, MsgStorageUnavailable}},

	{context.DeadlineExceeded, errorResponse{http.StatusGatewayTimeout, MsgRequestTimeout}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError writes the JSON error body matching err.
func writeServiceError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteError(w, resp.message, resp.status)
}
