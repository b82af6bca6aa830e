package store

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// classifyS3Error maps an S3 client error to a storage sentinel.
// It returns nil when the error has no special meaning for callers.
//
// Mapped to [ErrStorageUnavailable]:
//   - request send failures and network errors
//   - exhausted retries
//   - 5xx responses, SlowDown and ServiceUnavailable error codes
//
// Context cancellation and deadlines are left to the caller.
func classifyS3Error(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	var (
		sendErr     *smithyhttp.RequestSendError
		maxAttempts *retry.MaxAttemptsError
		netErr      net.Error
	)
	if errors.As(err, &sendErr) || errors.As(err, &maxAttempts) || errors.As(err, &netErr) {
		return ErrStorageUnavailable
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.HTTPStatusCode() >= http.StatusInternalServerError {
		return ErrStorageUnavailable
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "SlowDown", "ServiceUnavailable":
			return ErrStorageUnavailable
		}
	}

	return nil
}
