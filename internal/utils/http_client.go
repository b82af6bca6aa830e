package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client for outbound calls such as the Cognito
// JWKS download.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends "Accept: application/json",
// gives up after timeout and retries twice on transport errors.
// A zero timeout leaves requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
