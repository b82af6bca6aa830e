package models

import "encoding/json"

// APIVersion is reported by the root fallback response.
const APIVersion = "1.0.0"

// StatusResponse is returned by GET / when no static index is deployed.
type StatusResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// PingResponse is returned by GET /ping.
type PingResponse struct {
	Pong bool    `json:"pong"`
	Time float64 `json:"time"`
}

// TimeResponse is returned by GET /time and GET /timex.
type TimeResponse struct {
	Time float64 `json:"time"`
}

// MessageResponse echoes the body received by POST /message.
type MessageResponse struct {
	WS    bool            `json:"ws"`
	Time  float64         `json:"time"`
	Input json.RawMessage `json:"input"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
