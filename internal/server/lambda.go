package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/renglo-api/internal/logger"
)

// payloadVersionV2 marks API Gateway HTTP API events in payload format 2.0.
// REST API proxy events and HTTP API 1.0 payloads use the v1 shape.
const payloadVersionV2 = "2.0"

type lambdaServer struct {
	adapter    *chiadapter.ChiLambda
	adapterV2  *chiadapter.ChiLambdaV2
	onShutdown func()
	shutdown   sync.Once

	logger *logger.Logger
}

func newLambdaServer(router *chi.Mux, onShutdown func(), logger *logger.Logger) *lambdaServer {
	return &lambdaServer{
		adapter:    chiadapter.New(router),
		adapterV2:  chiadapter.NewV2(router),
		onShutdown: onShutdown,
		logger:     logger,
	}
}

// RunServer hands control to the Lambda runtime; it never returns while the
// execution environment lives.
func (l *lambdaServer) RunServer() {
	l.logger.Info().Msg("starting lambda handler")
	lambda.StartWithOptions(l.handle, lambda.WithEnableSIGTERM(l.Shutdown))
}

// Shutdown runs the shutdown hook when the execution environment is torn
// down.
func (l *lambdaServer) Shutdown() {
	l.shutdown.Do(func() {
		l.logger.Info().Msg("lambda environment shutting down")
		l.onShutdown()
	})
}

// handle proxies both REST API (v1) and HTTP API (v2) events to the router,
// picking the adapter by the event's payload version.
func (l *lambdaServer) handle(ctx context.Context, payload json.RawMessage) (any, error) {
	var header struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(payload, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", errDecodingEvent, err)
	}

	if header.Version == payloadVersionV2 {
		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("%w: %w", errDecodingEvent, err)
		}
		return l.adapterV2.ProxyWithContextV2(ctx, event)
	}

	var event events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", errDecodingEvent, err)
	}
	return l.adapter.ProxyWithContext(ctx, event)
}
