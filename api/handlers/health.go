// ABOUTME: Health check handler reporting aggregator connectivity
// ABOUTME: Unauthenticated endpoint for liveness probes

package handlers

import (
	"context"
	"net/http"

	"searchlens-api/api/dto/responses"
	"searchlens-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// Version is the reported API version
const Version = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	aggregator interfaces.Aggregator
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(aggregator interfaces.Aggregator) *HealthHandler {
	return &HealthHandler{aggregator: aggregator}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports service status and search aggregator connectivity",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint. The service reports degraded,
// not down, when the aggregator is unreachable.
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	connected := h.aggregator.HealthCheck(ctx)

	status := "ok"
	if !connected {
		status = "degraded"
	}

	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:           status,
			SearXNGConnected: connected,
			Version:          Version,
		},
	}, nil
}
