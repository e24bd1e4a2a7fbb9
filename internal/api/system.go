package api

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// HealthCheck probes GET /health. The endpoint does not require a valid
// key; the client sends its usual headers anyway.
func HealthCheck(ctx context.Context, c Caller) (*types.HealthStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.HealthStatus
	if err := getJSON(ctx, c, "health_check", "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUsage retrieves current API usage and storage information.
func GetUsage(ctx context.Context, c Caller) (*types.UsageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out types.UsageResponse
	if err := getJSON(ctx, c, "get_usage", "/usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
