package api

import (
	"context"
	"net/http"
	"time"

	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

// Health probes the backend.
func Health(ctx context.Context, t *transport.Transport) (*types.HealthStatus, error) {
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodGet,
		Path:      "/health",
		Operation: "health",
	})
	if err != nil {
		return nil, err
	}
	var w struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Version   string    `json:"version"`
	}
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return &types.HealthStatus{Status: w.Status, Timestamp: w.Timestamp, Version: w.Version}, nil
}
