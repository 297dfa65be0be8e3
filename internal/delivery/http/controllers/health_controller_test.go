package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventregistry/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name         string
		pinger       *fakePinger
		wantStatus   int
		wantState    string
		wantDatabase string
	}{
		{
			name:         "database up",
			pinger:       &fakePinger{},
			wantStatus:   http.StatusOK,
			wantState:    "ok",
			wantDatabase: "up",
		},
		{
			name:         "database down",
			pinger:       &fakePinger{err: errors.New("connection refused")},
			wantStatus:   http.StatusServiceUnavailable,
			wantState:    "degraded",
			wantDatabase: "down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(testLogger, tt.pinger)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()
			ctrl.Health(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var health HealthResponse
			require.NoError(t, json.Unmarshal(dataBytes, &health))
			assert.Equal(t, tt.wantState, health.Status)
			assert.Equal(t, tt.wantDatabase, health.Database)
		})
	}
}
