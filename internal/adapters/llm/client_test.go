package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "small-model", req.Model)
		assert.Equal(t, []message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "hi"}}, req.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"small-model-2024","choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "secret", "small-model", time.Second)
	got, err := client.Complete(context.Background(), []clients.ChatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})

	require.NoError(t, err)
	assert.Equal(t, &clients.ChatCompletion{Content: "hello", Model: "small-model-2024"}, got)
}

func TestComplete_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "error payload", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key"}}`, message: "bad key"},
		{name: "plain failure", status: http.StatusBadGateway, body: `nope`, message: "502"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, message: "no choices"},
		{name: "not json", status: http.StatusOK, body: `<html>`, message: "decoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "k", "m", time.Second).Complete(context.Background(), []clients.ChatMessage{{Role: "user", Content: "x"}})

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
