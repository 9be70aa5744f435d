package explain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: "  Admin access grants full control; revoke it.  "}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4o-mini", 5*time.Second)
	text, err := client.Explain(context.Background(),
		PrincipalContext{ID: "U1", Name: "alice@example.com"},
		EntitlementContext{ID: "arn:aws:iam::aws:policy/AdministratorAccess", Name: "AdministratorAccess", RiskTier: "HIGH"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Admin access grants full control; revoke it.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Zero(t, gotReq.Temperature)
}

func TestExplainErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", time.Second)
	_, err := client.Explain(context.Background(), PrincipalContext{}, EntitlementContext{})
	assert.Error(t, err)
}

func TestExplainEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "m", time.Second)
	_, err := client.Explain(context.Background(), PrincipalContext{}, EntitlementContext{})
	assert.Error(t, err)
}
