package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, timeout time.Duration) *Client {
	t.Helper()
	client, err := NewClient(Config{
		URLs:         []string{url},
		APIKeys:      []string{"test-key"},
		Model:        "gpt-4o-mini",
		SystemPrompt: "system",
		Timeout:      timeout,
	})
	require.NoError(t, err)
	return client
}

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "prompt text", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Толкование.  "}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/v1/", time.Second)
	answer, err := client.Complete(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "Толкование.", answer)
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(t, srv.URL, time.Second).Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, answer)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, time.Second).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.False(t, IsConnectivity(err))
}

func TestCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "p")
	require.Error(t, err)
	assert.True(t, IsConnectivity(err))
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, time.Second)
	for i := 0; i < 5; i++ {
		_, err := client.Complete(context.Background(), "p")
		assert.ErrorIs(t, err, ErrUpstream)
	}

	_, err := client.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.True(t, IsConnectivity(err))
	assert.Equal(t, int32(5), hits.Load())
	assert.Equal(t, "open", client.BreakerState())
	assert.Error(t, client.HealthCheck(context.Background()))
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{URLs: []string{" "}, APIKeys: []string{"k"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUnconfigured(t *testing.T) {
	_, err := Unconfigured{}.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInstanceSelectionPrefersLeastLoaded(t *testing.T) {
	client, err := NewClient(Config{
		URLs:    []string{"http://a.example", "http://b.example"},
		APIKeys: []string{"k1"},
		Timeout: time.Second,
	})
	require.NoError(t, err)
	require.Len(t, client.instances, 2)
	assert.Equal(t, "k1", client.instances[1].APIKey)

	client.instances[0].RequestCount.AddRequest()
	selected, err := client.getAvailableInstance()
	require.NoError(t, err)
	assert.Equal(t, "http://b.example", selected.URL)

	for _, instance := range client.instances {
		instance.Health = false
	}
	selected, err = client.getAvailableInstance()
	require.NoError(t, err)
	assert.Equal(t, "http://a.example", selected.URL)
	assert.True(t, client.instances[1].Health)
}

func TestIsConnectivity(t *testing.T) {
	assert.False(t, IsConnectivity(nil))
	assert.True(t, IsConnectivity(context.DeadlineExceeded))
	assert.True(t, IsConnectivity(errors.New("dial tcp: connection refused")))
	assert.False(t, IsConnectivity(errors.New("bad request")))
}
