package llm

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

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 2000
	cfg.RetryBudgetMs = 5000
	return cfg
}

func chatOK(text string) chatResponse {
	var resp chatResponse
	resp.Model = "gpt-4o-mini"
	resp.Choices = []struct {
		Message chatMessage `json:"message"`
	}{{Message: chatMessage{Role: "assistant", Content: text}}}
	return resp
}

func TestClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "plan well", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatOK("book the venue early"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "plan well",
		UserPrompt:   "expand this task",
	})

	require.NoError(t, err)
	assert.Equal(t, "book the venue early", resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestClient_Complete_AuthNeverRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, 1, attempts)
}

func TestClient_Complete_RateLimitClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrRateLimit)
}

func TestClient_Complete_RetryOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(chatOK("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewClient(cfg, NoopObserver{})
	resp, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 100
	cfg.RetryBudgetMs = 300
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Complete_Unreachable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{Model: "gpt-4o-mini"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "AUTH", errorCode(ErrAuth))
	assert.Equal(t, "RATE_LIMIT", errorCode(ErrRateLimit))
	assert.Equal(t, "TIMEOUT", errorCode(ErrTimeout))
	assert.Equal(t, "TRANSPORT", errorCode(ErrTransport))
}
