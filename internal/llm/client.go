package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// CompletionRequest holds the parameters for one completion call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
	MaxTokens    *int     // nil uses the configured default
}

// CompletionResponse holds the result of a completion call.
type CompletionResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// CompletionClient provides a single-call abstraction over the external
// text-completion API.
type CompletionClient interface {
	// Complete issues exactly one logical request. Transport-level retry
	// happens inside; the returned error, if any, is one of ErrAuth,
	// ErrRateLimit, ErrTimeout, or ErrTransport (wrapped with detail).
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Available checks whether the completion endpoint is reachable.
	// Diagnostics only; not used on the enrichment hot path.
	Available(ctx context.Context) bool
}

// openAIClient implements CompletionClient against an OpenAI-compatible
// chat-completions HTTP API.
type openAIClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a CompletionClient for the configured endpoint.
func NewClient(cfg Config, observer Observer) CompletionClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &openAIClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the JSON body returned by POST /chat/completions.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	start := time.Now()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.RetryBudgetMs)*time.Millisecond)
	defer cancel()

	var messages []chatMessage
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: temp,
		MaxTokens:   maxTok,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		if i > 0 {
			// Exponential backoff between attempts, capped by the budget.
			select {
			case <-time.After(backoffDelay(i)):
			case <-ctx.Done():
			}
			if ctx.Err() != nil {
				break
			}
		}

		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			resp.LatencyMs = latency
			return resp, nil
		}
		lastErr = err

		// Auth failures are not recoverable by retrying.
		if errors.Is(err, ErrAuth) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	if ctx.Err() != nil && !errors.Is(lastErr, ErrAuth) {
		lastErr = fmt.Errorf("%w: retry budget exhausted", ErrTimeout)
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})
	return nil, lastErr
}

// doRequest performs one HTTP attempt and classifies any failure.
func (c *openAIClient) doRequest(ctx context.Context, body chatRequest) (*CompletionResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling request: %v", ErrTransport, err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if attemptCtx.Err() != nil {
			return nil, fmt.Errorf("%w: no response within %dms", ErrTimeout, c.cfg.TimeoutMs)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w (status 401)", ErrAuth)
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w (status 429)", ErrRateLimit)
	case httpResp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, httpResp.StatusCode, truncate(string(respBody), 200))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response carried no choices", ErrTransport)
	}

	return &CompletionResponse{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
	}, nil
}

func (c *openAIClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuth):
		return "AUTH"
	case errors.Is(err, ErrRateLimit):
		return "RATE_LIMIT"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrTransport):
		return "TRANSPORT"
	default:
		return "UNKNOWN"
	}
}
