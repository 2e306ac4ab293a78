package llm

import (
	"os"
	"strconv"
)

// Config holds all parameters for the completion client. It is threaded
// explicitly into constructors; there is no process-wide mutable state
// behind model parameters or prompts.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int

	// TimeoutMs bounds a single HTTP attempt; RetryBudgetMs bounds the
	// whole call including retries and backoff.
	TimeoutMs     int
	MaxRetries    int // retries after the first attempt
	RetryBudgetMs int

	SystemPrompt string
	LogCalls     bool
}

// DefaultConfig returns a Config with sensible defaults for an
// OpenAI-compatible endpoint.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://api.openai.com/v1",
		Model:         "gpt-4o-mini",
		Temperature:   0.7,
		MaxTokens:     600,
		TimeoutMs:     20000,
		MaxRetries:    2,
		RetryBudgetMs: 30000,
		SystemPrompt: "You are an experienced event planner. For each planning task you are " +
			"given, write practical, specific guidance: concrete next steps, rough cost " +
			"expectations, and pitfalls to avoid. Keep it under 150 words of plain prose.",
		LogCalls: false,
	}
}

// LoadConfig reads completion-client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SOIREE_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SOIREE_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SOIREE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SOIREE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("SOIREE_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("SOIREE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SOIREE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SOIREE_RETRY_BUDGET_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryBudgetMs = n
		}
	}
	if v := os.Getenv("SOIREE_SYSTEM_PROMPT"); v != "" {
		cfg.SystemPrompt = v
	}
	if v := os.Getenv("SOIREE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
