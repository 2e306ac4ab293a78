package llm

import "errors"

var (
	// ErrAuth indicates the completion service rejected the API key.
	// Never retried.
	ErrAuth = errors.New("completion service rejected credentials")

	// ErrRateLimit indicates the completion service throttled the request.
	ErrRateLimit = errors.New("completion service rate limit exceeded")

	// ErrTimeout indicates the request exceeded the configured timeout or
	// the overall retry budget.
	ErrTimeout = errors.New("completion request timed out")

	// ErrTransport indicates a connection failure or a server-side error
	// that exhausted the retry allowance.
	ErrTransport = errors.New("completion service unreachable")
)
