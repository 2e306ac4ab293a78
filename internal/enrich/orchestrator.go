// Package enrich drives the completion client across a validated row-set,
// capturing per-row outcomes without ever aborting the batch.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ewblake/soiree/internal/domain"
	"github.com/ewblake/soiree/internal/llm"
)

// DefaultPause is the fixed inter-call pause applied after every
// completion call, regardless of outcome.
const DefaultPause = 500 * time.Millisecond

// ProgressFunc is invoked before each completion call with the zero-based
// row index and the batch total.
type ProgressFunc func(index, total int)

// Options configures an Orchestrator. Zero values fall back to defaults.
type Options struct {
	SystemPrompt   string
	PromptTemplate string
	Pacer          Pacer
}

// Orchestrator runs the enrichment batch as a sequential reducer over the
// row sequence: one completion call in flight at a time, in original row
// order, with an injected pacing policy between calls.
type Orchestrator struct {
	client llm.CompletionClient
	opts   Options
}

// NewOrchestrator creates an Orchestrator around a completion client.
func NewOrchestrator(client llm.CompletionClient, opts Options) *Orchestrator {
	if opts.PromptTemplate == "" {
		opts.PromptTemplate = TemplateClassic
	}
	if opts.Pacer == nil {
		opts.Pacer = NewFixedPacer(DefaultPause)
	}
	return &Orchestrator{client: client, opts: opts}
}

// Enrich writes an expansion into every item, exactly once, in input
// order. A successful call stores the generated text; any failure stores a
// visible marker embedding the reason and the batch moves on to the next
// row. The items slice is mutated in place and returned. Once started, the
// batch runs over all rows; pre-slice the input to bound total work.
func (o *Orchestrator) Enrich(ctx context.Context, items []domain.EnrichedItem, event domain.EventContext, onProgress ProgressFunc) []domain.EnrichedItem {
	total := len(items)
	for i := range items {
		if onProgress != nil {
			onProgress(i, total)
		}

		prompt := BuildPrompt(o.opts.PromptTemplate, event, items[i])
		resp, err := o.client.Complete(ctx, llm.CompletionRequest{
			SystemPrompt: o.opts.SystemPrompt,
			UserPrompt:   prompt,
		})
		if err != nil {
			items[i].Expansion = FailureMarker(err)
		} else {
			items[i].Expansion = strings.TrimSpace(resp.Text)
		}

		o.opts.Pacer.Pause(ctx)
	}
	return items
}

// FailureMarker renders a per-row completion failure as visible cell text.
func FailureMarker(err error) string {
	return fmt.Sprintf("[generation failed: %s]", failureReason(err))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, llm.ErrAuth):
		return "authentication rejected"
	case errors.Is(err, llm.ErrRateLimit):
		return "rate limited"
	case errors.Is(err, llm.ErrTimeout):
		return "request timed out"
	case errors.Is(err, llm.ErrTransport):
		return "service unreachable"
	default:
		return err.Error()
	}
}
