package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventContext describes the event being planned. It is constructed once by
// the caller and read-only for the lifetime of a generation run.
type EventContext struct {
	Name          string
	Date          time.Time
	AttendeeCount int
	BudgetRange   string
	EventType     string
}

// EventContextError reports missing or invalid event fields. All problems
// are collected before reporting.
type EventContextError struct {
	Problems []string
}

func (e *EventContextError) Error() string {
	return fmt.Sprintf("invalid event context: %s", strings.Join(e.Problems, "; "))
}

// Validate checks that all five event fields are usable. It must be called
// before any enrichment work begins.
func (e EventContext) Validate() error {
	var problems []string

	if strings.TrimSpace(e.Name) == "" {
		problems = append(problems, "event name is required")
	}
	if e.Date.IsZero() {
		problems = append(problems, "event date is required")
	}
	if e.AttendeeCount <= 0 {
		problems = append(problems, fmt.Sprintf("attendee count must be positive (got %d)", e.AttendeeCount))
	}
	if strings.TrimSpace(e.BudgetRange) == "" {
		problems = append(problems, "budget range is required")
	}
	if strings.TrimSpace(e.EventType) == "" {
		problems = append(problems, "event type is required")
	}

	if len(problems) > 0 {
		return &EventContextError{Problems: problems}
	}
	return nil
}
