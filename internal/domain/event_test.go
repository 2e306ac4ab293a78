package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventContext_Validate_OK(t *testing.T) {
	ec := EventContext{
		Name:          "Summer Gala",
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		AttendeeCount: 120,
		BudgetRange:   "$10,000-$15,000",
		EventType:     "fundraiser",
	}
	require.NoError(t, ec.Validate())
}

func TestEventContext_Validate_CollectsAllProblems(t *testing.T) {
	ec := EventContext{AttendeeCount: -3}
	err := ec.Validate()
	require.Error(t, err)

	var ecErr *EventContextError
	require.ErrorAs(t, err, &ecErr)
	assert.Len(t, ecErr.Problems, 5)
	assert.Contains(t, err.Error(), "attendee count must be positive (got -3)")
	assert.Contains(t, err.Error(), "event name is required")
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("high"))
	assert.Equal(t, PriorityMedium, ParsePriority(" Medium "))
	assert.Equal(t, Priority(""), ParsePriority("urgent-ish"))
	assert.Equal(t, Priority(""), ParsePriority(""))
}

func TestEnrichedItem_EffectivePriority(t *testing.T) {
	e := EnrichedItem{Priority: PriorityLow}
	assert.Equal(t, PriorityLow, e.EffectivePriority())

	e.PriorityOverride = PriorityHigh
	assert.Equal(t, PriorityHigh, e.EffectivePriority())
}
