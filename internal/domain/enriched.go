package domain

import "time"

// EnrichedItem is a PlanningItem with resolved deadline fields and, after
// the enrichment batch has run, generated guidance text. The Expansion field
// is written exactly once per run; the value is either generated text or a
// visible failure marker.
type EnrichedItem struct {
	PlanningItem

	// DeadlineDate is the event date minus 7*WeeksBefore days.
	DeadlineDate time.Time

	// DaysUntilDeadline counts calendar days from the moment of generation
	// to the deadline. Negative once the deadline has passed.
	DaysUntilDeadline int

	// Priority is derived from DaysUntilDeadline at resolution time.
	Priority Priority

	Expansion string
}

// EffectivePriority returns the template's priority override when one is
// set, otherwise the derived priority.
func (e EnrichedItem) EffectivePriority() Priority {
	if e.PriorityOverride != "" {
		return e.PriorityOverride
	}
	return e.Priority
}
