package domain

import "strings"

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

// ParsePriority normalizes a free-form template value into a Priority.
// Unrecognized or blank values return the empty Priority.
func ParsePriority(s string) Priority {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if ValidPriorities[p] {
		return p
	}
	return ""
}
