// Package deadline converts the template's relative weeks-before offsets
// into absolute dates and urgency classifications.
package deadline

import (
	"time"

	"github.com/ewblake/soiree/internal/domain"
)

// Thresholds, in days until deadline, for the derived priority bands.
const (
	highThresholdDays   = 30
	mediumThresholdDays = 90
)

// Resolve computes each item's absolute deadline and its urgency relative
// to now. Days-until is measured against the moment of generation, not the
// event date, so rerunning closer to the event raises urgency. Input order
// is preserved; no sorting happens here.
func Resolve(items []domain.PlanningItem, eventDate, now time.Time) []domain.EnrichedItem {
	out := make([]domain.EnrichedItem, 0, len(items))
	for _, it := range items {
		// Fractional weeks truncate at the day level in the multiplication.
		dl := eventDate.AddDate(0, 0, -int(it.WeeksBefore*7))
		days := daysBetween(now, dl)
		out = append(out, domain.EnrichedItem{
			PlanningItem:      it,
			DeadlineDate:      dl,
			DaysUntilDeadline: days,
			Priority:          Classify(days),
		})
	}
	return out
}

// Classify maps days-until-deadline onto a priority band.
func Classify(daysUntil int) domain.Priority {
	switch {
	case daysUntil < highThresholdDays:
		return domain.PriorityHigh
	case daysUntil < mediumThresholdDays:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// daysBetween counts whole calendar days from a to b, negative when b is in
// the past. Both instants are collapsed to their UTC date first so clock
// time does not leak into the count.
func daysBetween(a, b time.Time) int {
	return int(atMidnightUTC(b).Sub(atMidnightUTC(a)).Hours() / 24)
}

func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
