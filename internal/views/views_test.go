package views

import (
	"testing"
	"time"

	"github.com/ewblake/soiree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func testEvent() domain.EventContext {
	return domain.EventContext{
		Name:          "Summer Gala",
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		AttendeeCount: 120,
		BudgetRange:   "$10,000-$15,000",
		EventType:     "fundraiser",
	}
}

func item(category, desc string, weeks float64, budget *float64) domain.EnrichedItem {
	return domain.EnrichedItem{
		PlanningItem: domain.PlanningItem{
			Category:       category,
			Description:    desc,
			WeeksBefore:    weeks,
			BudgetEstimate: budget,
		},
		DeadlineDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -int(weeks*7)),
	}
}

func f(v float64) *float64 { return &v }

func TestProjectMain_SortIsStableAndTotal(t *testing.T) {
	items := []domain.EnrichedItem{
		item("Zeta", "late, high category", 8, nil),
		item("Alpha", "late, low category", 8, nil),
		item("Mid", "soonest", 1, nil),
		item("Alpha", "tie on both keys, first", 8, nil),
	}

	b := Project(items, testEvent(), testNow)

	require.Len(t, b.Main, 4)
	assert.Equal(t, "soonest", b.Main[0].Description)
	// Equal weeks: category ascending; full tie: input order preserved.
	assert.Equal(t, "late, low category", b.Main[1].Description)
	assert.Equal(t, "tie on both keys, first", b.Main[2].Description)
	assert.Equal(t, "late, high category", b.Main[3].Description)
}

func TestProjectMain_DoesNotReorderInput(t *testing.T) {
	items := []domain.EnrichedItem{
		item("B", "second deadline", 8, nil),
		item("A", "first deadline", 1, nil),
	}

	Project(items, testEvent(), testNow)
	assert.Equal(t, "second deadline", items[0].Description)
}

func TestProjectTimeline_OrderAndPriorityOverride(t *testing.T) {
	early := item("Venue", "book hall", 20, nil)
	early.Priority = domain.PriorityLow
	late := item("Decor", "order flowers", 1, nil)
	late.Priority = domain.PriorityHigh
	overridden := item("Music", "hire band", 10, nil)
	overridden.Priority = domain.PriorityMedium
	overridden.PriorityOverride = domain.PriorityHigh

	b := Project([]domain.EnrichedItem{late, overridden, early}, testEvent(), testNow)

	require.Len(t, b.Timeline, 3)
	assert.Equal(t, "book hall", b.Timeline[0].Description)
	assert.Equal(t, "hire band", b.Timeline[1].Description)
	assert.Equal(t, "order flowers", b.Timeline[2].Description)
	// The override wins at projection time.
	assert.Equal(t, domain.PriorityHigh, b.Timeline[1].Priority)
	assert.Equal(t, domain.PriorityLow, b.Timeline[0].Priority)
}

func TestProjectBudget_Rollup(t *testing.T) {
	items := []domain.EnrichedItem{
		item("A", "one", 2, f(100)),
		item("A", "two", 3, f(150)),
		item("B", "three", 4, f(200)),
		item("C", "no estimate", 5, nil),
	}

	b := Project(items, testEvent(), testNow)

	require.Len(t, b.Budget, 3)
	assert.Equal(t, BudgetRow{Category: "A", ItemCount: 2, EstimatedTotal: 250}, b.Budget[0])
	assert.Equal(t, BudgetRow{Category: "B", ItemCount: 1, EstimatedTotal: 200}, b.Budget[1])
	assert.Equal(t, BudgetRow{Category: TotalLabel, ItemCount: 3, EstimatedTotal: 450}, b.Budget[2])
}

func TestProjectBudget_PlaceholderWhenNoEstimates(t *testing.T) {
	items := []domain.EnrichedItem{item("A", "one", 2, nil)}

	b := Project(items, testEvent(), testNow)

	require.Len(t, b.Budget, 1)
	assert.Equal(t, 0, b.Budget[0].ItemCount)
	assert.Contains(t, b.Budget[0].Note, "$10,000-$15,000")
}

func TestProjectMetadata_Fields(t *testing.T) {
	items := []domain.EnrichedItem{
		item("Venue", "book hall", 12, nil),
		item("Venue", "confirm layout", 2, nil),
		item("Decor", "order flowers", 2, nil),
	}

	b := Project(items, testEvent(), testNow)

	got := make(map[string]string, len(b.Metadata))
	for _, row := range b.Metadata {
		got[row.Key] = row.Value
	}
	assert.Equal(t, "Summer Gala", got["Event Name"])
	assert.Equal(t, "2026-06-15", got["Event Date"])
	assert.Equal(t, "120", got["Attendee Count"])
	assert.Equal(t, "3", got["Total Items"])
	assert.Equal(t, "2", got["Distinct Categories"])
	assert.Equal(t, "2 to 12 weeks before event", got["Planning Window"])
	assert.Equal(t, "2026-01-10T12:00:00Z", got["Generated At"])
}

func TestProject_IdempotentForFixedClock(t *testing.T) {
	items := []domain.EnrichedItem{
		item("A", "one", 2, f(100)),
		item("B", "two", 6, nil),
	}

	first := Project(items, testEvent(), testNow)
	second := Project(items, testEvent(), testNow)
	assert.Equal(t, first, second)
}

func TestProject_EmptyInputDegradesToPlaceholders(t *testing.T) {
	b := Project(nil, testEvent(), testNow)

	assert.Empty(t, b.Main)
	assert.Empty(t, b.Timeline)
	require.Len(t, b.Budget, 1)
	assert.Contains(t, b.Budget[0].Note, "Working budget")

	got := make(map[string]string)
	for _, row := range b.Metadata {
		got[row.Key] = row.Value
	}
	assert.Equal(t, "0", got["Total Items"])
	assert.Equal(t, "(no items)", got["Planning Window"])
}
