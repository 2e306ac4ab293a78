// Package views derives the four output-facing datasets from a finalized
// enriched row-set. Every projection is a pure function of its inputs; a
// quantity that cannot be computed degrades to a placeholder rather than an
// error, so no single view can block delivery of the others.
package views

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ewblake/soiree/internal/domain"
)

// Bundle holds the four projected views. It is created once per generation
// run and never mutated; regeneration produces a new bundle.
type Bundle struct {
	Main     []MainRow
	Timeline []TimelineRow
	Budget   []BudgetRow
	Metadata []MetadataRow
}

// MainRow is one record of the primary list, ordered by
// (weeks_before ascending, category ascending).
type MainRow struct {
	Category          string
	Description       string
	WeeksBefore       float64
	DeadlineDate      time.Time
	DaysUntilDeadline int
	Notes             string
	Expansion         string
	BudgetEstimate    *float64
	ResponsibleParty  string
}

// TimelineRow is one record of the chronological list, ordered by deadline.
type TimelineRow struct {
	DeadlineDate      time.Time
	DaysUntilDeadline int
	Priority          domain.Priority
	Category          string
	Description       string
	ResponsibleParty  string
}

// BudgetRow is one record of the budget rollup: a category subtotal, the
// trailing TOTAL row, or the placeholder when no item carries an estimate.
type BudgetRow struct {
	Category       string
	ItemCount      int
	EstimatedTotal float64
	Note           string
}

// TotalLabel names the trailing rollup row of the budget view.
const TotalLabel = "TOTAL"

// MetadataRow is one key/value record describing the generation run.
type MetadataRow struct {
	Key   string
	Value string
}

// Project derives all four views from the finalized items and event
// context. now feeds only the metadata generation timestamp; with an equal
// now, repeated projection over identical inputs is byte-identical.
func Project(items []domain.EnrichedItem, event domain.EventContext, now time.Time) Bundle {
	return Bundle{
		Main:     projectMain(items),
		Timeline: projectTimeline(items),
		Budget:   projectBudget(items, event),
		Metadata: projectMetadata(items, event, now),
	}
}

func projectMain(items []domain.EnrichedItem) []MainRow {
	ordered := make([]domain.EnrichedItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].WeeksBefore != ordered[j].WeeksBefore {
			return ordered[i].WeeksBefore < ordered[j].WeeksBefore
		}
		return ordered[i].Category < ordered[j].Category
	})

	rows := make([]MainRow, 0, len(ordered))
	for _, it := range ordered {
		rows = append(rows, MainRow{
			Category:          it.Category,
			Description:       it.Description,
			WeeksBefore:       it.WeeksBefore,
			DeadlineDate:      it.DeadlineDate,
			DaysUntilDeadline: it.DaysUntilDeadline,
			Notes:             it.Notes,
			Expansion:         it.Expansion,
			BudgetEstimate:    it.BudgetEstimate,
			ResponsibleParty:  it.ResponsibleParty,
		})
	}
	return rows
}

func projectTimeline(items []domain.EnrichedItem) []TimelineRow {
	ordered := make([]domain.EnrichedItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DeadlineDate.Before(ordered[j].DeadlineDate)
	})

	rows := make([]TimelineRow, 0, len(ordered))
	for _, it := range ordered {
		rows = append(rows, TimelineRow{
			DeadlineDate:      it.DeadlineDate,
			DaysUntilDeadline: it.DaysUntilDeadline,
			Priority:          it.EffectivePriority(),
			Category:          it.Category,
			Description:       it.Description,
			ResponsibleParty:  it.ResponsibleParty,
		})
	}
	return rows
}

func projectBudget(items []domain.EnrichedItem, event domain.EventContext) []BudgetRow {
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, it := range items {
		// Items without an estimate contribute to neither count nor sum.
		if it.BudgetEstimate == nil {
			continue
		}
		counts[it.Category]++
		sums[it.Category] += *it.BudgetEstimate
	}

	if len(counts) == 0 {
		return []BudgetRow{{
			Category: "(no itemized estimates)",
			Note:     fmt.Sprintf("Working budget: %s", event.BudgetRange),
		}}
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rows := make([]BudgetRow, 0, len(categories)+1)
	totalCount := 0
	totalSum := 0.0
	for _, c := range categories {
		rows = append(rows, BudgetRow{Category: c, ItemCount: counts[c], EstimatedTotal: sums[c]})
		totalCount += counts[c]
		totalSum += sums[c]
	}
	rows = append(rows, BudgetRow{Category: TotalLabel, ItemCount: totalCount, EstimatedTotal: totalSum})
	return rows
}

func projectMetadata(items []domain.EnrichedItem, event domain.EventContext, now time.Time) []MetadataRow {
	categories := make(map[string]bool)
	minWeeks, maxWeeks := 0.0, 0.0
	for i, it := range items {
		if it.Category != "" {
			categories[it.Category] = true
		}
		if i == 0 || it.WeeksBefore < minWeeks {
			minWeeks = it.WeeksBefore
		}
		if i == 0 || it.WeeksBefore > maxWeeks {
			maxWeeks = it.WeeksBefore
		}
	}

	window := "(no items)"
	if len(items) > 0 {
		// Latest deadline (smallest offset) to earliest (largest).
		window = fmt.Sprintf("%s to %s weeks before event", formatNum(minWeeks), formatNum(maxWeeks))
	}

	return []MetadataRow{
		{Key: "Event Name", Value: event.Name},
		{Key: "Event Date", Value: event.Date.Format("2006-01-02")},
		{Key: "Event Type", Value: event.EventType},
		{Key: "Attendee Count", Value: strconv.Itoa(event.AttendeeCount)},
		{Key: "Budget Range", Value: event.BudgetRange},
		{Key: "Generated At", Value: now.UTC().Format(time.RFC3339)},
		{Key: "Total Items", Value: strconv.Itoa(len(items))},
		{Key: "Distinct Categories", Value: strconv.Itoa(len(categories))},
		{Key: "Planning Window", Value: window},
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
