package importer

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ewblake/soiree/internal/domain"
)

// Validate enforces a schema contract on a raw table and produces planning
// items in original row order.
//
// Fatal outcomes: a SchemaError when any required column is absent, an
// EmptyInputError when no usable rows remain. Per-row repairs never fail the
// run: lossy numeric coercion of the weeks column is logged and zeroed,
// missing optional text fields become "", and rows lacking a description or
// a weeks value are dropped. Surviving rows get a stable 1-based RowID and
// are never reordered.
func Validate(tbl Table, c Contract, log *slog.Logger) ([]domain.PlanningItem, error) {
	if log == nil {
		log = slog.Default()
	}

	var missing []string
	for _, col := range c.Required {
		if tbl.columnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Contract: c.Name, Missing: missing}
	}
	if len(tbl.Rows) == 0 {
		return nil, &EmptyInputError{}
	}

	catIdx := tbl.columnIndex(c.CategoryColumn)
	itemIdx := tbl.columnIndex(c.ItemColumn)
	weeksIdx := tbl.columnIndex(c.WeeksColumn)
	notesIdx := tbl.columnIndex(c.NotesColumn)
	resIdx := tbl.columnIndex(c.ResourcesColumn)
	budgetIdx := tbl.columnIndex(c.BudgetColumn)
	ownerIdx := tbl.columnIndex(c.OwnerColumn)
	prioIdx := tbl.columnIndex(c.PriorityColumn)

	mapped := make(map[int]bool)
	for _, col := range c.mappedColumns() {
		if idx := tbl.columnIndex(col); idx >= 0 {
			mapped[idx] = true
		}
	}

	var items []domain.PlanningItem
	for rowNum, row := range tbl.Rows {
		category := cell(row, catIdx)
		description := cell(row, itemIdx)
		weeksRaw := cell(row, weeksIdx)

		if description == "" || weeksRaw == "" {
			log.Debug("dropping incomplete template row",
				"row", rowNum+1, "category", category, "description", description)
			continue
		}

		weeks, exact := parseWeeks(weeksRaw)
		if !exact {
			log.Warn("coerced non-numeric weeks value",
				"row", rowNum+1, "raw", weeksRaw, "coerced", weeks)
		}

		item := domain.PlanningItem{
			RowID:            len(items) + 1,
			Category:         category,
			Description:      description,
			WeeksBefore:      weeks,
			Notes:            domain.CoalesceStr(cell(row, notesIdx), cell(row, resIdx)),
			ResponsibleParty: cell(row, ownerIdx),
			PriorityOverride: domain.ParsePriority(cell(row, prioIdx)),
		}

		if raw := cell(row, budgetIdx); raw != "" {
			if v, err := strconv.ParseFloat(cleanAmount(raw), 64); err == nil {
				item.BudgetEstimate = &v
			} else {
				log.Warn("ignoring unparseable budget estimate", "row", rowNum+1, "raw", raw)
			}
		}

		for i, col := range tbl.Columns {
			if mapped[i] {
				continue
			}
			if v := cell(row, i); v != "" {
				if item.Extra == nil {
					item.Extra = make(map[string]string)
				}
				item.Extra[strings.TrimSpace(col)] = v
			}
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, &EmptyInputError{}
	}
	return items, nil
}

// parseWeeks coerces a weeks-before cell to a non-negative number. Values
// like "3 weeks" lose their suffix, negatives clamp to zero, and anything
// with no leading number becomes zero; exact reports whether the cell was
// already a clean non-negative number.
func parseWeeks(raw string) (weeks float64, exact bool) {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 {
			return 0, false
		}
		return v, true
	}

	// Take the longest numeric prefix, e.g. "3 weeks" or "2.5wk".
	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, false
}

// cleanAmount strips currency symbols and thousands separators so template
// values like "$1,200" parse.
func cleanAmount(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ':
			return -1
		}
		return r
	}, raw)
}
