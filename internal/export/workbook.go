// Package export renders a projected view bundle into a styled multi-sheet
// xlsx workbook.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ewblake/soiree/internal/domain"
	"github.com/ewblake/soiree/internal/views"
)

// Sheet names, one per projected view.
const (
	SheetPlan     = "Plan"
	SheetTimeline = "Timeline"
	SheetBudget   = "Budget"
	SheetMetadata = "Event Info"
)

// Writer renders view bundles into workbooks using one styling
// configuration.
type Writer struct {
	style Style

	headerStyle   int
	dateStyle     int
	currencyStyle int
	urgentStyle   int
	soonStyle     int
}

// NewWriter creates a workbook writer with the given styling.
func NewWriter(style Style) *Writer {
	return &Writer{style: style}
}

// Write renders the bundle to an xlsx file at path. All four sheets are
// always written; empty views produce a header-only sheet.
func (w *Writer) Write(path string, b views.Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.registerStyles(f); err != nil {
		return err
	}

	if err := w.writePlan(f, b.Main); err != nil {
		return err
	}
	if err := w.writeTimeline(f, b.Timeline); err != nil {
		return err
	}
	if err := w.writeBudget(f, b.Budget); err != nil {
		return err
	}
	if err := w.writeMetadata(f, b.Metadata); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetPlan); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (w *Writer) registerStyles(f *excelize.File) error {
	var err error

	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: w.style.HeaderFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{w.style.HeaderFill}},
	})
	if err != nil {
		return fmt.Errorf("registering header style: %w", err)
	}

	w.dateStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &w.style.DateFormat})
	if err != nil {
		return fmt.Errorf("registering date style: %w", err)
	}

	w.currencyStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &w.style.CurrencyFormat})
	if err != nil {
		return fmt.Errorf("registering currency style: %w", err)
	}

	w.urgentStyle, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{w.style.UrgentFill}},
	})
	if err != nil {
		return fmt.Errorf("registering urgent style: %w", err)
	}

	w.soonStyle, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{w.style.SoonFill}},
	})
	if err != nil {
		return fmt.Errorf("registering soon style: %w", err)
	}

	return nil
}

func (w *Writer) writePlan(f *excelize.File, rows []views.MainRow) error {
	headers := []string{
		"Category", "Item", "Weeks Before", "Deadline", "Days Until",
		"Notes", "Guidance", "Budget Estimate", "Responsible Party",
	}
	if err := w.startSheet(f, SheetPlan, headers); err != nil {
		return err
	}

	widths := headerWidths(headers)
	for i, row := range rows {
		n := i + 2
		cells := []any{
			row.Category, row.Description, row.WeeksBefore, row.DeadlineDate,
			row.DaysUntilDeadline, row.Notes, row.Expansion, nil, row.ResponsibleParty,
		}
		if row.BudgetEstimate != nil {
			cells[7] = *row.BudgetEstimate
		}
		if err := setRow(f, SheetPlan, n, cells, widths); err != nil {
			return err
		}

		if err := w.styleCell(f, SheetPlan, 4, n, w.dateStyle); err != nil {
			return err
		}
		if row.BudgetEstimate != nil {
			if err := w.styleCell(f, SheetPlan, 8, n, w.currencyStyle); err != nil {
				return err
			}
		}
		if err := w.highlightDays(f, SheetPlan, 5, n, row.DaysUntilDeadline); err != nil {
			return err
		}
	}

	return w.finishSheet(f, SheetPlan, widths)
}

func (w *Writer) writeTimeline(f *excelize.File, rows []views.TimelineRow) error {
	headers := []string{
		"Deadline", "Days Until", "Priority", "Category", "Item", "Responsible Party",
	}
	if err := w.startSheet(f, SheetTimeline, headers); err != nil {
		return err
	}

	widths := headerWidths(headers)
	for i, row := range rows {
		n := i + 2
		cells := []any{
			row.DeadlineDate, row.DaysUntilDeadline, string(row.Priority),
			row.Category, row.Description, row.ResponsibleParty,
		}
		if err := setRow(f, SheetTimeline, n, cells, widths); err != nil {
			return err
		}

		if err := w.styleCell(f, SheetTimeline, 1, n, w.dateStyle); err != nil {
			return err
		}
		if err := w.highlightDays(f, SheetTimeline, 2, n, row.DaysUntilDeadline); err != nil {
			return err
		}
		if err := w.highlightPriority(f, SheetTimeline, 3, n, row.Priority); err != nil {
			return err
		}
	}

	return w.finishSheet(f, SheetTimeline, widths)
}

func (w *Writer) writeBudget(f *excelize.File, rows []views.BudgetRow) error {
	headers := []string{"Category", "Items", "Estimated Total", "Note"}
	if err := w.startSheet(f, SheetBudget, headers); err != nil {
		return err
	}

	widths := headerWidths(headers)
	for i, row := range rows {
		n := i + 2
		cells := []any{row.Category, row.ItemCount, row.EstimatedTotal, row.Note}
		if err := setRow(f, SheetBudget, n, cells, widths); err != nil {
			return err
		}
		if err := w.styleCell(f, SheetBudget, 3, n, w.currencyStyle); err != nil {
			return err
		}
		if row.Category == views.TotalLabel {
			if err := w.styleCell(f, SheetBudget, 1, n, w.headerStyle); err != nil {
				return err
			}
		}
	}

	return w.finishSheet(f, SheetBudget, widths)
}

func (w *Writer) writeMetadata(f *excelize.File, rows []views.MetadataRow) error {
	headers := []string{"Field", "Value"}
	if err := w.startSheet(f, SheetMetadata, headers); err != nil {
		return err
	}

	widths := headerWidths(headers)
	for i, row := range rows {
		if err := setRow(f, SheetMetadata, i+2, []any{row.Key, row.Value}, widths); err != nil {
			return err
		}
	}

	return w.finishSheet(f, SheetMetadata, widths)
}

// startSheet creates the sheet and writes its styled header row.
func (w *Writer) startSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("writing header of %q: %w", name, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", last, w.headerStyle); err != nil {
		return fmt.Errorf("styling header of %q: %w", name, err)
	}
	return nil
}

// finishSheet freezes the header row and sizes columns to their content.
func (w *Writer) finishSheet(f *excelize.File, name string, widths []float64) error {
	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header of %q: %w", name, err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if width < w.style.MinColWidth {
			width = w.style.MinColWidth
		}
		if width > w.style.MaxColWidth {
			width = w.style.MaxColWidth
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("sizing columns of %q: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) styleCell(f *excelize.File, sheet string, col, row, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, styleID)
}

func (w *Writer) highlightDays(f *excelize.File, sheet string, col, row, days int) error {
	switch {
	case days < urgentDays:
		return w.styleCell(f, sheet, col, row, w.urgentStyle)
	case days < soonDays:
		return w.styleCell(f, sheet, col, row, w.soonStyle)
	}
	return nil
}

func (w *Writer) highlightPriority(f *excelize.File, sheet string, col, row int, p domain.Priority) error {
	switch p {
	case domain.PriorityHigh:
		return w.styleCell(f, sheet, col, row, w.urgentStyle)
	case domain.PriorityMedium:
		return w.styleCell(f, sheet, col, row, w.soonStyle)
	}
	return nil
}

// setRow writes one data row and folds its rendered widths into the
// per-column maxima used for auto-sizing.
func setRow(f *excelize.File, sheet string, rowNum int, cells []any, widths []float64) error {
	for i, v := range cells {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
		}
		if i < len(widths) {
			if rendered := cellWidth(v); rendered > widths[i] {
				widths[i] = rendered
			}
		}
	}
	return nil
}

func headerWidths(headers []string) []float64 {
	widths := make([]float64, len(headers))
	for i, h := range headers {
		widths[i] = float64(len(h)) + 2
	}
	return widths
}

func cellWidth(v any) float64 {
	switch t := v.(type) {
	case string:
		return float64(len(t)) + 2
	case time.Time:
		return 12
	default:
		return 10
	}
}
