package domain

// PlanningItem is one validated row of the planning template: a single task
// to complete some number of weeks before the event.
type PlanningItem struct {
	// RowID is a stable 1-based position assigned at validation time,
	// in the original template order.
	RowID int

	Category    string
	Description string
	WeeksBefore float64
	Notes       string

	// Optional columns. BudgetEstimate is nil when the template left the
	// cell blank or unparseable.
	BudgetEstimate   *float64
	ResponsibleParty string
	PriorityOverride Priority

	// Extra carries template columns the contract does not map, untouched.
	Extra map[string]string
}
