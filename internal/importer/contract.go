package importer

import "fmt"

// Contract describes one recognized template schema: which columns must be
// present, which are optional, and how columns map onto planning item
// fields. The validator takes a Contract as a parameter rather than
// hard-coding either shape.
type Contract struct {
	Name     string
	Required []string
	Optional []string

	// Column names carrying each mapped field. Empty means the contract
	// has no column for that field.
	CategoryColumn  string
	ItemColumn      string
	WeeksColumn     string
	NotesColumn     string
	ResourcesColumn string
	BudgetColumn    string
	OwnerColumn     string
	PriorityColumn  string
}

// ContractClassic is the category/item/notes template shape.
var ContractClassic = Contract{
	Name:     "classic",
	Required: []string{"category", "item", "deadline_weeks_before", "notes"},
	Optional: []string{"budget_estimate", "responsible_party", "priority"},

	CategoryColumn: "category",
	ItemColumn:     "item",
	WeeksColumn:    "deadline_weeks_before",
	NotesColumn:    "notes",
	BudgetColumn:   "budget_estimate",
	OwnerColumn:    "responsible_party",
	PriorityColumn: "priority",
}

// ContractTaskList is the Task/Deadline template shape.
var ContractTaskList = Contract{
	Name:     "tasklist",
	Required: []string{"Task", "Deadline"},
	Optional: []string{"Category", "Owner", "Status", "Existing Resources", "Notes"},

	CategoryColumn:  "Category",
	ItemColumn:      "Task",
	WeeksColumn:     "Deadline",
	NotesColumn:     "Notes",
	ResourcesColumn: "Existing Resources",
	OwnerColumn:     "Owner",
}

// ContractByName resolves a schema name supplied by configuration.
func ContractByName(name string) (Contract, error) {
	switch name {
	case "", ContractClassic.Name:
		return ContractClassic, nil
	case ContractTaskList.Name:
		return ContractTaskList, nil
	default:
		return Contract{}, fmt.Errorf("unknown template schema %q (expected %q or %q)",
			name, ContractClassic.Name, ContractTaskList.Name)
	}
}

// mappedColumns lists every column this contract consumes; anything else in
// the template passes through untouched.
func (c Contract) mappedColumns() []string {
	cols := []string{
		c.CategoryColumn, c.ItemColumn, c.WeeksColumn, c.NotesColumn,
		c.ResourcesColumn, c.BudgetColumn, c.OwnerColumn, c.PriorityColumn,
	}
	out := cols[:0]
	for _, col := range cols {
		if col != "" {
			out = append(out, col)
		}
	}
	return out
}
