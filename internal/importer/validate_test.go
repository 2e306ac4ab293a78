package importer

import (
	"testing"

	"github.com/ewblake/soiree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicTable(rows ...[]string) Table {
	return Table{
		Columns: []string{"category", "item", "deadline_weeks_before", "notes", "budget_estimate", "responsible_party"},
		Rows:    rows,
	}
}

func TestValidate_MissingRequiredColumns(t *testing.T) {
	tbl := Table{
		Columns: []string{"category", "notes"},
		Rows:    [][]string{{"Venue", "call them"}},
	}

	_, err := Validate(tbl, ContractClassic, nil)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "classic", schemaErr.Contract)
	assert.ElementsMatch(t, []string{"item", "deadline_weeks_before"}, schemaErr.Missing)
}

func TestValidate_EmptyInput(t *testing.T) {
	_, err := Validate(classicTable(), ContractClassic, nil)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestValidate_DropsIncompleteRowsAndAssignsStableIDs(t *testing.T) {
	tbl := classicTable(
		[]string{"Venue", "Book the hall", "12", "deposit due early"},
		[]string{"", "", "", ""},
		[]string{"Catering", "", "8", "no description, dropped"},
		[]string{"Music", "Hire the band", "", "no weeks, dropped"},
		[]string{"Decor", "Order flowers", "2", ""},
	)

	items, err := Validate(tbl, ContractClassic, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].RowID)
	assert.Equal(t, "Book the hall", items[0].Description)
	assert.Equal(t, 12.0, items[0].WeeksBefore)
	assert.Equal(t, 2, items[1].RowID)
	assert.Equal(t, "Order flowers", items[1].Description)
	assert.Equal(t, "", items[1].Notes)
}

func TestValidate_AllUsableRowsDropped(t *testing.T) {
	tbl := classicTable(
		[]string{"Venue", "", "", ""},
		[]string{"", "", "3", ""},
	)

	_, err := Validate(tbl, ContractClassic, nil)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestValidate_LossyWeeksCoercion(t *testing.T) {
	tbl := classicTable(
		[]string{"Venue", "Book the hall", "3 weeks", ""},
		[]string{"Catering", "Taste menus", "-2", ""},
		[]string{"Decor", "Order flowers", "1.5", ""},
	)

	items, err := Validate(tbl, ContractClassic, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 3.0, items[0].WeeksBefore)
	assert.Equal(t, 0.0, items[1].WeeksBefore) // negatives clamp, never fail
	assert.Equal(t, 1.5, items[2].WeeksBefore)
}

func TestValidate_OptionalColumnsAndBudget(t *testing.T) {
	tbl := classicTable(
		[]string{"Venue", "Book the hall", "12", "", "$1,200.50", "Jamie"},
		[]string{"Decor", "Order flowers", "2", "", "not a number", ""},
	)

	items, err := Validate(tbl, ContractClassic, nil)
	require.NoError(t, err)

	require.NotNil(t, items[0].BudgetEstimate)
	assert.Equal(t, 1200.50, *items[0].BudgetEstimate)
	assert.Equal(t, "Jamie", items[0].ResponsibleParty)
	assert.Nil(t, items[1].BudgetEstimate)
}

func TestValidate_TaskListContract(t *testing.T) {
	tbl := Table{
		Columns: []string{"Task", "Deadline", "Category", "Owner", "Status", "Existing Resources"},
		Rows: [][]string{
			{"Send invitations", "6", "Guests", "Sam", "in progress", "draft invite list"},
		},
	}

	items, err := Validate(tbl, ContractTaskList, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Send invitations", items[0].Description)
	assert.Equal(t, 6.0, items[0].WeeksBefore)
	assert.Equal(t, "Guests", items[0].Category)
	assert.Equal(t, "Sam", items[0].ResponsibleParty)
	// Existing Resources coalesces into notes when Notes is absent.
	assert.Equal(t, "draft invite list", items[0].Notes)
	// Status is unmapped and passes through.
	assert.Equal(t, "in progress", items[0].Extra["Status"])
}

func TestValidate_PreservesRowOrder(t *testing.T) {
	tbl := classicTable(
		[]string{"Z", "last category first", "1", ""},
		[]string{"A", "first category last", "20", ""},
	)

	items, err := Validate(tbl, ContractClassic, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"last category first", "first category last"},
		[]string{items[0].Description, items[1].Description})
}

func TestValidate_PriorityOverride(t *testing.T) {
	tbl := Table{
		Columns: []string{"category", "item", "deadline_weeks_before", "notes", "priority"},
		Rows: [][]string{
			{"Venue", "Book the hall", "12", "", "high"},
			{"Decor", "Order flowers", "2", "", "whenever"},
		},
	}

	items, err := Validate(tbl, ContractClassic, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, items[0].PriorityOverride)
	assert.Equal(t, domain.Priority(""), items[1].PriorityOverride)
}

func TestContractByName(t *testing.T) {
	c, err := ContractByName("")
	require.NoError(t, err)
	assert.Equal(t, "classic", c.Name)

	c, err = ContractByName("tasklist")
	require.NoError(t, err)
	assert.Equal(t, "tasklist", c.Name)

	_, err = ContractByName("widefmt")
	assert.Error(t, err)
}
