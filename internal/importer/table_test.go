package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	data := "category,item,deadline_weeks_before,notes\n" +
		"Venue,Book the hall,12,deposit due early\n" +
		"Decor,Order flowers,2,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"category", "item", "deadline_weeks_before", "notes"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Book the hall", tbl.Rows[0][1])
}

func TestLoad_CSV_RaggedRowsTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	data := "category,item,deadline_weeks_before,notes\nVenue,Book the hall,12\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	// Missing trailing cells read as blanks downstream.
	assert.Equal(t, "", cell(tbl.Rows[0], 3))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("plan.numbers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported template format")
}
