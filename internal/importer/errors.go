package importer

import (
	"fmt"
	"strings"
)

// SchemaError indicates the template header is missing required columns.
// It is fatal to the run: no enrichment work happens after it.
type SchemaError struct {
	Contract string
	Missing  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("template does not match the %q schema: missing required columns %s",
		e.Contract, strings.Join(e.Missing, ", "))
}

// EmptyInputError indicates the template contained no usable data rows.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "template has no usable rows"
}
