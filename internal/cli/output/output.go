// Package output renders CLI results as borderless tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column defines how to render one field of a row in the table view.
type Column[T any] struct {
	// Header is the column title.
	Header string
	// Value extracts and formats the cell value from a row.
	Value func(row T) string
}

// Print renders the rows in the requested format, "table" (default) or "json".
func Print[T any](w io.Writer, rows []T, columns []Column[T], format string) error {
	if format == "json" {
		return printJSON(w, rows)
	}
	return printTable(w, rows, columns)
}

// PrintJSON renders any JSON-marshalable value, not just a slice of rows.
func PrintJSON(w io.Writer, data any) error {
	return printJSON(w, data)
}

func printJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printTable[T any](w io.Writer, rows []T, columns []Column[T]) error {
	if len(rows) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.Border{}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(3)
			}
			return lipgloss.NewStyle().PaddingRight(3)
		})

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	t.Headers(headers...)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = col.Value(row)
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
