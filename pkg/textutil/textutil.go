// Package textutil formats help text for a terminal.
package textutil

import (
	"fmt"
	"io"
	"strings"
)

// Wrap splits text into lines of at most width bytes, breaking at whitespace. Runs of whitespace
// collapse into a single space. A word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Row is one line of a two-column table.
type Row struct {
	Name        string
	Description string
}

// WriteTable writes rows as a two-column table of at most width bytes. Each row is indented by
// indent spaces, descriptions are aligned past the longest name and wrapped to the remaining
// width. Rows without description only print their name.
func WriteTable(w io.Writer, rows []Row, indent, width int) error {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r.Name))
	}
	prefix := strings.Repeat(" ", indent)
	column := indent + maxLen + 4
	wrapWidth := max(width-column, 20)

	for _, r := range rows {
		lines := Wrap(r.Description, wrapWidth)
		if len(lines) == 0 {
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, r.Name); err != nil {
				return err
			}
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(r.Name)+4)
		if _, err := fmt.Fprintf(w, "%s%s%s%s\n", prefix, r.Name, padding, lines[0]); err != nil {
			return err
		}
		indentPadding := strings.Repeat(" ", column)
		for _, line := range lines[1:] {
			if _, err := fmt.Fprintf(w, "%s%s\n", indentPadding, line); err != nil {
				return err
			}
		}
	}
	return nil
}
