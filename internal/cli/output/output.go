// Package output renders command results as a table, JSON or plain text.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Mode selects the rendering.
type Mode string

// Supported modes.
const (
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModePlain Mode = "plain"
)

// Report is one command result. Header and Rows drive table and plain
// output; Data is what JSON mode encodes.
type Report struct {
	Title  string
	Header []string
	Rows   [][]any
	Footer []string
	Data   any
}

// Renderer writes reports to w.
type Renderer struct {
	w    io.Writer
	mode Mode
}

// NewRenderer returns a renderer for mode. Unknown modes render tables.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	return &Renderer{w: w, mode: mode}
}

// Mode reports the active mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Render writes rep in the configured mode.
func (r *Renderer) Render(rep Report) error {
	switch r.mode {
	case ModeJSON:
		return r.renderJSON(rep)
	case ModePlain:
		return r.renderPlain(rep)
	default:
		return r.renderTable(rep)
	}
}

func (r *Renderer) renderTable(rep Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	if rep.Title != "" {
		t.SetTitle(rep.Title)
	}

	headerRow := make(table.Row, len(rep.Header))
	for i, col := range rep.Header {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)
	for _, row := range rep.Rows {
		t.AppendRow(formatRow(row))
	}
	if len(rep.Footer) > 0 {
		footer := make(table.Row, len(rep.Footer))
		for i, v := range rep.Footer {
			footer[i] = v
		}
		t.AppendFooter(footer)
	}
	t.Render()

	return nil
}

func (r *Renderer) renderJSON(rep Report) error {
	data := rep.Data
	if data == nil {
		rows := make([]map[string]any, 0, len(rep.Rows))
		for _, row := range rep.Rows {
			m := make(map[string]any, len(rep.Header))
			for i, col := range rep.Header {
				if i < len(row) {
					m[col] = row[i]
				}
			}
			rows = append(rows, m)
		}
		data = rows
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (r *Renderer) renderPlain(rep Report) error {
	for _, row := range rep.Rows {
		cells := formatRow(row)
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprint(c)
		}
		if _, err := fmt.Fprintln(r.w, strings.Join(parts, "\t")); err != nil {
			return err
		}
	}
	if len(rep.Footer) > 0 {
		if _, err := fmt.Fprintln(r.w, strings.Join(rep.Footer, "\t")); err != nil {
			return err
		}
	}

	return nil
}

// formatRow turns slices into space-joined text so cells stay one line.
func formatRow(row []any) table.Row {
	out := make(table.Row, len(row))
	for i, v := range row {
		out[i] = formatValue(v)
	}
	return out
}

func formatValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(x, " ")
	case []int:
		return joinAny(x)
	case []int64:
		return joinAny(x)
	default:
		return v
	}
}

func joinAny[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
