// Package table renders entries as a plain-text table for terminals.
package table

import (
	"io"
	"strings"

	"github.com/nkgc/churchdir"
	"github.com/rivo/uniseg"
)

// PhotoPlaceholder is shown in the photo column for contacts with a photo.
const PhotoPlaceholder = "[photo]"

const separator = " | "

// Ensure Renderer implements churchdir.Renderer at compile time.
var _ churchdir.Renderer = (*Renderer)(nil)

type align int

const (
	alignLeft align = iota
	alignCenter
)

// columnAlign lists the alignment of each column; name and postal code are centred.
var columnAlign = []align{alignLeft, alignCenter, alignLeft, alignCenter, alignLeft, alignLeft, alignLeft}

// Renderer writes entries as a seven-column table. Category markers span
// the full table width, centred.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the header row followed by one line per entry.
func (r *Renderer) Render(w io.Writer, entries []*churchdir.Entry) error {
	rows := make([][]string, 0, len(entries))
	widths := make([]int, churchdir.ColumnCount)
	for i, h := range churchdir.Headers {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, e := range entries {
		if e.IsCategory() {
			rows = append(rows, nil)
			continue
		}
		cells := e.Cells()
		if cells[0] != "" {
			cells[0] = PhotoPlaceholder
		}
		for i, c := range cells {
			widths[i] = max(widths[i], uniseg.StringWidth(c))
		}
		rows = append(rows, cells)
	}

	total := (len(widths) - 1) * len(separator)
	for _, wd := range widths {
		total += wd
	}

	var b strings.Builder
	writeLine(&b, formatRow(churchdir.Headers, widths))
	rule := make([]string, len(widths))
	for i, wd := range widths {
		rule[i] = strings.Repeat("-", wd)
	}
	writeLine(&b, strings.Join(rule, "-+-"))

	for i, e := range entries {
		if e.IsCategory() {
			writeLine(&b, pad(e.CategoryLabel(), total, alignCenter))
			continue
		}
		writeLine(&b, formatRow(rows[i], widths))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, widths[i], columnAlign[i])
	}
	return strings.Join(padded, separator)
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

// pad fills s with spaces up to width display columns.
func pad(s string, width int, a align) string {
	gap := width - uniseg.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if a == alignCenter {
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s + strings.Repeat(" ", gap)
}
