package churchdir

import "io"

// Renderer presents entries to the user as a table.
type Renderer interface {
	Render(w io.Writer, entries []*Entry) error
}
