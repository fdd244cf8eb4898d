package mock

import (
	"io"

	"github.com/nkgc/churchdir"
)

var _ churchdir.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of churchdir.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, entries []*churchdir.Entry) error
}

func (r *Renderer) Render(w io.Writer, entries []*churchdir.Entry) error {
	return r.RenderFn(w, entries)
}
