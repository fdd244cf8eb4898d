package mock

import (
	"context"

	"github.com/nkgc/churchdir"
)

var _ churchdir.Merger = (*Merger)(nil)

// Merger is a mock implementation of churchdir.Merger.
type Merger struct {
	MergeFn func(ctx context.Context, entries []*churchdir.Entry, path string) error
}

func (m *Merger) Merge(ctx context.Context, entries []*churchdir.Entry, path string) error {
	return m.MergeFn(ctx, entries, path)
}
