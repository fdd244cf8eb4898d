package mock

import "github.com/nkgc/churchdir"

var _ churchdir.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of churchdir.Extractor.
type Extractor struct {
	ExtractFn func(html string, category string) ([]*churchdir.Entry, error)
}

func (e *Extractor) Extract(html string, category string) ([]*churchdir.Entry, error) {
	return e.ExtractFn(html, category)
}
