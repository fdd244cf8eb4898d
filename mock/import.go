package mock

import (
	"context"

	"github.com/nkgc/churchdir"
)

var _ churchdir.ImportService = (*ImportService)(nil)

// ImportService is a mock implementation of churchdir.ImportService.
type ImportService struct {
	CreateImportFn   func(ctx context.Context, imp *churchdir.Import, entries []*churchdir.Entry) error
	FindImportByIDFn func(ctx context.Context, id string) (*churchdir.Import, error)
	FindImportsFn    func(ctx context.Context, filter churchdir.ImportFilter) ([]*churchdir.Import, error)
	FindEntriesFn    func(ctx context.Context, importID string) ([]*churchdir.Entry, error)
}

func (s *ImportService) CreateImport(ctx context.Context, imp *churchdir.Import, entries []*churchdir.Entry) error {
	return s.CreateImportFn(ctx, imp, entries)
}

func (s *ImportService) FindImportByID(ctx context.Context, id string) (*churchdir.Import, error) {
	return s.FindImportByIDFn(ctx, id)
}

func (s *ImportService) FindImports(ctx context.Context, filter churchdir.ImportFilter) ([]*churchdir.Import, error) {
	return s.FindImportsFn(ctx, filter)
}

func (s *ImportService) FindEntries(ctx context.Context, importID string) ([]*churchdir.Entry, error) {
	return s.FindEntriesFn(ctx, importID)
}
