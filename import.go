package churchdir

import (
	"context"
	"time"
)

// Import records a single scrape of a directory page into a workbook.
type Import struct {
	ID           string    `json:"id"`
	SourceURL    string    `json:"sourceUrl"`
	Category     string    `json:"category"`
	PageHash     string    `json:"pageHash"`
	WorkbookPath string    `json:"workbookPath"`
	EntryCount   int       `json:"entryCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the import contains invalid fields.
func (i *Import) Validate() error {
	if i.SourceURL == "" {
		return Errorf(EINVALID, "import source URL required")
	}
	if i.WorkbookPath == "" {
		return Errorf(EINVALID, "import workbook path required")
	}
	return nil
}

// ImportService represents a ledger of past imports.
type ImportService interface {
	// CreateImport stores the import together with the entries it appended.
	// ID, CreatedAt and EntryCount are set by the service.
	CreateImport(ctx context.Context, imp *Import, entries []*Entry) error

	// FindImportByID retrieves an import by ID.
	// Returns ENOTFOUND if the import does not exist.
	FindImportByID(ctx context.Context, id string) (*Import, error)

	// FindImports retrieves imports matching the filter, newest first.
	FindImports(ctx context.Context, filter ImportFilter) ([]*Import, error)

	// FindEntries returns the entries of an import in their original order.
	// Returns ENOTFOUND if the import does not exist.
	FindEntries(ctx context.Context, importID string) ([]*Entry, error)
}

// ImportFilter represents a filter for FindImports.
type ImportFilter struct {
	SourceURL *string `json:"sourceUrl"`
	Category  *string `json:"category"`
	PageHash  *string `json:"pageHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
