package churchdir

import "context"

// SheetName is the name of the worksheet created for new workbooks.
const SheetName = "Members"

// DefaultWorkbookPath is where entries are stored unless overridden.
const DefaultWorkbookPath = "members_list.xlsx"

// Merger appends entries to a persistent spreadsheet.
type Merger interface {
	// Merge appends one row per entry below the existing content of the
	// workbook at path, creating it with a header row when it does not
	// exist. Existing rows are never modified or reordered.
	// Returns an error if path exists but is not a readable workbook.
	Merge(ctx context.Context, entries []*Entry, path string) error
}
