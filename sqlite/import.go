package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nkgc/churchdir"
)

// Compile-time interface verification.
var _ churchdir.ImportService = (*ImportService)(nil)

// ImportService implements churchdir.ImportService using SQLite.
type ImportService struct {
	db *DB
}

// NewImportService creates a new ImportService.
func NewImportService(db *DB) *ImportService {
	return &ImportService{db: db}
}

// CreateImport stores the import and its entries in a single transaction.
func (s *ImportService) CreateImport(ctx context.Context, imp *churchdir.Import, entries []*churchdir.Entry) error {
	if err := imp.Validate(); err != nil {
		return err
	}

	imp.ID = uuid.New().String()
	imp.CreatedAt = time.Now().UTC()
	imp.EntryCount = len(entries)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO imports (id, source_url, category, page_hash, workbook_path, entry_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, imp.ID, imp.SourceURL, imp.Category, imp.PageHash, imp.WorkbookPath, imp.EntryCount,
		formatTime(imp.CreatedAt))
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (import_id, position, category, is_category,
			photo_url, name, church_name, postal_code, address, phone, email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		c := e.Contact
		if e.IsCategory() {
			c = &churchdir.Contact{}
		}
		if _, err := stmt.ExecContext(ctx, imp.ID, i, e.Category, e.IsCategory(),
			c.PhotoURL, c.Name, c.ChurchName, c.PostalCode, c.Address, c.Phone, c.Email); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindImportByID retrieves an import by ID.
func (s *ImportService) FindImportByID(ctx context.Context, id string) (*churchdir.Import, error) {
	imp, err := scanImport(s.db.QueryRowContext(ctx, `
		SELECT id, source_url, category, page_hash, workbook_path, entry_count, created_at
		FROM imports
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, churchdir.Errorf(churchdir.ENOTFOUND, "import not found")
	}
	if err != nil {
		return nil, err
	}
	return imp, nil
}

// FindImports retrieves imports matching the filter, newest first.
func (s *ImportService) FindImports(ctx context.Context, filter churchdir.ImportFilter) ([]*churchdir.Import, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, category, page_hash, workbook_path, entry_count, created_at FROM imports WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.PageHash != nil {
		query.WriteString(" AND page_hash = ?")
		args = append(args, *filter.PageHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []*churchdir.Import
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	return imports, rows.Err()
}

// FindEntries returns the entries of an import in their original order.
func (s *ImportService) FindEntries(ctx context.Context, importID string) ([]*churchdir.Entry, error) {
	if _, err := s.FindImportByID(ctx, importID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, is_category, photo_url, name, church_name, postal_code, address, phone, email
		FROM entries
		WHERE import_id = ?
		ORDER BY position
	`, importID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*churchdir.Entry, 0)
	for rows.Next() {
		var category string
		var isCategory bool
		var c churchdir.Contact
		if err := rows.Scan(&category, &isCategory,
			&c.PhotoURL, &c.Name, &c.ChurchName, &c.PostalCode, &c.Address, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		if isCategory {
			entries = append(entries, churchdir.NewCategoryEntry(category))
		} else {
			entries = append(entries, churchdir.NewContactEntry(&c))
		}
	}

	return entries, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanImport(row scanner) (*churchdir.Import, error) {
	var imp churchdir.Import
	var createdAt string

	if err := row.Scan(&imp.ID, &imp.SourceURL, &imp.Category, &imp.PageHash, &imp.WorkbookPath,
		&imp.EntryCount, &createdAt); err != nil {
		return nil, err
	}

	var err error
	imp.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &imp, nil
}
