// Package excelize implements churchdir.Merger on xlsx workbooks.
package excelize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/nkgc/churchdir"
	"github.com/rivo/uniseg"
	"github.com/xuri/excelize/v2"

	// Decoders for photo dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DefaultPhotoSize is the side length, in pixels, of embedded photos.
const DefaultPhotoSize = 80

// maxColumnWidth is the widest column Excel accepts.
const maxColumnWidth = 255.0

// Ensure Merger implements churchdir.Merger at compile time.
var _ churchdir.Merger = (*Merger)(nil)

// Merger appends entries to an xlsx workbook, embedding contact photos.
//
// Photo fetches are isolated: a photo that cannot be downloaded, decoded or
// embedded is logged and the row is written without it.
type Merger struct {
	images    churchdir.ImageFetcher
	logger    *slog.Logger
	photoSize int
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger used to report skipped photos.
func WithLogger(l *slog.Logger) Option {
	return func(m *Merger) {
		m.logger = l
	}
}

// WithPhotoSize sets the embedded photo size in pixels.
// Defaults to DefaultPhotoSize if not specified.
func WithPhotoSize(px int) Option {
	return func(m *Merger) {
		m.photoSize = px
	}
}

// NewMerger creates a Merger that downloads photos with images.
// A nil images fetcher disables photo embedding.
func NewMerger(images churchdir.ImageFetcher, opts ...Option) *Merger {
	m := &Merger{
		images:    images,
		logger:    slog.New(slog.DiscardHandler),
		photoSize: DefaultPhotoSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge appends entries below the existing rows of the workbook at path and
// saves it. The workbook is created with a header row if it does not exist.
// Nothing is written if any step fails.
func (m *Merger) Merge(ctx context.Context, entries []*churchdir.Entry, path string) error {
	f, sheet, row, err := openWorkbook(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.writeRow(ctx, f, sheet, row, e); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		row++
	}

	if err := fitColumns(f, sheet); err != nil {
		return fmt.Errorf("fitting columns: %w", err)
	}

	return save(f, path)
}

// openWorkbook opens the workbook at path, or creates one with a header row.
// It returns the sheet to append to and the first free row.
func openWorkbook(path string) (*excelize.File, string, int, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), churchdir.SheetName); err != nil {
			f.Close()
			return nil, "", 0, fmt.Errorf("naming sheet: %w", err)
		}
		header := make([]any, len(churchdir.Headers))
		for i, h := range churchdir.Headers {
			header[i] = h
		}
		if err := f.SetSheetRow(churchdir.SheetName, "A1", &header); err != nil {
			f.Close()
			return nil, "", 0, fmt.Errorf("writing header: %w", err)
		}
		return f, churchdir.SheetName, 2, nil
	}
	if err != nil {
		return nil, "", 0, fmt.Errorf("checking workbook: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", 0, churchdir.Errorf(churchdir.EINVALID, "cannot open workbook %s: %v", path, err)
	}

	sheet := targetSheet(f)
	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, "", 0, churchdir.Errorf(churchdir.EINVALID, "cannot read sheet %q of %s: %v", sheet, path, err)
	}
	return f, sheet, len(rows) + 1, nil
}

// targetSheet prefers the members sheet and falls back to the active one.
func targetSheet(f *excelize.File) string {
	if idx, err := f.GetSheetIndex(churchdir.SheetName); err == nil && idx >= 0 {
		return churchdir.SheetName
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}

func (m *Merger) writeRow(ctx context.Context, f *excelize.File, sheet string, row int, e *churchdir.Entry) error {
	cells := e.Cells()

	if e.IsCategory() {
		values := make([]any, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	values := make([]any, len(cells)-1)
	for i, c := range cells[1:] {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}

	if e.Contact.PhotoURL != "" {
		m.embedPhoto(ctx, f, sheet, row, e.Contact.PhotoURL)
	}
	return nil
}

// embedPhoto places the photo at url into column A of row. Failures are
// logged and leave the cell empty.
func (m *Merger) embedPhoto(ctx context.Context, f *excelize.File, sheet string, row int, url string) {
	if m.images == nil {
		return
	}

	data, err := m.images.FetchImage(ctx, url)
	if err != nil {
		m.logger.Warn("skipping photo", "url", url, "row", row, "err", err)
		return
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		m.logger.Warn("skipping photo", "url", url, "row", row, "err", err)
		return
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		m.logger.Warn("skipping photo", "url", url, "row", row, "err", "empty image")
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return
	}
	size := float64(m.photoSize)
	err = f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
		Extension: "." + format,
		File:      data,
		Format: &excelize.GraphicOptions{
			ScaleX: size / float64(cfg.Width),
			ScaleY: size / float64(cfg.Height),
		},
	})
	if err != nil {
		m.logger.Warn("skipping photo", "url", url, "row", row, "err", err)
		return
	}

	// Enlarge the row so the photo fits.
	if err := f.SetRowHeight(sheet, row, size); err != nil {
		m.logger.Warn("row height", "row", row, "err", err)
	}
}

// fitColumns sets each column's width to its widest text cell plus two.
func fitColumns(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	widths := make([]int, churchdir.ColumnCount)
	for _, r := range rows {
		for i, v := range r {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], textWidth(v))
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := min(float64(w+2), maxColumnWidth)
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// textWidth is the display width of s, counting East Asian wide characters
// as two columns and never less than the character count.
func textWidth(s string) int {
	return max(uniseg.StringWidth(s), utf8.RuneCountInString(s))
}

// workbookMode is the permission of newly created workbooks.
const workbookMode fs.FileMode = 0644

// save writes the workbook next to path and renames it into place. An
// existing workbook keeps its permissions.
func save(f *excelize.File, path string) error {
	mode := workbookMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp workbook: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting workbook mode: %w", err)
	}
	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing workbook: %w", err)
	}
	return nil
}
