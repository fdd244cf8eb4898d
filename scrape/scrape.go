// Package scrape runs a directory page through fetch, extract and merge.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/nkgc/churchdir"
)

// Scraper orchestrates a single scrape of one directory page into a workbook.
// Imports is optional; when nil no ledger record is written.
type Scraper struct {
	Fetcher      churchdir.Fetcher
	Extractor    churchdir.Extractor
	Merger       churchdir.Merger
	Imports      churchdir.ImportService
	WorkbookPath string
}

// Result holds the outcome of a scrape. Previous is the latest earlier
// import of the same URL whose page body was identical, if the ledger has one.
type Result struct {
	Import   *churchdir.Import
	Entries  []*churchdir.Entry
	Previous *churchdir.Import
}

// Scrape fetches rawURL, extracts its contacts under category and appends
// them to the workbook. If the ledger cannot record the import, the result
// is returned together with the error since the workbook is already saved.
func (s *Scraper) Scrape(ctx context.Context, rawURL, category string) (*Result, error) {
	pageURL, err := churchdir.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	entries, err := s.Extractor.Extract(html, category)
	if err != nil {
		return nil, err
	}
	resolvePhotoURLs(pageURL, entries)

	path := s.WorkbookPath
	if path == "" {
		path = churchdir.DefaultWorkbookPath
	}
	if err := s.Merger.Merge(ctx, entries, path); err != nil {
		return nil, err
	}

	imp := &churchdir.Import{
		SourceURL:    pageURL,
		Category:     category,
		PageHash:     ComputeHash(html),
		WorkbookPath: path,
		EntryCount:   len(entries),
	}
	result := &Result{Import: imp, Entries: entries}

	if s.Imports != nil {
		prev, err := s.Imports.FindImports(ctx, churchdir.ImportFilter{
			SourceURL: &imp.SourceURL,
			PageHash:  &imp.PageHash,
			Limit:     1,
		})
		if err != nil {
			return result, fmt.Errorf("look up earlier imports: %w", err)
		}
		if len(prev) > 0 {
			result.Previous = prev[0]
		}

		if err := s.Imports.CreateImport(ctx, imp, entries); err != nil {
			return result, fmt.Errorf("record import: %w", err)
		}
	}

	return result, nil
}

// ComputeHash returns the hex xxhash of a page body.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// resolvePhotoURLs rewrites relative photo URLs against the page URL.
// Unparseable URLs are left as they are.
func resolvePhotoURLs(pageURL string, entries []*churchdir.Entry) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsCategory() || e.Contact.PhotoURL == "" {
			continue
		}
		ref, err := url.Parse(e.Contact.PhotoURL)
		if err != nil {
			continue
		}
		e.Contact.PhotoURL = base.ResolveReference(ref).String()
	}
}
