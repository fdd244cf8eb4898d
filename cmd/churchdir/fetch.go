package main

import (
	"fmt"
	"io"

	"github.com/nkgc/churchdir"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL, c.Category)
	if result == nil {
		printError(deps.Stderr, err)
		return err
	}

	if rerr := deps.Renderer.Render(deps.Stdout, result.Entries); rerr != nil {
		printError(deps.Stderr, rerr)
		return rerr
	}
	printSaved(deps.Stdout, result.Entries, result.Import.WorkbookPath)

	if prev := result.Previous; prev != nil {
		fmt.Fprintf(deps.Stdout, "Page unchanged since import %s (%s)\n",
			prev.ID, prev.CreatedAt.Local().Format(historyTimeLayout))
	}

	// The workbook is saved even when the ledger could not record it.
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if result.Import.ID != "" {
		fmt.Fprintf(deps.Stdout, "Recorded import %s\n", result.Import.ID)
	}
	return nil
}

// printSaved reports contacts and category rows separately.
func printSaved(w io.Writer, entries []*churchdir.Entry, path string) {
	contacts := churchdir.CountContacts(entries)
	if markers := len(entries) - contacts; markers > 0 {
		fmt.Fprintf(w, "Saved %s and %s to %s\n",
			plural(contacts, "contact"), plural(markers, "category row"), path)
		return
	}
	fmt.Fprintf(w, "Saved %s to %s\n", plural(contacts, "contact"), path)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
