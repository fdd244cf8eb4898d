package main

import (
	"fmt"

	"github.com/nkgc/churchdir"
)

const historyTimeLayout = "2006-01-02 15:04"

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := churchdir.ImportFilter{Limit: c.Limit}
	if c.URL != "" {
		url, err := churchdir.NormalizeURL(c.URL)
		if err != nil {
			printError(deps.Stderr, err)
			return err
		}
		filter.SourceURL = &url
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	imports, err := deps.Imports.FindImports(deps.Ctx, filter)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(imports) == 0 {
		fmt.Fprintln(deps.Stdout, "No imports recorded. Use 'churchdir fetch' to scrape a page.")
		return nil
	}

	for _, imp := range imports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d  %s  %s  %s\n",
			imp.ID, imp.CreatedAt.Local().Format(historyTimeLayout), imp.EntryCount,
			orDash(imp.PageHash), orDash(imp.Category), imp.SourceURL)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
