package main

import (
	"fmt"

	"github.com/nkgc/churchdir"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	imp, err := deps.Imports.FindImportByID(deps.Ctx, c.ID)
	if err != nil {
		if churchdir.ErrorCode(err) == churchdir.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: import %q not found. Use 'churchdir history' to list imports.\n", c.ID)
			return err
		}
		printError(deps.Stderr, err)
		return err
	}

	entries, err := deps.Imports.FindEntries(deps.Ctx, imp.ID)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s  (%d contacts, workbook %s)\n\n",
		imp.SourceURL, imp.CreatedAt.Local().Format(historyTimeLayout), churchdir.CountContacts(entries), imp.WorkbookPath)

	if err := deps.Renderer.Render(deps.Stdout, entries); err != nil {
		printError(deps.Stderr, err)
		return err
	}
	return nil
}
