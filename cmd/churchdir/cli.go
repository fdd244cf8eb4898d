package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nkgc/churchdir"
	"github.com/nkgc/churchdir/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Imports  churchdir.ImportService
	Renderer churchdir.Renderer
	Scraper  *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each step to stderr"`

	Fetch   FetchCmd   `cmd:"" help:"Scrape a directory page into the workbook"`
	History HistoryCmd `cmd:"" help:"List recorded imports"`
	Show    ShowCmd    `cmd:"" help:"Show the entries of a recorded import"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL      string        `arg:"" optional:"" help:"Directory page URL"`
	Category string        `short:"c" help:"Category label written above the contacts"`
	Out      string        `short:"o" default:"members_list.xlsx" help:"Workbook to append to"`
	Browser  bool          `short:"b" help:"Render the page in headless Chrome before extracting"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Timeout per request"`
	NoLedger bool          `name:"no-ledger" help:"Do not record the import in the ledger"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL      string `name:"url" help:"Only imports of this source URL"`
	Category string `short:"c" help:"Only imports with this category"`
	Limit    int    `short:"n" default:"20" help:"Maximum number of imports to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Import ID"`
}

// printError writes an error line to w. Application errors show their
// message only.
func printError(w io.Writer, err error) {
	if churchdir.ErrorCode(err) == churchdir.EINTERNAL {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", churchdir.ErrorMessage(err))
}
