package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/nkgc/churchdir"
	"github.com/nkgc/churchdir/excelize"
	"github.com/nkgc/churchdir/goquery"
	chhttp "github.com/nkgc/churchdir/http"
	"github.com/nkgc/churchdir/rod"
	"github.com/nkgc/churchdir/scrape"
	chslog "github.com/nkgc/churchdir/slog"
	"github.com/nkgc/churchdir/sqlite"
	"github.com/nkgc/churchdir/table"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	// Run reports errors on stderr itself.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the import ledger.
	DB *sqlite.DB

	// Import ledger, exposed for end-to-end testing.
	ImportService churchdir.ImportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Renderer: table.NewRenderer(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("churchdir"),
		kong.Description("Scrape church member directories into a spreadsheet"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'churchdir --help' to see available commands")
		printError(stderr, err)
		return err
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		printError(stderr, err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)

	// Reject an empty URL before opening the ledger or launching a browser.
	if cmd == "fetch" {
		if _, err := churchdir.NormalizeURL(cli.Fetch.URL); err != nil {
			printError(stderr, err)
			return err
		}
	}

	if cmd != "fetch" || !cli.Fetch.NoLedger {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set CHURCHDIR_DB to use a different database path")
			err = fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			printError(stderr, err)
			return err
		}
		defer m.Close()

		m.ImportService = sqlite.NewImportService(m.DB)
		deps.Imports = m.ImportService
	}

	if cmd == "fetch" {
		images := chhttp.NewFetcher(chhttp.WithTimeout(cli.Fetch.Timeout))

		var fetcher churchdir.Fetcher = images
		if cli.Fetch.Browser {
			browser, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Fetch.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				err = fmt.Errorf("failed to start browser: %w", err)
				printError(stderr, err)
				return err
			}
			fetcher = browser
		}
		defer fetcher.Close()

		merger := excelize.NewMerger(
			chslog.NewLoggingImageFetcher(images, logger),
			excelize.WithLogger(logger),
		)

		deps.Scraper = &scrape.Scraper{
			Fetcher:      chslog.NewLoggingFetcher(fetcher, logger),
			Extractor:    chslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
			Merger:       chslog.NewLoggingMerger(merger, logger),
			WorkbookPath: cli.Fetch.Out,
		}
		if !cli.Fetch.NoLedger {
			deps.Scraper.Imports = m.ImportService
		}
	}

	return kongCtx.Run(deps)
}

// newLogger logs to stderr at Info when verbose, otherwise only warnings.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("CHURCHDIR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "churchdir.db"
	}
	dir := filepath.Join(home, ".churchdir")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "churchdir.db")
}
