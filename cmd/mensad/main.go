package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pwalkow/mensa"
	"github.com/pwalkow/mensa/goquery"
	mensahttp "github.com/pwalkow/mensa/http"
	mensaslog "github.com/pwalkow/mensa/slog"
	"github.com/pwalkow/mensa/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the menu history store, if configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mensad"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mensad --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the menu pipeline: fetch -> extract, with logging.
	var clientOpts []mensahttp.Option
	if cli.Endpoint != "" {
		clientOpts = append(clientOpts, mensahttp.WithEndpoint(cli.Endpoint))
	}
	loader := &mensa.MenuLoader{
		Fetcher:   mensahttp.NewClient(clientOpts...),
		Extractor: goquery.NewExtractor(),
	}
	deps.Menus = mensaslog.NewLoggingMenuService(loader, logger)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		deps.Store = sqlite.NewMenuStore(m.DB)
	}

	if cmd == "history" && deps.Store == nil {
		return fmt.Errorf("history requires a database. Set --db or MENSA_DB")
	}

	return kongCtx.Run(deps)
}
