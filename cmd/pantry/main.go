package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pantry"
	pantryhttp "github.com/fwojciec/pantry/http"
	pslog "github.com/fwojciec/pantry/slog"
	"github.com/fwojciec/pantry/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher overrides the fetcher built from harvest flags.
	Fetcher pantry.Fetcher

	// Sitemaps overrides the HTTP sitemap service.
	Sitemaps pantry.SitemapService
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
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: m.Fetcher,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pantry"),
		kong.Description("Harvest structured recipe records from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pantry --help' to see available commands")
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
	deps.Explicit = explicitFlags(kongCtx)

	if cmd == "harvest" && cli.Harvest.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	deps.Sitemaps = m.Sitemaps
	if deps.Sitemaps == nil {
		deps.Sitemaps = pantryhttp.NewSitemapService(nil)
	}
	if deps.Logger != nil {
		deps.Sitemaps = pslog.NewLoggingSitemapService(deps.Sitemaps, deps.Logger)
	}

	if cmd != "harvest" || cli.Harvest.DB || cli.Harvest.Resume {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PANTRY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Recipes = sqlite.NewRecipeService(m.DB)
	}

	return kongCtx.Run(deps)
}

// explicitFlags returns the names of the flags given on the command line,
// as opposed to those holding their defaults.
func explicitFlags(kctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, p := range kctx.Path {
		if p.Flag != nil {
			set[p.Flag.Name] = true
		}
	}
	return set
}

func defaultDBPath() string {
	if path := os.Getenv("PANTRY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pantry.db"
	}
	dir := filepath.Join(home, ".pantry")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pantry.db")
}
