package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pantry"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Recipes  pantry.RecipeService
	Sitemaps pantry.SitemapService

	// Fetcher, when set, replaces the fetcher built from flags.
	Fetcher pantry.Fetcher

	// Logger is set with --verbose. Nil disables logging decorators.
	Logger *slog.Logger

	// Explicit holds the names of flags given on the command line.
	Explicit map[string]bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Harvest HarvestCmd `cmd:"" help:"Harvest recipe records from URLs"`
	List    ListCmd    `cmd:"" help:"List stored recipes"`
	Show    ShowCmd    `cmd:"" help:"Print one stored recipe as JSON"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	URLs     []string `arg:"" optional:"" name:"url" help:"Recipe page URLs"`
	URLsFile string   `name:"urls-file" type:"existingfile" help:"File with one URL per line (# starts a comment)"`
	Sitemap  string   `help:"Discover URLs from this site's sitemap"`
	Filter   []string `short:"F" help:"Keep only sitemap URLs matching regex (repeatable)"`
	Config   string   `type:"existingfile" help:"YAML run file"`

	Genus   string `help:"Genus label stamped on every record"`
	Family  string `help:"Family label stamped on every record"`
	Species string `help:"Species label stamped on every record"`

	Header    []string `help:"Header candidate as 'Name: value' pairs separated by ';', tried in order (repeatable)"`
	Browser   bool     `help:"Render pages in headless Chrome"`
	ChromeBin string   `name:"chrome-bin" env:"PANTRY_CHROME" help:"Chrome binary for --browser"`
	NoSandbox bool     `name:"no-sandbox" help:"Run Chrome without its sandbox (needed as root in containers)"`

	Concurrency int           `short:"c" default:"1" help:"URLs harvested at once"`
	Timeout     time.Duration `default:"10s" help:"Timeout per retrieval attempt"`
	Delay       time.Duration `default:"500ms" help:"Pause after every retrieval attempt"`
	RPS         float64       `name:"rps" help:"Per-host attempts per second, replaces --delay"`

	Fallback       string   `default:"classes" enum:"classes,trafilatura,readability,none" help:"Extractor for instructions when structured data has none (${enum})"`
	RepairJSONLD   bool     `name:"repair-jsonld" help:"Repair malformed JSON-LD before giving up on it"`
	DetectLanguage bool     `name:"detect-language" help:"Detect the language when the page declares none"`
	Languages      []string `help:"Candidate ISO 639-1 codes for --detect-language (default all)"`

	Format string `default:"jsonl" enum:"jsonl,csv,none" help:"Output format (${enum})"`
	Out    string `short:"o" help:"Output file (default stdout)"`
	DB     bool   `name:"db" help:"Also store records in the recipe database"`
	Resume bool   `help:"Reuse records already in the recipe database"`

	Verbose bool `short:"v" help:"Log every attempt and record"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Family  string `help:"Only recipes with this family label"`
	Species string `help:"Only recipes with this species label"`
	Limit   int    `short:"n" help:"Maximum number of recipes"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" help:"Recipe page URL"`
}
