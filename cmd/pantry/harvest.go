package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/fs"
	"github.com/fwojciec/pantry/goquery"
	"github.com/fwojciec/pantry/harvest"
	pantryhttp "github.com/fwojciec/pantry/http"
	"github.com/fwojciec/pantry/lingua"
	"github.com/fwojciec/pantry/readability"
	"github.com/fwojciec/pantry/rod"
	pslog "github.com/fwojciec/pantry/slog"
	"github.com/fwojciec/pantry/trafilatura"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	return nil
}

func (c *HarvestCmd) run(deps *Dependencies) error {
	var rf *RunFile
	if c.Config != "" {
		var err error
		if rf, err = LoadRunFile(c.Config); err != nil {
			return err
		}
	}

	s, err := c.resolve(rf, deps.Explicit)
	if err != nil {
		return err
	}

	urls, err := c.collectURLs(deps, s.urls)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return pantry.Errorf(pantry.EINVALID, "no URLs to harvest. Pass URLs, --urls-file, --config or --sitemap")
	}

	assembler, closeFetcher, err := c.assembler(deps, s)
	if err != nil {
		return err
	}
	defer closeFetcher()

	sinks, err := c.sinks(deps)
	if err != nil {
		return err
	}

	h := &harvest.Harvester{
		Assembler:   assembler,
		Concurrency: s.concurrency,
		Store:       deps.Recipes,
		Resume:      c.Resume,
	}

	recipes, err := h.Harvest(deps.Ctx, urls, progressPrinter(deps))
	if err != nil {
		closeAll(sinks)
		return err
	}

	for _, r := range recipes {
		for _, w := range sinks {
			if err := w.WriteRecipe(deps.Ctx, r); err != nil {
				closeAll(sinks)
				return fmt.Errorf("writing %s: %w", r.URL, err)
			}
		}
	}
	var errs []error
	for _, w := range sinks {
		errs = append(errs, w.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	missing := 0
	for _, r := range recipes {
		if r.Instructions == "" {
			missing++
		}
	}
	fmt.Fprintf(deps.Stderr, "Harvested %d recipes (%d without instructions)\n", len(recipes), missing)
	return deps.Ctx.Err()
}

// collectURLs gathers URLs in order: arguments and run file, then the URL
// file, then sitemap discovery.
func (c *HarvestCmd) collectURLs(deps *Dependencies, urls []string) ([]string, error) {
	if c.URLsFile != "" {
		f, err := os.Open(c.URLsFile)
		if err != nil {
			return nil, fmt.Errorf("opening URL file: %w", err)
		}
		fromFile, err := ReadURLs(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, fromFile...)
	}

	if c.Sitemap != "" {
		filter, err := pantry.NewURLFilter(c.Filter...)
		if err != nil {
			return nil, err
		}
		found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
		if err != nil {
			return nil, fmt.Errorf("sitemap discovery: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Found %d URLs in sitemap\n", len(found))
		urls = append(urls, found...)
	} else if len(c.Filter) > 0 {
		return nil, pantry.Errorf(pantry.EINVALID, "--filter requires --sitemap")
	}
	return urls, nil
}

// assembler wires the per-URL pipeline. The returned func releases the
// fetcher.
func (c *HarvestCmd) assembler(deps *Dependencies, s settings) (*harvest.Assembler, func(), error) {
	fetcher := deps.Fetcher
	release := func() {}
	if fetcher == nil {
		if c.Browser {
			var opts []rod.ManagerOption
			if c.ChromeBin != "" {
				opts = append(opts, rod.WithBrowserBin(c.ChromeBin))
			}
			if c.NoSandbox {
				opts = append(opts, rod.WithNoSandbox())
			}
			manager, err := rod.NewBrowserManager(opts...)
			if err != nil {
				fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return nil, nil, fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rod.NewFetcher(manager, rod.WithFetchTimeout(s.timeout))
		} else {
			fetcher = pantryhttp.NewFetcher(pantryhttp.WithTimeout(s.timeout))
		}
		f := fetcher
		release = func() { _ = f.Close() }
	}
	if deps.Logger != nil {
		fetcher = pslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	var throttle pantry.Throttle = harvest.NewFixedDelay(s.delay)
	if c.RPS > 0 {
		throttle = harvest.NewRateThrottle(c.RPS)
	}

	a := &harvest.Assembler{
		Pages: &harvest.PageFetcher{
			Fetcher:  fetcher,
			Language: goquery.NewLanguageParser(),
			Throttle: throttle,
			Headers:  s.headers,
			Timeout:  s.timeout,
		},
		Selector:   goquery.NewJSONLDSelector(),
		Fallback:   fallbackExtractor(c.Fallback),
		Taxonomy:   s.taxonomy,
		RepairJSON: c.RepairJSONLD,
	}

	if c.DetectLanguage {
		d, err := lingua.NewDetector(c.Languages...)
		if err != nil {
			release()
			return nil, nil, err
		}
		a.Detector = d
	}

	if deps.Logger != nil {
		logger := deps.Logger
		a.Trace = func(url string, st harvest.State) {
			logger.Info("state", "url", url, "state", st.String())
		}
	}
	return a, release, nil
}

func fallbackExtractor(name string) pantry.FallbackExtractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	case "none":
		return nil
	default:
		return goquery.NewRegionExtractor()
	}
}

// sinks opens the configured record writers.
func (c *HarvestCmd) sinks(deps *Dependencies) ([]pantry.RecipeWriter, error) {
	var sinks []pantry.RecipeWriter

	switch {
	case c.Format == "none":
	case c.Out != "":
		w, err := fs.Create(c.Out, c.Format)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, w)
	default:
		w, err := fs.New(deps.Stdout, c.Format)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, w)
	}

	if c.DB && deps.Recipes != nil {
		if w, ok := deps.Recipes.(pantry.RecipeWriter); ok {
			sinks = append(sinks, w)
		}
	}

	if deps.Logger != nil {
		for i, w := range sinks {
			sinks[i] = pslog.NewLoggingRecipeWriter(w, deps.Logger)
		}
	}
	return sinks, nil
}

func progressPrinter(deps *Dependencies) harvest.ProgressFunc {
	return func(ev harvest.ProgressEvent) {
		switch ev.Type {
		case harvest.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Harvesting %d URLs\n", ev.Total)
		case harvest.ProgressCompleted:
			suffix := ""
			if ev.Reused {
				suffix = " (stored)"
			}
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s%s\n", ev.Completed, ev.Total, ev.URL, suffix)
		case harvest.ProgressFinished:
		}
	}
}

func closeAll(sinks []pantry.RecipeWriter) {
	for _, w := range sinks {
		_ = w.Close()
	}
}

// errorText returns the user-facing message for domain errors and the full
// error text otherwise.
func errorText(err error) string {
	if code := pantry.ErrorCode(err); code != pantry.EINTERNAL {
		return pantry.ErrorMessage(err)
	}
	return err.Error()
}
