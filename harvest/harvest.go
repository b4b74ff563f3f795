// Package harvest orchestrates recipe harvesting. It retrieves pages with
// header rotation and throttling, assembles one record per URL, and runs
// batches in input order.
package harvest

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/bloom"
	"golang.org/x/sync/errgroup"
)

// Harvester runs an Assembler over a batch of URLs.
type Harvester struct {
	Assembler *Assembler

	// Concurrency is the number of URLs in flight. Defaults to 1.
	Concurrency int

	// Store serves previously harvested records when Resume is set.
	Store  pantry.RecipeService
	Resume bool
}

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string

	// Reused is set when the record came from the store.
	Reused bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// Harvest returns one record per URL in input order. Individual URL
// failures never abort the batch. When ctx is canceled, URLs that were not
// started yield records carrying only their URL and taxonomy. An error is
// returned only when the resume index cannot be loaded.
func (h *Harvester) Harvest(ctx context.Context, urls []string, progress ProgressFunc) ([]pantry.Recipe, error) {
	seen, err := h.loadSeen(ctx)
	if err != nil {
		return nil, err
	}

	total := len(urls)
	results := make([]pantry.Recipe, total)
	for i, u := range urls {
		results[i] = pantry.NewRecipe(u, h.Assembler.Taxonomy)
	}

	var mu sync.Mutex
	completed := 0
	report := func(ev ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if ev.Type == ProgressCompleted {
			completed++
		}
		ev.Completed = completed
		ev.Total = total
		progress(ev)
	}

	report(ProgressEvent{Type: ProgressStarted})

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			rec, reused := h.harvestOne(ctx, seen, u)
			results[i] = rec
			report(ProgressEvent{Type: ProgressCompleted, URL: u, Reused: reused})
			return nil
		})
	}
	_ = g.Wait()

	report(ProgressEvent{Type: ProgressFinished})
	return results, nil
}

// harvestOne reuses a stored record only when it has instructions; records
// left empty by an earlier failure are harvested again. Reused records carry
// this run's taxonomy.
func (h *Harvester) harvestOne(ctx context.Context, seen *bloom.Filter, url string) (pantry.Recipe, bool) {
	if seen != nil && seen.Test(url) {
		if rec, err := h.Store.FindRecipeByURL(ctx, url); err == nil && rec.Instructions != "" {
			tax := h.Assembler.Taxonomy
			rec.PageGenus, rec.PageFamily, rec.PageSpecies = tax.Genus, tax.Family, tax.Species
			return rec, true
		}
	}
	return h.Assembler.Assemble(ctx, url), false
}

// loadSeen indexes stored URLs. A nil filter disables resume.
func (h *Harvester) loadSeen(ctx context.Context) (*bloom.Filter, error) {
	if !h.Resume || h.Store == nil {
		return nil, nil
	}
	urls, err := h.Store.ListURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stored URLs: %w", err)
	}
	return bloom.FromURLs(urls), nil
}
