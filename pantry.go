// Package pantry provides a best-effort recipe extractor for the web.
// It fetches recipe pages, reads schema.org Recipe JSON-LD when the page
// carries it, falls back to scraping known content regions when it does not,
// and collects one flat record per URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package pantry
