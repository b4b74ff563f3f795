// Package bloom provides a probabilistic set of already harvested URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is used by FromURLs.
const DefaultFalsePositiveRate = 0.01

// Filter answers "possibly stored" or "definitely not stored" for a URL.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// FromURLs builds a filter holding every URL in urls.
func FromURLs(urls []string) *Filter {
	f := NewFilter(uint(len(urls)), DefaultFalsePositiveRate)
	for _, u := range urls {
		f.Add(u)
	}
	return f
}

// Add records a URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
