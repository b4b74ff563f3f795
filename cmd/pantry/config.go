package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
	"gopkg.in/yaml.v3"
)

// RunFile is the YAML run file given with --config.
//
//	taxonomy:
//	  genus: blog
//	  family: soups
//	headers:
//	  - User-Agent: Mozilla/5.0
//	  - {}
//	urls:
//	  - https://example.com/soup
//	delay: 1s
//	timeout: 15s
//	concurrency: 2
type RunFile struct {
	Taxonomy    pantry.Taxonomy    `yaml:"taxonomy"`
	Headers     []pantry.HeaderSet `yaml:"headers"`
	URLs        []string           `yaml:"urls"`
	Delay       *time.Duration     `yaml:"delay"`
	Timeout     *time.Duration     `yaml:"timeout"`
	Concurrency *int               `yaml:"concurrency"`
}

// LoadRunFile reads and validates a run file. Unknown keys are rejected.
func LoadRunFile(path string) (*RunFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening run file: %w", err)
	}
	defer f.Close()

	var rf RunFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid run file %s: %v", path, err)
	}
	if rf.Concurrency != nil && *rf.Concurrency < 1 {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid run file %s: concurrency must be at least 1", path)
	}
	if rf.Delay != nil && *rf.Delay < 0 {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid run file %s: delay must not be negative", path)
	}
	if rf.Timeout != nil && *rf.Timeout <= 0 {
		return nil, pantry.Errorf(pantry.EINVALID, "invalid run file %s: timeout must be positive", path)
	}
	return &rf, nil
}

// ParseHeaderSet parses "Name: value; Other: value" into a header
// candidate. An empty string is the empty candidate.
func ParseHeaderSet(s string) (pantry.HeaderSet, error) {
	set := pantry.HeaderSet{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, pantry.Errorf(pantry.EINVALID, "invalid header %q: want 'Name: value'", part)
		}
		set[name] = strings.TrimSpace(value)
	}
	return set, nil
}

// ReadURLs reads one URL per line. Blank lines and lines starting with #
// are skipped.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading URLs: %w", err)
	}
	return urls, nil
}

// settings are the effective harvest parameters after merging the run file
// with flags.
type settings struct {
	taxonomy    pantry.Taxonomy
	headers     []pantry.HeaderSet
	urls        []string
	delay       time.Duration
	timeout     time.Duration
	concurrency int
}

// resolve merges flags over the run file. A flag wins when it was given on
// the command line; otherwise the run file value is used when present, and
// the flag default last.
func (c *HarvestCmd) resolve(rf *RunFile, explicit map[string]bool) (settings, error) {
	if rf == nil {
		rf = &RunFile{}
	}
	pick := func(flag, fromFlag, fromFile string) string {
		if explicit[flag] || fromFile == "" {
			return fromFlag
		}
		return fromFile
	}

	s := settings{
		taxonomy: pantry.Taxonomy{
			Genus:   pick("genus", c.Genus, rf.Taxonomy.Genus),
			Family:  pick("family", c.Family, rf.Taxonomy.Family),
			Species: pick("species", c.Species, rf.Taxonomy.Species),
		},
		urls:        append(append([]string(nil), c.URLs...), rf.URLs...),
		delay:       c.Delay,
		timeout:     c.Timeout,
		concurrency: c.Concurrency,
	}

	if len(c.Header) > 0 {
		for _, h := range c.Header {
			set, err := ParseHeaderSet(h)
			if err != nil {
				return settings{}, err
			}
			s.headers = append(s.headers, set)
		}
	} else {
		s.headers = rf.Headers
	}

	if !explicit["delay"] && rf.Delay != nil {
		s.delay = *rf.Delay
	}
	if !explicit["timeout"] && rf.Timeout != nil {
		s.timeout = *rf.Timeout
	}
	if !explicit["concurrency"] && rf.Concurrency != nil {
		s.concurrency = *rf.Concurrency
	}

	if s.concurrency < 1 {
		return settings{}, pantry.Errorf(pantry.EINVALID, "--concurrency must be at least 1")
	}
	if s.timeout <= 0 {
		return settings{}, pantry.Errorf(pantry.EINVALID, "--timeout must be positive")
	}
	if s.delay < 0 {
		return settings{}, pantry.Errorf(pantry.EINVALID, "--delay must not be negative")
	}
	return s, nil
}
