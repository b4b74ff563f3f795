package rod

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the number of rendered pages after which a fresh
// browser replaces the running one.
const DefaultMaxPages = 75

// errManagerClosed is returned by Page after Close.
var errManagerClosed = errors.New("browser manager closed")

// session is one running Chrome process and the connection to it.
type session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func (s *session) shutdown() error {
	if s == nil {
		return nil
	}
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}

// BrowserManager hands out tabs on a headless Chrome and restarts Chrome
// after MaxPages tabs, because its memory use grows with every page even
// when tabs are closed. It is safe for concurrent use.
type BrowserManager struct {
	mu      sync.Mutex
	current *session
	served  atomic.Int64
	closed  atomic.Bool

	maxPages  int64
	bin       string
	noSandbox bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many tabs a browser serves before it is replaced.
// Values below 1 are ignored.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// WithBrowserBin runs the Chrome binary at path instead of the one rod
// finds or downloads.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which containers running as
// root require.
func WithNoSandbox() ManagerOption {
	return func(bm *BrowserManager) {
		bm.noSandbox = true
	}
}

// NewBrowserManager starts Chrome. Call Close to stop it.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	s, err := bm.start()
	if err != nil {
		return nil, err
	}
	bm.current = s
	return bm, nil
}

// Page opens a blank tab. The release func closes the tab and counts it
// toward the browser's page budget.
func (bm *BrowserManager) Page() (*rod.Page, func(), error) {
	if bm.closed.Load() {
		return nil, nil, errManagerClosed
	}

	page, err := bm.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, fmt.Errorf("opening page: %w", err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = page.Close()
			bm.IncrementPageCount()
		})
	}
	return page, release, nil
}

// Browser returns the running browser, replacing it first when its page
// budget is spent.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.served.Load() >= bm.maxPages {
		bm.replace()
	}
	if bm.current == nil {
		return nil
	}
	return bm.current.browser
}

// IncrementPageCount records one served tab.
func (bm *BrowserManager) IncrementPageCount() {
	bm.served.Add(1)
}

// Close stops Chrome. Later calls are no-ops.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	err := bm.current.shutdown()
	bm.current = nil
	return err
}

// LauncherPID returns the Chrome process ID, or 0 after Close.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.current == nil || bm.current.launcher == nil {
		return 0
	}
	return bm.current.launcher.PID()
}

func (bm *BrowserManager) start() (*session, error) {
	l := launcher.New().
		Headless(true).
		Leakless(true).
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("disable-renderer-backgrounding").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		NoSandbox(bm.noSandbox)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &session{launcher: l, browser: browser}, nil
}

// replace swaps in a fresh browser. When the new one fails to start the
// old one stays in service and the budget is not reset, so the next call
// tries again. Callers hold mu.
func (bm *BrowserManager) replace() {
	next, err := bm.start()
	if err != nil {
		return
	}
	_ = bm.current.shutdown()
	bm.current = next
	bm.served.Store(0)
}
