package discogs

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// acceptLanguage pins pages to English; the listings parser matches
// English labels.
const acceptLanguage = "en-US,en;q=0.9"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.2478.80",
}

// RandomUserAgent returns a desktop browser user-agent string.
func RandomUserAgent() string {
	return userAgents[rand.IntN(len(userAgents))]
}

// BrowserSession implements Renderer with one long-lived headless Chrome.
// The browser starts in NewBrowserSession and stays up until Close.
type BrowserSession struct {
	headless     bool
	execPath     string
	userAgent    string
	waitSelector string
	settle       time.Duration

	allocCtx      context.Context
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc

	mu        sync.Mutex
	closeOnce sync.Once
}

// BrowserOption configures the BrowserSession.
type BrowserOption func(*BrowserSession)

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(headless bool) BrowserOption {
	return func(s *BrowserSession) {
		s.headless = headless
	}
}

// WithExecPath points the session at a specific Chrome/Chromium binary.
func WithExecPath(path string) BrowserOption {
	return func(s *BrowserSession) {
		s.execPath = path
	}
}

// WithBrowserUserAgent fixes the user agent instead of picking one at random.
func WithBrowserUserAgent(ua string) BrowserOption {
	return func(s *BrowserSession) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithSettleDelay waits d after the page is ready before reading the DOM,
// giving client-side rendering time to fill in the listings.
func WithSettleDelay(d time.Duration) BrowserOption {
	return func(s *BrowserSession) {
		s.settle = d
	}
}

// WithWaitSelector overrides the CSS selector awaited after navigation.
func WithWaitSelector(sel string) BrowserOption {
	return func(s *BrowserSession) {
		if sel != "" {
			s.waitSelector = sel
		}
	}
}

// NewBrowserSession launches the browser. An error here means the session
// cannot be used.
func NewBrowserSession(ctx context.Context, opts ...BrowserOption) (*BrowserSession, error) {
	s := &BrowserSession{
		headless:     true,
		userAgent:    RandomUserAgent(),
		waitSelector: "body",
	}
	for _, opt := range opts {
		opt(s)
	}

	allocOpts := make([]chromedp.ExecAllocatorOption, 0, len(chromedp.DefaultExecAllocatorOptions)+8)
	allocOpts = append(allocOpts, chromedp.DefaultExecAllocatorOptions[:]...)
	for name, value := range browserFlags(s.headless, s.userAgent, os.Geteuid() == 0) {
		allocOpts = append(allocOpts, chromedp.Flag(name, value))
	}
	if s.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(s.execPath))
	}

	s.allocCtx, s.cancelAlloc = chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	s.browserCtx, s.cancelBrowser = chromedp.NewContext(s.allocCtx)

	// The first Run starts the browser and opens the tab every render reuses.
	err := chromedp.Run(s.browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": acceptLanguage}),
	)
	if err != nil {
		s.cancelBrowser()
		s.cancelAlloc()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return s, nil
}

// browserFlags returns the Chrome command-line switches for a session.
// no-sandbox is only added when running as root, where Chrome refuses to
// start with the sandbox enabled.
func browserFlags(headless bool, userAgent string, root bool) map[string]any {
	flags := map[string]any{
		"headless":              headless,
		"disable-gpu":           true,
		"disable-dev-shm-usage": true,
		"disable-infobars":      true,
		"incognito":             true,
		"user-agent":            userAgent,
	}
	if root {
		flags["no-sandbox"] = true
	}
	return flags
}

// UserAgent returns the user agent chosen for this session.
func (s *BrowserSession) UserAgent() string {
	return s.userAgent
}

// Render implements Renderer. Canceling ctx aborts the render but leaves
// the browser running.
func (s *BrowserSession) Render(ctx context.Context, url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.browserCtx.Err(); err != nil {
		return "", fmt.Errorf("browser session closed: %w", err)
	}

	runCtx, cancel := context.WithCancel(s.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	actions := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.WaitReady(s.waitSelector, chromedp.ByQuery),
	}
	if s.settle > 0 {
		actions = append(actions, chromedp.Sleep(s.settle))
	}

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return html, fmt.Errorf("rendering %s: %w", url, ctx.Err())
		}
		return html, fmt.Errorf("rendering %s: %w", url, err)
	}
	return html, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (s *BrowserSession) Close() error {
	s.closeOnce.Do(func() {
		s.cancelBrowser()
		s.cancelAlloc()
	})
	return nil
}

// Ping reports an error once the browser has exited or been closed.
func (s *BrowserSession) Ping(context.Context) error {
	if err := s.browserCtx.Err(); err != nil {
		return fmt.Errorf("browser session closed: %w", err)
	}
	return nil
}
