package browser

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// ErrNotLaunched is returned by Launcher.Browser before Launch succeeds.
var ErrNotLaunched = errors.New("browser not launched")

// Launcher owns the Playwright driver process and a single Chromium instance
// shared by all sessions.
type Launcher struct {
	mu          sync.Mutex
	opts        LaunchOptions
	playwright  *playwright.Playwright
	browser     playwright.Browser
	initialized bool
}

// NewLauncher creates a launcher. Nothing is started until Launch.
func NewLauncher(opts LaunchOptions) *Launcher {
	return &Launcher{opts: opts}
}

// Launch starts Playwright and Chromium. Calling it again returns the browser
// that is already running.
func (l *Launcher) Launch() (playwright.Browser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return l.browser, nil
	}

	// Keep driver output off the terminal
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if l.opts.Install {
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.opts.Headless),
		Args:     l.opts.Args,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	l.playwright = pw
	l.browser = b
	l.initialized = true
	return b, nil
}

// Browser returns the running browser, or ErrNotLaunched.
func (l *Launcher) Browser() (playwright.Browser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil, ErrNotLaunched
	}
	return l.browser, nil
}

// Launched reports whether Launch has succeeded and Shutdown has not run since.
func (l *Launcher) Launched() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

// Shutdown closes the browser and stops Playwright. Safe to call more than
// once and before Launch.
func (l *Launcher) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil
	}

	var errs []error
	if err := l.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	if err := l.playwright.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}

	l.browser = nil
	l.playwright = nil
	l.initialized = false
	return errors.Join(errs...)
}
