package browser

import (
	"github.com/entrhq/pagefetch/pkg/useragent"
	"github.com/playwright-community/playwright-go"
)

// Browser opens new pages. playwright.Browser satisfies it.
type Browser interface {
	NewPage(options ...playwright.BrowserNewPageOptions) (playwright.Page, error)
}

// ContentBlocker filters requests issued by a page. *blocker.Blocker
// satisfies it.
type ContentBlocker interface {
	// Engage starts filtering requests on page.
	Engage(page playwright.Page) error

	// Disengage removes any filtering from page before it is closed.
	Disengage(page playwright.Page) error
}

// ErrorLogger records teardown failures. *logging.Logger satisfies it.
type ErrorLogger interface {
	Errorf(format string, v ...interface{})
}

// Options configures an Acquirer.
type Options struct {
	// NavigationTimeout is the default navigation timeout in milliseconds.
	// Zero uses DefaultNavigationTimeout.
	NavigationTimeout float64

	// LowBandwidth skips the content blocker entirely.
	LowBandwidth bool

	// Blocker is engaged on every page unless LowBandwidth is set. May be nil.
	Blocker ContentBlocker

	// Logger receives teardown errors. May be nil.
	Logger ErrorLogger

	// Identity picks the user agent for each page. Nil uses useragent.Random.
	Identity useragent.Picker
}

// LaunchOptions configures the browser started by a Launcher.
type LaunchOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Args are extra command-line switches passed to Chromium
	Args []string

	// Install downloads the Playwright driver and browsers before starting
	Install bool
}

// DefaultNavigationTimeout is used when Options.NavigationTimeout is zero.
const DefaultNavigationTimeout = 30000.0 // 30 seconds in milliseconds

type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
