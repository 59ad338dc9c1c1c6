package browser

import (
	"errors"
	"fmt"

	"github.com/entrhq/pagefetch/pkg/metrics"
	"github.com/entrhq/pagefetch/pkg/useragent"
	"github.com/playwright-community/playwright-go"
)

// Acquirer opens sessions against a shared browser.
type Acquirer struct {
	browser      Browser
	blocker      ContentBlocker
	logger       ErrorLogger
	identity     useragent.Picker
	timeout      float64
	lowBandwidth bool
}

// NewAcquirer creates an Acquirer that opens pages on b.
func NewAcquirer(b Browser, opts Options) *Acquirer {
	a := &Acquirer{
		browser:      b,
		blocker:      opts.Blocker,
		logger:       opts.Logger,
		identity:     opts.Identity,
		timeout:      opts.NavigationTimeout,
		lowBandwidth: opts.LowBandwidth,
	}

	if a.logger == nil {
		a.logger = discardLogger{}
	}
	if a.identity == nil {
		a.identity = useragent.Random
	}
	if a.timeout <= 0 {
		a.timeout = DefaultNavigationTimeout
	}

	return a
}

// UsingPage runs fn against a fresh page and closes the page afterwards.
//
// The page is torn down on every exit path. Teardown errors are logged, never
// returned, so the result is always exactly what fn returned. If the page
// cannot be opened, fn is not called.
func UsingPage[T any](a *Acquirer, fn func(page playwright.Page) (T, error)) (T, error) {
	var zero T

	page, err := a.open()
	if err != nil {
		return zero, err
	}
	defer a.closePage(page)

	if a.blocking() {
		if err := a.blocker.Engage(page); err != nil {
			return zero, err
		}
	}

	return fn(page)
}

// UsingResponse navigates a fresh page to url and passes the response and the
// page to fn. The response is nil when the navigation did not hit the network.
// Navigation errors are returned unchanged.
func UsingResponse[T any](a *Acquirer, url string, fn func(resp playwright.Response, page playwright.Page) (T, error)) (T, error) {
	return UsingPage(a, func(page playwright.Page) (T, error) {
		resp, err := Navigate(page, url)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(resp, page)
	})
}

// Navigate loads url in page, waiting for DOMContentLoaded but not for
// subresources. It does not retry.
func Navigate(page playwright.Page, url string) (playwright.Response, error) {
	resp, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		metrics.NavigationFailed()
		return nil, err
	}

	code := 0
	if resp != nil {
		code = resp.Status()
	}
	metrics.ResponseObserved(code)

	return resp, nil
}

func (a *Acquirer) open() (playwright.Page, error) {
	page, err := a.browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(a.identity()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	page.SetDefaultNavigationTimeout(a.timeout)
	metrics.SessionOpened()
	return page, nil
}

// closePage disengages the blocker and closes page. Close is attempted even
// when disengaging fails.
func (a *Acquirer) closePage(page playwright.Page) {
	var errs []error

	if a.blocking() {
		if err := a.disengage(page); err != nil {
			errs = append(errs, err)
		}
	}

	if err := page.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close page: %w", err))
	}

	metrics.SessionClosed(len(errs) > 0)
	if len(errs) > 0 {
		a.logTeardown(errors.Join(errs...))
	}
}

func (a *Acquirer) disengage(page playwright.Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("blocker panicked during disengage: %v", r)
		}
	}()
	return a.blocker.Disengage(page)
}

func (a *Acquirer) logTeardown(err error) {
	defer func() { _ = recover() }()
	a.logger.Errorf("page teardown failed: %v", err)
}

func (a *Acquirer) blocking() bool {
	return !a.lowBandwidth && a.blocker != nil
}
