// Package browser runs page fetches inside short-lived, isolated browser
// sessions driven by Playwright.
//
// # Sessions
//
// A session is one acquire-use-release cycle over a fresh page. Every page is
// opened with Browser.NewPage, so Playwright gives it a private browser
// context (cookies, cache and storage are not shared with other sessions).
// Sessions follow this lifecycle:
//
//  1. Open: a new page is created with a randomly chosen user agent and the
//     configured default navigation timeout
//  2. Guard: the content blocker is engaged unless low-bandwidth mode is on
//  3. Use: the caller's function runs against the page
//  4. Teardown: the blocker is disengaged and the page is closed, on every
//     exit path including errors and panics
//
// Teardown errors are logged and counted but never returned; the caller
// always receives exactly what its own function returned.
//
// # Navigation
//
// UsingResponse navigates the session's page before handing it over. It waits
// for DOMContentLoaded only, not for images or other subresources, and returns
// navigation errors unchanged. Retrying is left to the caller.
//
// # Concurrency
//
// An Acquirer holds no mutable state. Any number of goroutines may run
// sessions through one Acquirer against a shared playwright.Browser; each
// session owns its page exclusively.
//
// # Example Usage
//
//	launcher := browser.NewLauncher(browser.LaunchOptions{Headless: true})
//	b, err := launcher.Launch()
//	if err != nil {
//	    return err
//	}
//	defer launcher.Shutdown()
//
//	acquirer := browser.NewAcquirer(b, browser.Options{
//	    NavigationTimeout: 30000,
//	    Blocker:           contentBlocker,
//	    Logger:            logger,
//	})
//
//	code, err := browser.UsingResponse(acquirer, "https://example.com",
//	    func(resp playwright.Response, page playwright.Page) (int, error) {
//	        if resp == nil {
//	            return 0, nil
//	        }
//	        return resp.Status(), nil
//	    })
package browser
