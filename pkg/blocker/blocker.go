// Package blocker filters page requests through playwright request
// interception.
//
// A Blocker aborts requests by registrable domain, by URL glob, or by
// resource type. Engage installs the filter on a page and Disengage removes
// it again; the browser package calls Disengage before closing a page so no
// route handler is still running when the page goes away.
package blocker

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
	"github.com/playwright-community/playwright-go"
	"golang.org/x/net/publicsuffix"
)

// routePattern matches every request a page issues.
const routePattern = "**/*"

// Options configures a Blocker.
type Options struct {
	// Domains are hosts or registrable domains whose requests are aborted.
	// A listed registrable domain also blocks all of its subdomains.
	Domains []string

	// Patterns are glob patterns matched against the full request URL.
	// '*' matches any run of characters, including separators.
	Patterns []string

	// ResourceTypes are playwright resource types to abort, e.g. "image",
	// "media", "font".
	ResourceTypes []string

	// SkipDefaults leaves DefaultDomains out of the domain list.
	SkipDefaults bool
}

// Blocker decides which requests to abort and applies that decision to pages.
type Blocker struct {
	domains       map[string]struct{}
	patterns      []glob.Glob
	resourceTypes map[string]struct{}
}

// New compiles opts into a Blocker.
func New(opts Options) (*Blocker, error) {
	b := &Blocker{
		domains:       make(map[string]struct{}),
		resourceTypes: make(map[string]struct{}),
	}

	if !opts.SkipDefaults {
		for _, d := range DefaultDomains {
			b.domains[d] = struct{}{}
		}
	}
	for _, d := range opts.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			b.domains[d] = struct{}{}
		}
	}

	for _, p := range opts.Patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid block pattern %q: %w", p, err)
		}
		b.patterns = append(b.patterns, g)
	}

	for _, rt := range opts.ResourceTypes {
		b.resourceTypes[strings.ToLower(rt)] = struct{}{}
	}

	return b, nil
}

// Blocks reports whether a request for rawURL of the given resource type
// should be aborted.
func (b *Blocker) Blocks(rawURL, resourceType string) bool {
	if _, ok := b.resourceTypes[strings.ToLower(resourceType)]; ok {
		return true
	}

	for _, g := range b.patterns {
		if g.Match(rawURL) {
			return true
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return b.blocksHost(u.Hostname())
}

func (b *Blocker) blocksHost(host string) bool {
	if host == "" || len(b.domains) == 0 {
		return false
	}
	host = strings.ToLower(host)
	if _, ok := b.domains[host]; ok {
		return true
	}

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	_, ok := b.domains[registrable]
	return ok
}

// Engage starts filtering requests issued by page.
func (b *Blocker) Engage(page playwright.Page) error {
	if err := page.Route(routePattern, b.handle); err != nil {
		return fmt.Errorf("failed to engage blocker: %w", err)
	}
	return nil
}

// Disengage removes the filter installed by Engage.
func (b *Blocker) Disengage(page playwright.Page) error {
	if err := page.Unroute(routePattern); err != nil {
		return fmt.Errorf("failed to disengage blocker: %w", err)
	}
	return nil
}

func (b *Blocker) handle(route playwright.Route) {
	req := route.Request()
	if b.Blocks(req.URL(), req.ResourceType()) {
		_ = route.Abort("blockedbyclient")
		return
	}
	_ = route.Continue()
}
