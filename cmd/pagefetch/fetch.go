package main

import (
	"context"
	"time"

	"github.com/entrhq/pagefetch/pkg/browser"
	"github.com/entrhq/pagefetch/pkg/extract"
	"github.com/entrhq/pagefetch/pkg/pacing"
	"github.com/entrhq/pagefetch/pkg/status"
	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/errgroup"
)

// FetchResult is one URL's outcome in the summary.
type FetchResult struct {
	URL        string `json:"url"`
	FinalURL   string `json:"final_url,omitempty"`
	Status     int    `json:"status"`
	Accepted   bool   `json:"accepted"`
	Title      string `json:"title,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`

	Digest *extract.Digest `json:"digest,omitempty"`
}

// fetchOptions apply to every URL in a run.
type fetchOptions struct {
	policy status.Policy

	// excerpt is the number of bytes of page text kept in the digest.
	// Zero skips reading the page content.
	excerpt int
}

type pageInfo struct {
	status   int
	title    string
	finalURL string
	digest   *extract.Digest
}

// fetchOne loads url in its own session. Failures are reported in the result.
func fetchOne(acq *browser.Acquirer, url string, opts fetchOptions) FetchResult {
	start := time.Now()
	result := FetchResult{URL: url}

	info, err := browser.UsingResponse(acq, url, func(resp playwright.Response, page playwright.Page) (pageInfo, error) {
		var info pageInfo
		if resp != nil {
			info.status = resp.Status()
		}
		info.finalURL = page.URL()

		title, err := page.Title()
		if err != nil {
			return info, err
		}
		info.title = title

		if opts.excerpt > 0 {
			content, err := page.Content()
			if err != nil {
				return info, err
			}
			if info.digest, err = extract.FromHTML(content, opts.excerpt); err != nil {
				return info, err
			}
		}
		return info, nil
	})

	result.DurationMs = time.Since(start).Milliseconds()
	result.Status = info.status
	result.FinalURL = info.finalURL
	result.Title = info.title
	result.Digest = info.digest
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Accepted = opts.policy.Allows(info.status)
	return result
}

// fetcher fans URLs out over a bounded number of workers. Each worker waits
// a sampled pacing delay between its own fetches.
type fetcher struct {
	acq         *browser.Acquirer
	opts        fetchOptions
	window      pacing.Window
	concurrency int
	fetch       func(acq *browser.Acquirer, url string, opts fetchOptions) FetchResult
}

// run fetches every url and returns results in input order. URLs not started
// before ctx is cancelled are reported with the context error.
func (f *fetcher) run(ctx context.Context, urls []string) []FetchResult {
	fetch := f.fetch
	if fetch == nil {
		fetch = fetchOne
	}

	results := make([]FetchResult, len(urls))
	jobs := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency + 1)

	g.Go(func() error {
		defer close(jobs)
		for i := range urls {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for w := 0; w < f.concurrency; w++ {
		g.Go(func() error {
			first := true
			for i := range jobs {
				if !first {
					if err := pacing.Wait(gctx, f.window.Sample()); err != nil {
						results[i] = FetchResult{URL: urls[i], Error: err.Error()}
						continue
					}
				}
				first = false
				results[i] = fetch(f.acq, urls[i], f.opts)
			}
			return nil
		})
	}

	_ = g.Wait()

	skipped := context.Canceled
	if err := context.Cause(ctx); err != nil {
		skipped = err
	}
	for i := range results {
		if results[i].URL == "" {
			results[i] = FetchResult{URL: urls[i], Error: skipped.Error()}
		}
	}
	return results
}
