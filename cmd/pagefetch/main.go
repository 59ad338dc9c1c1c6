// Package main provides pagefetch, a batch page fetcher that drives a shared
// headless Chromium through short-lived, always-closed sessions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entrhq/pagefetch/pkg/blocker"
	"github.com/entrhq/pagefetch/pkg/browser"
	appconfig "github.com/entrhq/pagefetch/pkg/config"
	"github.com/entrhq/pagefetch/pkg/logging"
	"github.com/entrhq/pagefetch/pkg/metrics"
	"github.com/entrhq/pagefetch/pkg/pacing"
	"github.com/google/uuid"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	JobFile     string
	URLs        string
	Concurrency int
	OutputFile  string
	MetricsFile string
	Excerpt     int
	LogLevel    string
	Install     bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("pagefetch v%s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ok, err := run(ctx, config)
	stop()
	if err != nil {
		log.Printf("pagefetch failed: %v", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(2)
	}
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	config := &CLIConfig{}

	flag.StringVar(&config.ConfigFile, "config", "", "Path to settings file (default ~/.pagefetch/config.json)")
	flag.StringVar(&config.JobFile, "job", "", "Path to job file (YAML)")
	flag.StringVar(&config.URLs, "url", "", "Comma-separated URLs to fetch (overrides the job's urls)")
	flag.IntVar(&config.Concurrency, "concurrency", 0, "Concurrent sessions (overrides the job)")
	flag.StringVar(&config.OutputFile, "output", "pagefetch-summary.json", "Output file for the run summary")
	flag.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")
	flag.IntVar(&config.Excerpt, "excerpt", 0, "Keep up to this many bytes of page text in the summary (0 disables)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.BoolVar(&config.Install, "install", false, "Install the Playwright driver and browsers before running")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pagefetch - fetch pages through a headless browser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pagefetch [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pagefetch -url https://example.com,https://example.org\n\n")
		fmt.Fprintf(os.Stderr, "  pagefetch -job crawl.yaml -concurrency 4 -metrics-file pagefetch.prom\n\n")
	}

	flag.Parse()
	return config
}

// loadJob builds the job from the -job file and flag overrides.
func loadJob(cli *CLIConfig) (*Job, error) {
	job := DefaultJob()
	if cli.JobFile != "" {
		var err error
		if job, err = loadJobFile(cli.JobFile); err != nil {
			return nil, err
		}
	}
	if cli.URLs != "" {
		job.URLs = splitURLs(cli.URLs)
	}
	if cli.Concurrency > 0 {
		job.Concurrency = cli.Concurrency
	}
	return job, job.Validate()
}

// run executes the job. ok is false when any URL failed or was rejected.
//
//nolint:gocyclo
func run(ctx context.Context, cli *CLIConfig) (ok bool, err error) {
	started := time.Now()
	runID := uuid.NewString()

	job, err := loadJob(cli)
	if err != nil {
		return false, fmt.Errorf("invalid job: %w", err)
	}

	if initErr := appconfig.Initialize(cli.ConfigFile); initErr != nil {
		return false, fmt.Errorf("failed to initialize configuration: %w", initErr)
	}
	browserCfg := appconfig.GetBrowser()
	minMs, maxMs := appconfig.GetPacing().GetBounds()

	logger, logErr := logging.NewLogger("pagefetch")
	defer logger.Close()
	if logErr != nil {
		log.Printf("Warning: %v", logErr)
	}
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return false, err
	}
	logger.SetLevel(level)
	logger.Infof("run %s: %d urls, concurrency %d, log run %s", runID, len(job.URLs), job.Concurrency, logger.RunID())

	var contentBlocker browser.ContentBlocker
	if !browserCfg.IsLowBandwidth() {
		b, blockErr := blocker.New(job.Block.Options())
		if blockErr != nil {
			return false, fmt.Errorf("invalid block rules: %w", blockErr)
		}
		contentBlocker = b
	}

	launcher := browser.NewLauncher(browser.LaunchOptions{
		Headless: browserCfg.IsHeadless(),
		Args:     browserCfg.GetArgs(),
		Install:  cli.Install,
	})
	b, err := launcher.Launch()
	if err != nil {
		return false, err
	}
	defer func() {
		if shutdownErr := launcher.Shutdown(); shutdownErr != nil {
			logger.Errorf("browser shutdown failed: %v", shutdownErr)
			err = errors.Join(err, shutdownErr)
		}
	}()

	acq := browser.NewAcquirer(b, browser.Options{
		NavigationTimeout: browserCfg.GetNavigationTimeout(),
		LowBandwidth:      browserCfg.IsLowBandwidth(),
		Blocker:           contentBlocker,
		Logger:            logger,
	})

	f := &fetcher{
		acq:         acq,
		opts:        fetchOptions{policy: job.SuccessStatusCodes, excerpt: cli.Excerpt},
		window:      pacing.WindowFromMillis(minMs, maxMs),
		concurrency: job.Concurrency,
	}

	log.Printf("Fetching %d urls...", len(job.URLs))
	results := f.run(ctx, job.URLs)
	for _, r := range results {
		switch {
		case r.Error != "":
			logger.Warnf("%s: %s", r.URL, r.Error)
		case !r.Accepted:
			logger.Warnf("%s: status %d not accepted", r.URL, r.Status)
		default:
			logger.Debugf("%s: status %d in %dms", r.URL, r.Status, r.DurationMs)
		}
	}

	summary := newSummary(runID, started, results)
	if err := summary.write(cli.OutputFile); err != nil {
		return false, err
	}
	log.Printf("Accepted %d, rejected %d, failed %d (summary: %s)",
		summary.Accepted, summary.Rejected, summary.Failed, cli.OutputFile)

	if cli.MetricsFile != "" {
		if err := metrics.WriteTextfile(cli.MetricsFile); err != nil {
			return false, fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return summary.OK(), nil
}
