package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/entrhq/pagefetch/pkg/blocker"
	"github.com/entrhq/pagefetch/pkg/status"
	"gopkg.in/yaml.v3"
)

const defaultConcurrency = 2

// Job describes a batch of pages to fetch.
type Job struct {
	URLs []string `yaml:"urls"`

	// SuccessStatusCodes decides which responses count as accepted.
	// Entries are single codes or [low, high] pairs.
	SuccessStatusCodes status.Policy `yaml:"success_status_codes"`

	Concurrency int `yaml:"concurrency"`

	Block BlockConfig `yaml:"block"`
}

// BlockConfig is the job's content blocking setup.
type BlockConfig struct {
	Domains       []string `yaml:"domains"`
	Patterns      []string `yaml:"patterns"`
	ResourceTypes []string `yaml:"resource_types"`
	SkipDefaults  bool     `yaml:"skip_defaults"`
}

// Options converts the block config for blocker.New.
func (b BlockConfig) Options() blocker.Options {
	return blocker.Options{
		Domains:       b.Domains,
		Patterns:      b.Patterns,
		ResourceTypes: b.ResourceTypes,
		SkipDefaults:  b.SkipDefaults,
	}
}

// DefaultJob accepts any 2xx response.
func DefaultJob() *Job {
	return &Job{
		SuccessStatusCodes: status.Policy{status.Between(200, 299)},
		Concurrency:        defaultConcurrency,
	}
}

// Validate checks the job is runnable.
func (j *Job) Validate() error {
	if len(j.URLs) == 0 {
		return fmt.Errorf("no urls to fetch")
	}
	for _, raw := range j.URLs {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid url %q: %w", raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid url %q: scheme must be http or https", raw)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid url %q: missing host", raw)
		}
	}
	if j.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", j.Concurrency)
	}
	if len(j.SuccessStatusCodes) == 0 {
		return fmt.Errorf("success_status_codes must not be empty")
	}
	return nil
}

// loadJobFile reads a YAML job on top of DefaultJob.
func loadJobFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return parseJob(data)
}

func parseJob(data []byte) (*Job, error) {
	job := DefaultJob()
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	return job, nil
}

// splitURLs parses the comma-separated -url flag.
func splitURLs(s string) []string {
	var urls []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}
