package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Summary is written to the -output file after a run.
type Summary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Accepted   int           `json:"accepted"`
	Rejected   int           `json:"rejected"`
	Failed     int           `json:"failed"`
	Results    []FetchResult `json:"results"`
}

func newSummary(runID string, started time.Time, results []FetchResult) *Summary {
	s := &Summary{
		RunID:      runID,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Results:    results,
	}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Failed++
		case r.Accepted:
			s.Accepted++
		default:
			s.Rejected++
		}
	}
	return s
}

// OK reports whether every URL was fetched and accepted.
func (s *Summary) OK() bool {
	return s.Failed == 0 && s.Rejected == 0
}

func (s *Summary) write(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
