package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDPacing is the identifier for the pacing settings section
	SectionIDPacing = "pacing"

	defaultMinPageSleep = 5000  // milliseconds
	defaultMaxPageSleep = 10000 // milliseconds
)

// PacingSection holds the bounds of the randomized wait between page fetches.
type PacingSection struct {
	MinPageSleepMs int `json:"min_page_sleep_ms"`
	MaxPageSleepMs int `json:"max_page_sleep_ms"`
	mu             sync.RWMutex
}

// NewPacingSection creates a pacing section with default settings.
func NewPacingSection() *PacingSection {
	return &PacingSection{
		MinPageSleepMs: defaultMinPageSleep,
		MaxPageSleepMs: defaultMaxPageSleep,
	}
}

// ID returns the section identifier.
func (s *PacingSection) ID() string {
	return SectionIDPacing
}

// Title returns the section title.
func (s *PacingSection) Title() string {
	return "Pacing"
}

// Description returns the section description.
func (s *PacingSection) Description() string {
	return "Minimum and maximum randomized sleep between page fetches."
}

// Data returns the current configuration data.
func (s *PacingSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"min_page_sleep_ms": s.MinPageSleepMs,
		"max_page_sleep_ms": s.MaxPageSleepMs,
	}
}

// SetData updates the configuration from the provided data.
func (s *PacingSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		var err error
		switch key {
		case "min_page_sleep_ms":
			s.MinPageSleepMs, err = intValue(key, value)
		case "max_page_sleep_ms":
			s.MaxPageSleepMs, err = intValue(key, value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate rejects negative or inverted bounds. The pacing package itself
// does not check them.
func (s *PacingSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.MinPageSleepMs < 0 || s.MaxPageSleepMs < 0 {
		return fmt.Errorf("page sleep bounds must not be negative, got [%d, %d]", s.MinPageSleepMs, s.MaxPageSleepMs)
	}
	if s.MinPageSleepMs > s.MaxPageSleepMs {
		return fmt.Errorf("min_page_sleep_ms (%d) exceeds max_page_sleep_ms (%d)", s.MinPageSleepMs, s.MaxPageSleepMs)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *PacingSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.MinPageSleepMs = defaultMinPageSleep
	s.MaxPageSleepMs = defaultMaxPageSleep
}

// GetBounds returns (min, max) page sleep in milliseconds.
func (s *PacingSection) GetBounds() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MinPageSleepMs, s.MaxPageSleepMs
}
