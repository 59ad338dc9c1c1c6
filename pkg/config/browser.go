package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDBrowser is the identifier for the browser settings section
	SectionIDBrowser = "browser"

	defaultHeadless          = true
	defaultLowBandwidth      = false
	defaultNavigationTimeout = 30000 // milliseconds
)

// BrowserSection holds settings for launching the browser and opening pages.
type BrowserSection struct {
	Headless            bool     `json:"headless"`
	LowBandwidth        bool     `json:"low_bandwidth"`
	NavigationTimeoutMs int      `json:"navigation_timeout_ms"`
	Args                []string `json:"args"`
	mu                  sync.RWMutex
}

// NewBrowserSection creates a browser section with default settings.
func NewBrowserSection() *BrowserSection {
	return &BrowserSection{
		Headless:            defaultHeadless,
		LowBandwidth:        defaultLowBandwidth,
		NavigationTimeoutMs: defaultNavigationTimeout,
	}
}

// ID returns the section identifier.
func (s *BrowserSection) ID() string {
	return SectionIDBrowser
}

// Title returns the section title.
func (s *BrowserSection) Title() string {
	return "Browser"
}

// Description returns the section description.
func (s *BrowserSection) Description() string {
	return "Browser launch mode, content blocking and page navigation timeout."
}

// Data returns the current configuration data.
func (s *BrowserSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"headless":              s.Headless,
		"low_bandwidth":         s.LowBandwidth,
		"navigation_timeout_ms": s.NavigationTimeoutMs,
		"args":                  append([]string(nil), s.Args...),
	}
}

// SetData updates the configuration from the provided data. Unknown keys are
// ignored.
func (s *BrowserSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		var err error
		switch key {
		case "headless":
			s.Headless, err = boolValue(key, value)
		case "low_bandwidth":
			s.LowBandwidth, err = boolValue(key, value)
		case "navigation_timeout_ms":
			s.NavigationTimeoutMs, err = intValue(key, value)
		case "args":
			if value == nil {
				s.Args = nil
				continue
			}
			s.Args, err = stringsValue(key, value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *BrowserSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.NavigationTimeoutMs <= 0 {
		return fmt.Errorf("navigation_timeout_ms must be positive, got %d", s.NavigationTimeoutMs)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *BrowserSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Headless = defaultHeadless
	s.LowBandwidth = defaultLowBandwidth
	s.NavigationTimeoutMs = defaultNavigationTimeout
	s.Args = nil
}

// IsHeadless reports whether the browser should run without a window.
func (s *BrowserSection) IsHeadless() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Headless
}

// IsLowBandwidth reports whether content blocking is skipped.
func (s *BrowserSection) IsLowBandwidth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LowBandwidth
}

// GetNavigationTimeout returns the page navigation timeout in milliseconds.
func (s *BrowserSection) GetNavigationTimeout() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return float64(s.NavigationTimeoutMs)
}

// GetArgs returns the extra browser command-line switches.
func (s *BrowserSection) GetArgs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.Args...)
}
