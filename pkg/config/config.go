package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates the global configuration manager from the settings file
// at configPath (empty for the default location) and loads it.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)

	if err := manager.RegisterSection(NewBrowserSection()); err != nil {
		return err
	}
	if err := manager.RegisterSection(NewPacingSection()); err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetBrowser returns the browser section from global config.
// Returns nil if config is not initialized.
func GetBrowser() *BrowserSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDBrowser)
	if !ok {
		return nil
	}

	browser, _ := section.(*BrowserSection)
	return browser
}

// GetPacing returns the pacing section from global config.
// Returns nil if config is not initialized.
func GetPacing() *PacingSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDPacing)
	if !ok {
		return nil
	}

	pacing, _ := section.(*PacingSection)
	return pacing
}
