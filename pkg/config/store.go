package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// storeVersion is written to every settings file.
const storeVersion = "1"

// Store persists section data.
type Store interface {
	// Load reads persisted data, replacing what is held in memory
	Load() error

	// Save writes the in-memory data to persistent storage
	Save() error

	// GetSection returns a copy of one section's data; empty when absent
	GetSection(sectionID string) (map[string]interface{}, error)

	// SetSection replaces one section's data
	SetSection(sectionID string, data map[string]interface{}) error
}

// fileFormat is the on-disk layout of a settings file.
type fileFormat struct {
	Version  string                            `json:"version"`
	Sections map[string]map[string]interface{} `json:"sections"`
}

// FileStore is a Store backed by a JSON file.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	sections map[string]map[string]interface{}
	dirty    bool
}

// NewFileStore opens the settings file at path, defaulting to
// ~/.pagefetch/config.json. A missing file is not an error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".pagefetch", "config.json")
	}

	s := &FileStore{
		path:     path,
		sections: make(map[string]map[string]interface{}),
	}
	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	return s, nil
}

// Load reads the settings file. A missing file leaves the store empty.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.sections = make(map[string]map[string]interface{})
		s.dirty = false
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to decode settings file: %w", err)
	}

	s.sections = f.Sections
	if s.sections == nil {
		s.sections = make(map[string]map[string]interface{})
	}
	s.dirty = false
	return nil
}

// Save writes the settings file through a temp file and rename so readers
// never observe a partial write.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	raw, err := json.MarshalIndent(fileFormat{Version: storeVersion, Sections: s.sections}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write temp settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	s.dirty = false
	return nil
}

// GetSection returns a copy of the section's data.
func (s *FileStore) GetSection(sectionID string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySection(s.sections[sectionID]), nil
}

// SetSection stores a copy of data under sectionID.
func (s *FileStore) SetSection(sectionID string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections[sectionID] = copySection(data)
	s.dirty = true
	return nil
}

// IsModified reports whether there are unsaved changes.
func (s *FileStore) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return s.path
}

func copySection(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
