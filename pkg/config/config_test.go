package config

import (
	"os"
	"path/filepath"
	"testing"
)

func resetGlobal() {
	globalMu.Lock()
	globalManager = nil
	globalMu.Unlock()
}

func TestInitialize(t *testing.T) {
	t.Run("registers browser and pacing sections", func(t *testing.T) {
		resetGlobal()
		configPath := filepath.Join(t.TempDir(), "config.json")

		if err := Initialize(configPath); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if !IsInitialized() {
			t.Fatal("Global manager should be initialized")
		}
		if _, ok := Global().GetSection(SectionIDBrowser); !ok {
			t.Error("browser section not registered")
		}
		if _, ok := Global().GetSection(SectionIDPacing); !ok {
			t.Error("pacing section not registered")
		}
	})

	t.Run("persists and reloads settings", func(t *testing.T) {
		resetGlobal()
		configPath := filepath.Join(t.TempDir(), "config.json")

		if err := Initialize(configPath); err != nil {
			t.Fatalf("First initialize failed: %v", err)
		}
		if err := GetBrowser().SetData(map[string]interface{}{"low_bandwidth": true}); err != nil {
			t.Fatalf("SetData failed: %v", err)
		}
		if err := Global().SaveAll(); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}

		resetGlobal()
		if err := Initialize(configPath); err != nil {
			t.Fatalf("Re-initialize failed: %v", err)
		}
		if !GetBrowser().IsLowBandwidth() {
			t.Error("low_bandwidth was not reloaded")
		}
	})

	t.Run("rejects inverted pacing bounds", func(t *testing.T) {
		resetGlobal()
		configPath := filepath.Join(t.TempDir(), "config.json")
		content := `{"version": "1", "sections": {"pacing": {"min_page_sleep_ms": 9000, "max_page_sleep_ms": 1000}}}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if err := Initialize(configPath); err == nil {
			t.Error("Expected validation error for inverted bounds")
		}
		if IsInitialized() {
			t.Error("Global manager should not be set after a failed load")
		}
	})
}

func TestGlobal(t *testing.T) {
	t.Run("panics if not initialized", func(t *testing.T) {
		resetGlobal()

		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for uninitialized config")
			}
		}()

		Global()
	})
}

func TestSectionAccessors(t *testing.T) {
	t.Run("return nil when not initialized", func(t *testing.T) {
		resetGlobal()

		if GetBrowser() != nil {
			t.Error("Expected nil browser section")
		}
		if GetPacing() != nil {
			t.Error("Expected nil pacing section")
		}
	})

	t.Run("return defaults after initialization", func(t *testing.T) {
		resetGlobal()
		if err := Initialize(filepath.Join(t.TempDir(), "config.json")); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if got := GetBrowser().GetNavigationTimeout(); got != defaultNavigationTimeout {
			t.Errorf("Expected timeout %d, got %v", defaultNavigationTimeout, got)
		}
		min, max := GetPacing().GetBounds()
		if min != defaultMinPageSleep || max != defaultMaxPageSleep {
			t.Errorf("Expected bounds [%d, %d], got [%d, %d]", defaultMinPageSleep, defaultMaxPageSleep, min, max)
		}
	})
}
