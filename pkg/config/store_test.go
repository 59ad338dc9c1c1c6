package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileStore(t *testing.T) {
	t.Run("uses the given path", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")

		store, err := NewFileStore(configPath)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}
		if store.Path() != configPath {
			t.Errorf("Expected path %s, got %s", configPath, store.Path())
		}
		if store.IsModified() {
			t.Error("New store should not be modified")
		}
	})

	t.Run("defaults to the home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		store, err := NewFileStore("")
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		expected := filepath.Join(home, ".pagefetch", "config.json")
		if store.Path() != expected {
			t.Errorf("Expected default path %s, got %s", expected, store.Path())
		}
	})

	t.Run("fails on corrupt file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(configPath, []byte("{not json"), 0600); err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}

		if _, err := NewFileStore(configPath); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

	store, err := NewFileStore(configPath)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	store.SetSection("pacing", map[string]interface{}{"min_page_sleep_ms": 1000})
	if !store.IsModified() {
		t.Error("SetSection should mark the store modified")
	}

	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if store.IsModified() {
		t.Error("Save should clear the modified flag")
	}
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temp file should not remain after save")
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		t.Fatalf("Saved file is not valid JSON: %v", err)
	}
	if f.Version != storeVersion {
		t.Errorf("Expected version %s, got %s", storeVersion, f.Version)
	}

	reloaded, err := NewFileStore(configPath)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	data, _ := reloaded.GetSection("pacing")
	if data["min_page_sleep_ms"] != float64(1000) {
		t.Errorf("Expected 1000, got %v", data["min_page_sleep_ms"])
	}
}

func TestFileStore_Copies(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	in := map[string]interface{}{"headless": true}
	store.SetSection("browser", in)
	in["headless"] = false

	out, _ := store.GetSection("browser")
	if out["headless"] != true {
		t.Error("SetSection should store a copy")
	}

	out["headless"] = false
	again, _ := store.GetSection("browser")
	if again["headless"] != true {
		t.Error("GetSection should return a copy")
	}

	missing, _ := store.GetSection("absent")
	if missing == nil || len(missing) != 0 {
		t.Error("Missing section should yield an empty map")
	}
}
