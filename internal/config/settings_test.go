package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), SettingsFileName))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := WindowSettings{
		Width:            1024,
		Height:           768,
		X:                50,
		Y:                50,
		AlwaysOnTop:      true,
		FlipHorizontally: true,
	}

	if err := store.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := store.Load()
	if loaded != saved {
		t.Errorf("Round-trip mismatch: saved %+v, loaded %+v", saved, loaded)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	loaded := store.Load()
	if loaded != DefaultSettings() {
		t.Errorf("Expected defaults %+v, got %+v", DefaultSettings(), loaded)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	loaded := store.Load()
	if loaded != DefaultSettings() {
		t.Errorf("Expected defaults for corrupt file, got %+v", loaded)
	}
}

func TestLoadPartialRecordFillsDefaults(t *testing.T) {
	store := newTestStore(t)

	partial := `{"width": 640, "flip_horizontally": true}`
	if err := os.WriteFile(store.Path(), []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write partial file: %v", err)
	}

	loaded := store.Load()
	if loaded.Width != 640 {
		t.Errorf("Expected width 640, got %d", loaded.Width)
	}
	if !loaded.FlipHorizontally {
		t.Error("Expected flip_horizontally true")
	}
	if loaded.Height != DefaultHeight {
		t.Errorf("Expected default height %d, got %d", DefaultHeight, loaded.Height)
	}
	if loaded.X != DefaultX || loaded.Y != DefaultY {
		t.Errorf("Expected default position (%d, %d), got (%d, %d)", DefaultX, DefaultY, loaded.X, loaded.Y)
	}
	if loaded.AlwaysOnTop {
		t.Error("Expected always_on_top to default to false")
	}
}

func TestLoadRejectsNonPositiveDimensions(t *testing.T) {
	store := newTestStore(t)

	bad := `{"width": 0, "height": -10, "x": 5, "y": 7}`
	if err := os.WriteFile(store.Path(), []byte(bad), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	loaded := store.Load()
	if loaded.Width != DefaultWidth || loaded.Height != DefaultHeight {
		t.Errorf("Expected default dimensions, got %dx%d", loaded.Width, loaded.Height)
	}
	if loaded.X != 5 || loaded.Y != 7 {
		t.Errorf("Expected position (5, 7) to survive, got (%d, %d)", loaded.X, loaded.Y)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	store := newTestStore(t)

	extra := `{"width": 320, "height": 240, "theme": "dark", "volume": 11}`
	if err := os.WriteFile(store.Path(), []byte(extra), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	loaded := store.Load()
	if loaded.Width != 320 || loaded.Height != 240 {
		t.Errorf("Expected 320x240, got %dx%d", loaded.Width, loaded.Height)
	}
}

func TestSaveOverwritesExtraKeys(t *testing.T) {
	store := newTestStore(t)

	extra := `{"width": 320, "height": 240, "legacy_key": true}`
	if err := os.WriteFile(store.Path(), []byte(extra), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := store.Save(store.Load()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("Failed to read settings file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Settings file is empty after save")
	}
	if strings.Contains(string(data), "legacy_key") {
		t.Error("Expected legacy_key to be dropped on save")
	}
}

func TestSaveSurfacesWriteFailure(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "missing-subdir", SettingsFileName))

	if err := store.Save(DefaultSettings()); err == nil {
		t.Error("Expected an error saving to a nonexistent directory")
	}
}
