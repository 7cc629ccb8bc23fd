package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eyeofra/eye-of-ra/internal/platform"
)

// Settings file location
const (
	SettingsFileName = "settings.json"

	settingsFileMode = 0644
)

// Default window geometry and preference values, applied when no persisted
// record exists or a field is absent.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultX      = 100
	DefaultY      = 100

	DefaultAlwaysOnTop      = false
	DefaultFlipHorizontally = false
)

// WindowSettings is the persisted record of window geometry and user
// preference flags. It is read once at startup and overwritten in full on
// every geometry change and toggle.
type WindowSettings struct {
	Width            int  `json:"width"`
	Height           int  `json:"height"`
	X                int  `json:"x"`
	Y                int  `json:"y"`
	AlwaysOnTop      bool `json:"always_on_top"`
	FlipHorizontally bool `json:"flip_horizontally"`
}

// DefaultSettings returns the documented default record.
func DefaultSettings() WindowSettings {
	return WindowSettings{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		X:                DefaultX,
		Y:                DefaultY,
		AlwaysOnTop:      DefaultAlwaysOnTop,
		FlipHorizontally: DefaultFlipHorizontally,
	}
}

// settingsRecord mirrors WindowSettings with pointer fields so that absent
// keys can be told apart from zero values when decoding.
type settingsRecord struct {
	Width            *int  `json:"width"`
	Height           *int  `json:"height"`
	X                *int  `json:"x"`
	Y                *int  `json:"y"`
	AlwaysOnTop      *bool `json:"always_on_top"`
	FlipHorizontally *bool `json:"flip_horizontally"`
}

// Store reads and writes WindowSettings at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a settings store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves the settings file location beside the executable.
func DefaultPath() string {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return SettingsFileName
	}
	return filepath.Join(dir, SettingsFileName)
}

// Path returns the file path the store reads from and writes to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted settings. It fails soft: a missing, unreadable,
// or malformed file yields the defaults, and any absent or non-positive
// dimension falls back per field. Unknown keys are ignored.
func (s *Store) Load() WindowSettings {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return settings
	}

	var record settingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return settings
	}

	if record.Width != nil && *record.Width > 0 {
		settings.Width = *record.Width
	}
	if record.Height != nil && *record.Height > 0 {
		settings.Height = *record.Height
	}
	if record.X != nil {
		settings.X = *record.X
	}
	if record.Y != nil {
		settings.Y = *record.Y
	}
	if record.AlwaysOnTop != nil {
		settings.AlwaysOnTop = *record.AlwaysOnTop
	}
	if record.FlipHorizontally != nil {
		settings.FlipHorizontally = *record.FlipHorizontally
	}

	return settings
}

// Save serializes the full record and overwrites the settings file. I/O
// errors are returned to the caller; failing to persist is not worth a
// crash but must not go unnoticed either.
func (s *Store) Save(settings WindowSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, settingsFileMode); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
