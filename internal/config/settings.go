package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultColumns is the export column projection used when the settings
// file does not override it. The names are the historical German headers.
var DefaultColumns = []string{"Index", "Titel", "Künstler", "Labelcode", "Dauer"}

// Settings holds all configuration options.
type Settings struct {
	// LabelcodesFile is the path of the label/code table side file.
	LabelcodesFile string `json:"labelcodes_file"`

	// DefaultOutputDir is where export files are written.
	DefaultOutputDir string `json:"default_output_dir"`

	// CSVColumns is the ordered export column projection.
	CSVColumns []string `json:"csv_columns"`

	// DiagnosticLog is the path of the append-only diagnostic log.
	DiagnosticLog string `json:"diagnostic_log"`

	// ListingFileName names listing files generated from audio folders.
	ListingFileName string `json:"listing_file_name"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LabelcodesFile:   "Labelcodes.txt",
		DefaultOutputDir: ".",
		CSVColumns:       append([]string(nil), DefaultColumns...),
		DiagnosticLog:    "error.log",
		ListingFileName:  "tracklist.txt",
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults, not an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if len(settings.CSVColumns) == 0 {
		settings.CSVColumns = append([]string(nil), DefaultColumns...)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
