package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.LabelcodesFile != "Labelcodes.txt" {
		t.Errorf("LabelcodesFile = %q", settings.LabelcodesFile)
	}
	if len(settings.CSVColumns) != 5 || settings.CSVColumns[2] != "Künstler" {
		t.Errorf("CSVColumns = %v", settings.CSVColumns)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.DefaultOutputDir = "/exports"
	settings.CSVColumns = []string{"Index", "Dauer"}
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultOutputDir != "/exports" {
		t.Errorf("DefaultOutputDir = %q", loaded.DefaultOutputDir)
	}
	if len(loaded.CSVColumns) != 2 || loaded.CSVColumns[1] != "Dauer" {
		t.Errorf("CSVColumns = %v", loaded.CSVColumns)
	}
}

func TestLoadEmptyColumnsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"csv_columns": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(settings.CSVColumns) != 5 {
		t.Errorf("CSVColumns = %v, want defaults", settings.CSVColumns)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
