// Package config provides configuration management for the GEMA
// track-listing processor.
//
// Settings are persisted as JSON. The processing core never reads them
// directly: the callers (CLI and TUI) load settings once and pass the
// relevant values — output directory, label table path, export columns —
// into the core as opaque inputs.
//
// # Default Settings
//
// Use DefaultSettings() for the historical defaults:
//
//	settings := config.DefaultSettings()
//	// Labelcodes.txt next to the working directory
//	// export columns Index;Titel;Künstler;Labelcode;Dauer
//	// diagnostics appended to error.log
//
// # Loading and Saving
//
//	settings, err := config.Load("config.json")
//	// A missing file yields defaults, not an error.
//
//	settings.DefaultOutputDir = "/exports"
//	err = settings.Save("config.json")
package config
