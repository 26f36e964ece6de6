package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"

	"github.com/TJ-5/GEMA/internal/duration"
)

// Summary reports the outcome of generating one listing file.
type Summary struct {
	OutputPath string

	// FilesScanned counts the MP3 files examined.
	FilesScanned int

	// LinesWritten counts the listing lines produced.
	LinesWritten int

	// MissingDuration counts files skipped because no usable TLEN frame
	// was present.
	MissingDuration int
}

// Generate scans dir (non-recursively) for MP3 files and writes a
// semicolon-delimited track listing to dest: one "<filename>;<duration>"
// line per file, durations taken from the ID3 TLEN frame (milliseconds)
// and rendered through the duration codec. Files without a usable TLEN
// frame are counted and skipped. The result feeds the normal processing
// path.
func Generate(dir, dest string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read audio directory: %w", err)
	}

	summary := &Summary{OutputPath: dest}
	var sb strings.Builder

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp3") {
			continue
		}
		summary.FilesScanned++

		seconds, ok := tagDuration(filepath.Join(dir, entry.Name()))
		if !ok {
			summary.MissingDuration++
			continue
		}

		sb.WriteString(entry.Name())
		sb.WriteString(";")
		sb.WriteString(duration.Format(seconds))
		sb.WriteString("\n")
		summary.LinesWritten++
	}

	if err := os.WriteFile(dest, []byte(sb.String()), 0644); err != nil {
		return nil, fmt.Errorf("write listing: %w", err)
	}
	return summary, nil
}

// tagDuration reads the TLEN frame (length in milliseconds) of an MP3 file.
func tagDuration(path string) (float64, bool) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return 0, false
	}
	defer tag.Close()

	text := strings.TrimSpace(tag.GetTextFrame("TLEN").Text)
	if text == "" {
		return 0, false
	}
	millis, err := strconv.ParseInt(text, 10, 64)
	if err != nil || millis < 0 {
		return 0, false
	}
	return float64(millis) / 1000, true
}
