package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"
)

// writeMP3 creates a dummy MP3 file; tlen, when non-empty, is written as
// the TLEN text frame.
func writeMP3(t *testing.T, dir, name, tlen string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, 128), 0644); err != nil {
		t.Fatal(err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open tag: %v", err)
	}
	defer tag.Close()

	if tlen != "" {
		tag.AddTextFrame("TLEN", id3v2.EncodingUTF8, tlen)
	}
	tag.SetTitle("ignored by the listing")
	if err := tag.Save(); err != nil {
		t.Fatalf("save tag: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, dir, "01_TRACK_ONE_Artist.mp3", "225000") // 225 s
	writeMP3(t, dir, "02_OTHER_Someone.mp3", "90500")     // 90.5 s
	writeMP3(t, dir, "no_length.mp3", "")
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "tracklist.txt")
	summary, err := Generate(dir, dest)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if summary.FilesScanned != 3 {
		t.Errorf("FilesScanned = %d, want 3", summary.FilesScanned)
	}
	if summary.LinesWritten != 2 {
		t.Errorf("LinesWritten = %d, want 2", summary.LinesWritten)
	}
	if summary.MissingDuration != 1 {
		t.Errorf("MissingDuration = %d, want 1", summary.MissingDuration)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("listing has %d lines, want 2:\n%s", len(lines), data)
	}
	if lines[0] != "01_TRACK_ONE_Artist.mp3;225:00" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "02_OTHER_Someone.mp3;90:50" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestGenerateEmptyDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "tracklist.txt")
	summary, err := Generate(t.TempDir(), dest)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if summary.FilesScanned != 0 || summary.LinesWritten != 0 {
		t.Errorf("summary = %+v, want zero counts", summary)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Error("an empty listing file should still be written")
	}
}

func TestGenerateMissingDir(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out.txt"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
