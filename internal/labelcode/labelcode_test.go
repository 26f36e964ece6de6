package labelcode

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Labelcodes.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	table := Load(writeTable(t, "LC\n12345\n\nxyz\n999\n"))

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	entries := table.Entries()
	if entries[0].Label != "lc" || entries[0].Code != "12345" {
		t.Errorf("entries[0] = %+v, want lc/12345", entries[0])
	}
	if entries[1].Label != "xyz" || entries[1].Code != "999" {
		t.Errorf("entries[1] = %+v, want xyz/999", entries[1])
	}
}

func TestLoadOddTrailingLabel(t *testing.T) {
	table := Load(writeTable(t, "lc\n12345\norphan\n"))

	if got := table.Resolve("orphan_01"); got != "" {
		t.Errorf("Resolve(orphan_01) = %q, want empty code", got)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	table := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
	if got := table.Resolve("anything"); got != "" {
		t.Errorf("Resolve on empty table = %q, want empty", got)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Both labels prefix the index; the earlier declaration wins even
	// though the later one is longer and more specific.
	table := Load(writeTable(t, "lc\nSHORT\nlc_01\nLONG\n"))

	if got := table.Resolve("lc_01_track"); got != "SHORT" {
		t.Errorf("Resolve = %q, want SHORT", got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	table := Load(writeTable(t, "lc\n12345\n"))

	if got := table.Resolve("zz_01"); got != "" {
		t.Errorf("Resolve = %q, want empty", got)
	}
}

func TestLoadRepeatedLabel(t *testing.T) {
	table := Load(writeTable(t, "lc\nOLD\nlc\nNEW\n"))

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	if got := table.Resolve("lc_01"); got != "NEW" {
		t.Errorf("Resolve = %q, want NEW", got)
	}
}
