// Package labelcode resolves label codes for track indexes from a side file.
package labelcode

import (
	"os"
	"strings"
)

// Entry is one label/code pair in file order.
type Entry struct {
	Label string
	Code  string
}

// Table is an ordered label-to-code mapping. The order is the order of the
// source file, and it decides resolution: the first label that prefixes an
// index wins, even when a longer label would match later. Resolution never
// mutates the table, so a loaded table may be shared freely; reloading
// means calling Load again and swapping the result in.
type Table struct {
	entries []Entry
}

// Load reads a label table from path. The file lists labels and codes on
// alternating non-blank lines; a trailing label without a code maps to the
// empty string. Labels are lowercased on insert. A missing or unreadable
// file degrades to an empty table rather than an error: absence means "no
// codes resolved", not failure.
func Load(path string) *Table {
	t := &Table{}

	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	seen := make(map[string]int)
	for i := 0; i < len(lines); i += 2 {
		label := strings.ToLower(lines[i])
		code := ""
		if i+1 < len(lines) {
			code = lines[i+1]
		}
		// A repeated label keeps its first position but takes the
		// latest code.
		if at, ok := seen[label]; ok {
			t.entries[at].Code = code
			continue
		}
		seen[label] = len(t.entries)
		t.entries = append(t.entries, Entry{Label: label, Code: code})
	}

	return t
}

// Resolve returns the code of the first label, in file order, that is a
// prefix of index. It returns the empty string when no label matches.
// The index is expected to be lowercased already, as the tokenizer emits it.
func (t *Table) Resolve(index string) string {
	for _, e := range t.entries {
		if strings.HasPrefix(index, e.Label) {
			return e.Code
		}
	}
	return ""
}

// Len returns the number of label entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the table contents in file order.
func (t *Table) Entries() []Entry {
	return t.entries
}
