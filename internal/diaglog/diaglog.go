// Package diaglog provides the append-only diagnostic log sink.
//
// The processing core reports every skipped line and every file-level
// summary through a Sink it receives as a capability, so it stays testable
// without a real file system. FileSink is the production implementation:
// a single append-only text file, one line per diagnostic.
package diaglog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink accepts diagnostic lines. Implementations must be safe for use
// from a single processing goroutine; they are never called concurrently
// by the core.
type Sink interface {
	Append(line string) error
}

// FileSink appends timestamped lines to a log file. Writes are flushed
// per line so a crash mid-batch loses at most the line being written.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer
}

// NewFileSink opens (or creates) the log file at path for appending,
// creating parent directories as needed.
func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open diagnostic log: %w", err)
	}

	return &FileSink{file: file, w: bufio.NewWriter(file)}, nil
}

// Append writes one line, prefixed with an RFC 3339 timestamp.
func (s *FileSink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "%s %s\n", time.Now().Format(time.RFC3339), line); err != nil {
		return fmt.Errorf("write diagnostic: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush diagnostic: %w", err)
	}
	return nil
}

// Close flushes buffered data and closes the log file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush on close: %w", err)
	}
	return s.file.Close()
}

type discard struct{}

func (discard) Append(string) error { return nil }

// Discard returns a Sink that drops every line.
func Discard() Sink {
	return discard{}
}

// Memory is a Sink that records lines in memory, for tests and for the
// interactive surface's error panel.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

// Append records the line.
func (m *Memory) Append(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
	return nil
}

// Lines returns a copy of all recorded lines.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}
