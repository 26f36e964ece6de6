package process

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TJ-5/GEMA/internal/aggregate"
	"github.com/TJ-5/GEMA/internal/diaglog"
	"github.com/TJ-5/GEMA/internal/duration"
	"github.com/TJ-5/GEMA/internal/export"
	"github.com/TJ-5/GEMA/internal/labelcode"
	"github.com/TJ-5/GEMA/internal/model"
	"github.com/TJ-5/GEMA/internal/tokenizer"
)

// Summary reports the outcome of processing one input file.
type Summary struct {
	InputPath  string
	OutputPath string

	// LinesRead counts non-blank physical lines. Blank lines are skipped
	// before counting.
	LinesRead int

	// IgnoredNoSeparator counts lines without a field separator.
	IgnoredNoSeparator int

	// IgnoredMalformed counts lines whose split did not yield two usable
	// parts.
	IgnoredMalformed int

	// IgnoredBadDuration counts lines whose duration token failed to parse.
	IgnoredBadDuration int

	// Rows is the aggregated table as exported, in first-seen order.
	Rows []aggregate.Row
}

// Tracks returns the number of distinct aggregated tracks.
func (s *Summary) Tracks() int {
	return len(s.Rows)
}

// String renders the multi-line summary written to the diagnostic log.
func (s *Summary) String() string {
	return fmt.Sprintf("File %q:\n"+
		"  lines read: %d\n"+
		"  ignored (no separator): %d\n"+
		"  ignored (malformed): %d\n"+
		"  ignored (bad duration): %d\n"+
		"  output: %s",
		s.InputPath, s.LinesRead, s.IgnoredNoSeparator,
		s.IgnoredMalformed, s.IgnoredBadDuration, s.OutputPath)
}

// Result is the per-file outcome of a batch run: a Summary on success or
// an error when the file failed as a whole.
type Result struct {
	Path    string
	Summary *Summary
	Err     error
}

// Processor turns track-listing files into aggregated exports. It owns no
// shared mutable state across files; the label table it holds is read-only
// and may be swapped between runs via SetLabels.
type Processor struct {
	outputDir  string
	columns    []string
	labels     *labelcode.Table
	sink       diaglog.Sink
	onProgress func(ProgressEvent)
}

// New creates a Processor. sink receives one line per skipped input line
// and per file-level summary; onProgress may be nil.
func New(outputDir string, columns []string, labels *labelcode.Table, sink diaglog.Sink, onProgress func(ProgressEvent)) *Processor {
	if sink == nil {
		sink = diaglog.Discard()
	}
	return &Processor{
		outputDir:  outputDir,
		columns:    columns,
		labels:     labels,
		sink:       sink,
		onProgress: onProgress,
	}
}

// SetLabels replaces the label table. Call between runs only; the table is
// never swapped while a file is being processed.
func (p *Processor) SetLabels(labels *labelcode.Table) {
	p.labels = labels
}

// ProcessAll processes paths sequentially, one file fully before the next.
// A failing file is reported in its Result and does not abort the batch.
// Cancellation is honored between files; a file in flight always runs to
// completion.
func (p *Processor) ProcessAll(ctx context.Context, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		summary, err := p.ProcessFile(path)
		results = append(results, Result{Path: path, Summary: summary, Err: err})
	}
	return results
}

// ProcessFile processes one input file end to end: reads it line by line,
// aggregates accepted records, exports the table and returns a Summary.
// Per-line problems are counted and logged, never fatal. Any unexpected
// failure is logged in full and comes back as a short error; it concerns
// this file only.
func (p *Processor) ProcessFile(path string) (summary *Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.sink.Append(fmt.Sprintf("panic while processing %s: %v", path, r))
			summary = nil
			err = fmt.Errorf("failed to process %s: internal error", path)
		}
	}()

	summary, procErr := p.processFile(path)
	if procErr != nil {
		p.sink.Append(fmt.Sprintf("error processing %s: %v", path, procErr))
		p.progress(ProgressEvent{
			Message: fmt.Sprintf("Failed: %s: %v", filepath.Base(path), procErr),
			Level:   LevelError,
		})
		return nil, fmt.Errorf("failed to process %s: %w", path, procErr)
	}

	p.sink.Append(summary.String())
	p.progress(ProgressEvent{
		Message: fmt.Sprintf("Processed %s: %d tracks -> %s",
			filepath.Base(path), summary.Tracks(), summary.OutputPath),
		Level: LevelSuccess,
	})
	return summary, nil
}

func (p *Processor) processFile(path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	summary := &Summary{InputPath: path}
	agg := aggregate.New()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		summary.LinesRead++

		filename, durText, found := strings.Cut(line, ";")
		if !found {
			summary.IgnoredNoSeparator++
			p.skipLine(path, lineNum, "no separator")
			continue
		}

		filename = strings.TrimSpace(filename)
		durText = strings.TrimSpace(durText)
		if filename == "" || durText == "" {
			summary.IgnoredMalformed++
			p.skipLine(path, lineNum, "incomplete line")
			continue
		}

		fields := tokenizer.Tokenize(filename)
		seconds, err := duration.Parse(durText)
		if err != nil {
			summary.IgnoredBadDuration++
			p.skipLine(path, lineNum, fmt.Sprintf("invalid duration %q", durText))
			continue
		}

		rec := model.Record{
			Index:    fields.Index,
			Title:    fields.Title,
			Artist:   fields.Artist,
			Duration: seconds,
		}
		agg.Upsert(rec.Key(p.labels.Resolve(rec.Index)), rec.Duration)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	summary.Rows = agg.Snapshot()
	summary.OutputPath = p.outputPath(path)
	if err := export.Write(summary.OutputPath, summary.Rows, p.columns); err != nil {
		return nil, err
	}

	return summary, nil
}

// outputPath derives the export destination: the input's stem (text before
// the first dot) prefixed with "output_", in the configured output
// directory.
func (p *Processor) outputPath(inputPath string) string {
	stem, _, _ := strings.Cut(filepath.Base(inputPath), ".")
	return filepath.Join(p.outputDir, "output_"+stem+".csv")
}

func (p *Processor) skipLine(path string, lineNum int, reason string) {
	msg := fmt.Sprintf("file %s, line %d: %s", path, lineNum, reason)
	p.sink.Append(msg)
	p.progress(ProgressEvent{Message: msg, Level: LevelWarning})
}

func (p *Processor) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
