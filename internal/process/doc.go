// Package process orchestrates the processing of track-listing files.
//
// One Processor invocation handles one input file end to end: line-by-line
// read, per-line error classification, aggregation, export and a summary
// of counts. Batches run strictly sequentially; a file that fails never
// aborts the rest of the batch.
//
// # Per-line classification
//
// Each non-blank line is either accepted or skipped for exactly one
// reason, and every skip is counted and sent to the diagnostic sink:
//
//   - no separator: the line has no ";" at all
//   - malformed: the split did not yield two non-empty fields
//   - bad duration: the duration token is not two numeric components
//
// # Progress
//
// Processing emits ProgressEvents through an optional callback, in the
// same shape the CLI prints and the TUI renders:
//
//	proc := process.New(outDir, columns, labels, sink, func(e process.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	results := proc.ProcessAll(ctx, files)
package process
