package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/TJ-5/GEMA/internal/config"
	"github.com/TJ-5/GEMA/internal/diaglog"
	"github.com/TJ-5/GEMA/internal/export"
	"github.com/TJ-5/GEMA/internal/labelcode"
	"github.com/TJ-5/GEMA/internal/listing"
	"github.com/TJ-5/GEMA/internal/process"
	"github.com/TJ-5/GEMA/internal/scan"
)

func main() {
	// Command line flags
	var (
		configFlag     = flag.String("config", "", "Path to config file")
		outputFlag     = flag.String("output", "", "Output directory (overrides config)")
		labelcodesFlag = flag.String("labelcodes", "", "Path to label code table (overrides config)")
		columnsFlag    = flag.String("columns", "", "Comma-separated export columns (overrides config)")
		logFlag        = flag.String("log", "", "Path to diagnostic log (overrides config)")
		fromAudioFlag  = flag.String("from-audio", "", "Generate a track listing from a folder of MP3 files, then exit")
		previewFlag    = flag.Bool("preview", false, "Print the aggregated table for each file")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() == 0 && *fromAudioFlag == "" {
		fmt.Println("GEMA Track Parser - aggregate track listings into CSV exports")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  gema-cli [options] <listing.txt | folder> ...")
		fmt.Println("  gema-cli -from-audio <folder>")
		fmt.Println()
		fmt.Println("For interactive mode, use: gema-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.DefaultOutputDir = *outputFlag
	}
	if *labelcodesFlag != "" {
		settings.LabelcodesFile = *labelcodesFlag
	}
	if *logFlag != "" {
		settings.DiagnosticLog = *logFlag
	}
	if *columnsFlag != "" {
		var columns []string
		for _, c := range strings.Split(*columnsFlag, ",") {
			if c = strings.TrimSpace(c); c != "" {
				columns = append(columns, c)
			}
		}
		if len(columns) > 0 {
			settings.CSVColumns = columns
		}
	}

	if *fromAudioFlag != "" {
		dest := settings.ListingFileName
		summary, err := listing.Generate(*fromAudioFlag, dest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating listing: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s: %d of %d files listed", summary.OutputPath,
			summary.LinesWritten, summary.FilesScanned)
		if summary.MissingDuration > 0 {
			fmt.Printf(" (%d without a usable length tag)", summary.MissingDuration)
		}
		fmt.Println()
		return
	}

	// Handle interrupts; cancellation takes effect between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, finishing current file...")
		cancel()
	}()

	files, err := scan.TextFiles(ctx, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning inputs: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No .txt listing files found.")
		os.Exit(1)
	}

	sink, err := diaglog.NewFileSink(settings.DiagnosticLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening diagnostic log: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	labels := labelcode.Load(settings.LabelcodesFile)

	proc := process.New(settings.DefaultOutputDir, settings.CSVColumns, labels, sink,
		func(event process.ProgressEvent) {
			if event.Level == process.LevelVerbose && !*verboseFlag {
				return
			}

			prefix := ""
			switch event.Level {
			case process.LevelError:
				prefix = "✗ "
			case process.LevelWarning:
				prefix = "! "
			case process.LevelSuccess:
				prefix = "✓ "
			case process.LevelInfo:
				prefix = "› "
			default:
				prefix = "  "
			}

			fmt.Println(prefix + event.Message)
		})

	fmt.Printf("Processing %d file(s), %d label codes loaded\n\n", len(files), labels.Len())

	results := proc.ProcessAll(ctx, files)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if *previewFlag {
			fmt.Println()
			fmt.Println(previewTable(r.Summary, settings.CSVColumns))
		}
	}

	if ctx.Err() != nil {
		fmt.Println("\nBatch cancelled.")
		os.Exit(130)
	}

	fmt.Printf("\nDone: %d ok, %d failed. Details in %s\n",
		len(results)-failed, failed, settings.DiagnosticLog)
	if failed > 0 {
		os.Exit(1)
	}
}

// previewTable renders one file's aggregated rows as a terminal table in
// the configured column projection.
func previewTable(summary *process.Summary, columns []string) string {
	rows := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, export.Cells(row, columns))
	}

	aligns := make([]columnAlignment, len(columns))
	for i, name := range columns {
		if strings.EqualFold(name, "Dauer") {
			aligns[i] = alignRight
		}
	}

	return renderTable(columns, rows, aligns)
}
