// Package tui provides a Bubble Tea terminal user interface for the GEMA
// track-listing processor.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TJ-5/GEMA/internal/config"
	"github.com/TJ-5/GEMA/internal/diaglog"
	"github.com/TJ-5/GEMA/internal/labelcode"
	"github.com/TJ-5/GEMA/internal/process"
	"github.com/TJ-5/GEMA/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StatePrompt
	StateProcessing
	StateComplete
	StateError
)

// promptKind says what the text prompt is currently asking for.
type promptKind int

const (
	promptAddPath promptKind = iota
	promptOutputDir
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   process.ProgressLevel
}

// batchRunner is the shared state between the background processing
// goroutine and the UI. The goroutine appends, the UI drains on a tick.
type batchRunner struct {
	mu     sync.Mutex
	done   int
	total  int
	events []process.ProgressEvent
}

func (r *batchRunner) record(event process.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *batchRunner) fileDone() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

// drain returns the current counters and hands over any buffered events.
func (r *batchRunner) drain() (done, total int, events []process.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	done, total = r.done, r.total
	events = r.events
	r.events = nil
	return done, total, events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	prompt    promptKind
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model

	settings  *config.Settings
	labels    *labelcode.Table
	sink      diaglog.Sink
	outputDir string

	files  []string
	cursor int

	logs    []LogEntry
	results []process.Result
	err     error

	runner *batchRunner

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, labels *labelcode.Table, sink diaglog.Sink) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/listing.txt or folder"
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateBrowse,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		labels:    labels,
		sink:      sink,
		outputDir: settings.DefaultOutputDir,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// filesAddedMsg is sent after a prompted path was expanded.
	filesAddedMsg struct {
		Files []string
		Err   error
	}

	// batchDoneMsg is sent when the whole batch finished.
	batchDoneMsg struct {
		Results []process.Result
	}

	// tickMsg drives periodic progress updates while processing.
	tickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case filesAddedMsg:
		m.state = StateBrowse
		if msg.Err != nil {
			m.logs = append(m.logs, LogEntry{Message: msg.Err.Error(), Level: process.LevelError})
			break
		}
		added := 0
		for _, f := range msg.Files {
			if !m.hasFile(f) {
				m.files = append(m.files, f)
				added++
			}
		}
		m.logs = append(m.logs, LogEntry{
			Message: fmt.Sprintf("%d file(s) loaded (%d new)", len(m.files), added),
			Level:   process.LevelInfo,
		})

	case batchDoneMsg:
		m.results = msg.Results
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case tickMsg:
		if m.runner != nil && m.state == StateProcessing {
			done, total, events := m.runner.drain()
			for _, e := range events {
				m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
			}
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "esc":
		switch m.state {
		case StatePrompt:
			m.state = StateBrowse
			m.textInput.Blur()
		case StateProcessing:
			// Takes effect between files; the file in flight finishes.
			m.cancel()
		case StateBrowse:
			return m, tea.Quit
		}
		return m, nil

	case "enter":
		switch m.state {
		case StatePrompt:
			value := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			m.textInput.Blur()
			m.state = StateBrowse
			if value == "" {
				return m, nil
			}
			if m.prompt == promptOutputDir {
				m.outputDir = value
				m.logs = append(m.logs, LogEntry{
					Message: "Output directory: " + value,
					Level:   process.LevelInfo,
				})
				return m, nil
			}
			return m, addPath(value)
		case StateBrowse:
			if len(m.files) == 0 {
				m.logs = append(m.logs, LogEntry{
					Message: "No files loaded. Press a to add one.",
					Level:   process.LevelWarning,
				})
				return m, nil
			}
			return m.startBatch()
		}
		return m, nil
	}

	if m.state == StatePrompt {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "a":
		if m.state == StateBrowse {
			m.state = StatePrompt
			m.prompt = promptAddPath
			m.textInput.Placeholder = "/path/to/listing.txt or folder"
			m.textInput.Focus()
			return m, textinput.Blink
		}

	case "o":
		if m.state == StateBrowse {
			m.state = StatePrompt
			m.prompt = promptOutputDir
			m.textInput.Placeholder = m.outputDir
			m.textInput.Focus()
			return m, textinput.Blink
		}

	case "r":
		switch m.state {
		case StateBrowse:
			m.labels = labelcode.Load(m.settings.LabelcodesFile)
			m.logs = append(m.logs, LogEntry{
				Message: fmt.Sprintf("Label codes reloaded (%d entries)", m.labels.Len()),
				Level:   process.LevelInfo,
			})
		case StateComplete, StateError:
			// New run, keeping the loaded file list.
			m.state = StateBrowse
			m.results = nil
			m.err = nil
			m.runner = nil
			m.logs = nil
			m.ctx, m.cancel = context.WithCancel(context.Background())
		}

	case "up", "k":
		if m.state == StateBrowse && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.state == StateBrowse && m.cursor < len(m.files)-1 {
			m.cursor++
		}

	case "x", "backspace", "delete":
		if m.state == StateBrowse && len(m.files) > 0 {
			m.files = append(m.files[:m.cursor], m.files[m.cursor+1:]...)
			if m.cursor >= len(m.files) && m.cursor > 0 {
				m.cursor--
			}
		}

	case "q":
		if m.state == StateBrowse || m.state == StateComplete || m.state == StateError {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) hasFile(path string) bool {
	for _, f := range m.files {
		if f == path {
			return true
		}
	}
	return false
}

// addPath expands a file or folder into its .txt listing files.
func addPath(path string) tea.Cmd {
	return func() tea.Msg {
		files, err := scan.TextFiles(context.Background(), []string{path})
		if err != nil {
			return filesAddedMsg{Err: err}
		}
		if len(files) == 0 {
			return filesAddedMsg{Err: fmt.Errorf("no .txt files under %s", path)}
		}
		return filesAddedMsg{Files: files}
	}
}

// startBatch kicks off background processing of the loaded files.
func (m Model) startBatch() (tea.Model, tea.Cmd) {
	runner := &batchRunner{total: len(m.files)}
	m.runner = runner
	m.state = StateProcessing
	m.logs = nil

	proc := process.New(m.outputDir, m.settings.CSVColumns, m.labels, m.sink, runner.record)
	files := append([]string(nil), m.files...)
	ctx := m.ctx

	run := func() tea.Msg {
		results := make([]process.Result, 0, len(files))
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				results = append(results, process.Result{Path: path, Err: err})
				continue
			}
			summary, err := proc.ProcessFile(path)
			results = append(results, process.Result{Path: path, Summary: summary, Err: err})
			runner.fileDone()
		}
		return batchDoneMsg{Results: results}
	}

	return m, tea.Batch(run, tickProgress(), m.spinner.Tick)
}

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GEMA Track Parser"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Aggregate track listings into CSV exports"))
	b.WriteString("\n\n")

	switch m.state {
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StatePrompt:
		b.WriteString(m.viewPrompt())
	case StateProcessing:
		b.WriteString(m.viewProcessing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loaded files (%d):", len(m.files))))
	b.WriteString("\n")
	if len(m.files) == 0 {
		b.WriteString(dimStyle.Render("  none yet"))
		b.WriteString("\n")
	}
	for i, f := range m.files {
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(f))
		} else {
			b.WriteString("  " + f)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Output directory: " + m.outputDir))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Label codes: %d entries from %s",
		m.labels.Len(), m.settings.LabelcodesFile)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewPrompt() string {
	var b strings.Builder

	if m.prompt == promptOutputDir {
		b.WriteString(subtitleStyle.Render("Output directory:"))
	} else {
		b.WriteString(subtitleStyle.Render("Add a listing file or folder:"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewProcessing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Processing files..."))
	b.WriteString("\n\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var ok, failed, tracks int
	for _, r := range m.results {
		if r.Err != nil {
			failed++
			continue
		}
		ok++
		tracks += r.Summary.Tracks()
	}

	box := boxStyle.Render(fmt.Sprintf(
		"Processing complete\n\n"+
			"Files: %d ok, %d failed\n"+
			"Distinct tracks: %d",
		ok, failed, tracks))
	b.WriteString(box)
	b.WriteString("\n\n")

	for _, r := range m.results {
		if r.Err != nil {
			b.WriteString(errorStyle.Render("✗ " + r.Err.Error()))
		} else {
			b.WriteString(successStyle.Render(fmt.Sprintf("✓ %s -> %s (%d tracks)",
				filepath.Base(r.Path), r.Summary.OutputPath, r.Summary.Tracks())))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	for _, r := range m.results {
		if r.Err == nil {
			b.WriteString(successStyle.Render("✓ " + filepath.Base(r.Path)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case process.LevelError:
			style = errorStyle
			prefix = "✗"
		case process.LevelWarning:
			style = warningStyle
			prefix = "!"
		case process.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case process.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowse:
		return "a: add • o: output dir • r: reload labelcodes • x: remove • enter: process • q: quit"
	case StatePrompt:
		return "enter: confirm • esc: back"
	case StateProcessing:
		return "esc: cancel (between files)"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(configPath string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		// First run: persist the defaults so they can be edited.
		if err := settings.Save(configPath); err != nil {
			return err
		}
	}

	sink, err := diaglog.NewFileSink(settings.DiagnosticLog)
	if err != nil {
		return err
	}
	defer sink.Close()

	labels := labelcode.Load(settings.LabelcodesFile)

	p := tea.NewProgram(NewModel(settings, labels, sink), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
