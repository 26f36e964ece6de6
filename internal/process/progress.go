package process

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent is one processing progress update, delivered to the
// onProgress callback for display by the CLI or TUI.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}
