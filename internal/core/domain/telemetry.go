package domain

import "strings"

// StageStatus represents the lifecycle state of one recorded optimizer stage.
type StageStatus string

const (
	// StageStatusPending indicates the stage has been planned but not started.
	StageStatusPending StageStatus = "pending"
	// StageStatusRunning indicates the stage is currently executing.
	StageStatusRunning StageStatus = "running"
	// StageStatusCompleted indicates the stage finished successfully.
	StageStatusCompleted StageStatus = "completed"
	// StageStatusFailed indicates the stage recorded an error.
	StageStatusFailed StageStatus = "failed"
	// StageStatusSkipped indicates the stage had nothing to do.
	StageStatusSkipped StageStatus = "skipped"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// IsTerminal checks if a status is a terminal state (Completed, Failed, Skipped).
func (s StageStatus) IsTerminal() bool {
	switch s {
	case StageStatusCompleted, StageStatusFailed, StageStatusSkipped:
		return true
	default:
		return false
	}
}

// NormalizeStageStatus converts a string to a StageStatus, defaulting to pending if unknown.
func NormalizeStageStatus(s string) StageStatus {
	switch status := StageStatus(strings.ToLower(s)); status {
	case StageStatusPending, StageStatusRunning, StageStatusCompleted, StageStatusFailed, StageStatusSkipped:
		return status
	default:
		return StageStatusPending
	}
}
