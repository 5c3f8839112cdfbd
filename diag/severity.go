// FILE: lixenwraith/compileropts/diag/severity.go
package diag

import "log/slog"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for diagnostics that never fail a run.
	SevWarning
	// SevError marks a problem the host should treat as a failed run.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// SlogLevel maps the severity onto a slog level.
func (s Severity) SlogLevel() slog.Level {
	switch s {
	case SevWarning:
		return slog.LevelWarn
	case SevError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
