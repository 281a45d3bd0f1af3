package logger

import "github.com/picolog/picolog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel = core.InfoLevel
	WarnLevel = core.WarnLevel
	CritLevel = core.CritLevel
)

// Literal re-exports core.Literal so call sites only import logger.
type Literal = core.Literal

// SetLevel sets the process-wide minimum level.
func SetLevel(level Level) {
	core.SetLevel(level)
}

// IsLogged reports whether records at the given level pass the gate.
func IsLogged(level Level) bool {
	return core.IsLogged(level)
}
