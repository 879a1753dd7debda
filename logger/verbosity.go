package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
//
// These map the cumulative -v flags to zap log levels:
//
//	0 (none)  -> WarnLevel  (conflicts and warnings only)
//	1 (-v)    -> InfoLevel  (+ per-target progress, run summaries)
//	2+ (-vv)  -> DebugLevel (+ per-symbol claims and exclusion decisions)
const (
	VerbosityUser  = 0
	VerbosityInfo  = 1
	VerbosityDebug = 2
)

// VerbosityToLevel maps verbosity flag counts (-v, -vv, ...) to zap log levels
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
