package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	// Before Initialize, the package-level logger must be usable
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("pre-init message", "key", "value")
		Debugf("pre-init %s", "debug")
	})
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false, VerbosityInfo)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotPanics(t, func() {
		Infow("generation started", "targets", 2)
	})
	Cleanup()
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true, VerbosityUser)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	Cleanup()
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zapcore.Level
	}{
		{"default is warn", 0, zapcore.WarnLevel},
		{"-v is info", 1, zapcore.InfoLevel},
		{"-vv is debug", 2, zapcore.DebugLevel},
		{"-vvv stays debug", 3, zapcore.DebugLevel},
		{"absurd count stays debug", 9, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity))
		})
	}
}
