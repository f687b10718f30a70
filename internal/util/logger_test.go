package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		verbose  int
		expected LogLevel
	}{
		{"error", 1, ErrorLevel},
		{"warn", 2, WarnLevel},
		{"info", 3, InfoLevel},
		{"debug", 4, DebugLevel},
		{"trace", 5, TraceLevel},
		{"clamped_low", -3, ErrorLevel},
		{"clamped_high", 42, TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFromVerbosity(tt.verbose))
		})
	}
}

func TestGetLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	InitializeLoggerTo(&buf, InfoLevel)

	logger := GetLogger("scan")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "component")
	assert.Contains(t, buf.String(), "scan")
	assert.Contains(t, buf.String(), "hello")
}

func TestSet_DropsEmpty(t *testing.T) {
	t.Parallel()

	set := Set([]string{".git", "", "target", ".git"})

	assert.Len(t, set, 2)
	assert.Contains(t, set, ".git")
	assert.Contains(t, set, "target")
}
