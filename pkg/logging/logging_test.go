package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			Setup(Options{Verbosity: tt.verbosity, File: true, Console: &bytes.Buffer{}})
			t.Cleanup(closeLogFile)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "renamer", "renamer.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetup_WithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	Setup(Options{Verbosity: 1, File: false, Console: &buf})

	log.Info().Msg("hello from test")

	assert.Contains(t, buf.String(), "hello from test")
	_, err := os.Stat(filepath.Join(tempDir, "renamer", "renamer.log"))
	assert.True(t, os.IsNotExist(err), "log file must not be created when file logging is off")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "renamer", "renamer.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("renamer")
	logger.Info().Msg("component message")

	assert.Contains(t, buf.String(), `"component":"renamer"`)
}

func TestSetup_ClosesPreviousLogFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)
	t.Cleanup(closeLogFile)

	Setup(Options{File: true, Console: &bytes.Buffer{}})
	first := logFile
	require.NotNil(t, first)

	Setup(Options{File: true, Console: &bytes.Buffer{}})
	require.NotNil(t, logFile)
	assert.NotSame(t, first, logFile)

	_, err := first.WriteString("late write")
	assert.ErrorIs(t, err, os.ErrClosed)

	Setup(Options{File: false, Console: &bytes.Buffer{}})
	assert.Nil(t, logFile)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "walk")
	require.Contains(t, buf.String(), "Operation started")
	done()

	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"walk"`)
}
