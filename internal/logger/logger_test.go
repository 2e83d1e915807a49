package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerBuilder_Default(t *testing.T) {
	logger, err := NewLoggerBuilder().Build()
	require.NoError(t, err)
	require.NotNil(t, logger)

	config := logger.config
	assert.Equal(t, zerolog.InfoLevel, config.Level)
	assert.Equal(t, FormatConsole, config.Format)
	assert.True(t, config.EnableConsole)
	assert.False(t, config.EnableFile)
}

func TestLoggerBuilder_WithConfig(t *testing.T) {
	cfg := FileLogConfig{
		LogFile:   filepath.Join(t.TempDir(), "texvers.log"),
		LogFormat: "json",
		LogLevel:  "debug",
	}

	logger, err := NewLoggerBuilder().WithConfig(cfg).Build()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, logger.config.Level)
	assert.Equal(t, FormatJSON, logger.config.Format)
	assert.True(t, logger.config.EnableFile)
	assert.Equal(t, DefaultMaxLogSizeMB, logger.config.MaxSizeMB)
	assert.Equal(t, DefaultMaxLogBackups, logger.config.MaxBackups)
}

func TestLoggerBuilder_FileLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "texvers.log")
	cfg := FileLogConfig{
		LogFile:   logFile,
		LogFormat: "json",
		LogLevel:  "debug",
	}

	zLogger, err := New(cfg)
	require.NoError(t, err)

	zLogger.Debug().Str("component", "test").Msg("file logging works")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"debug"`)
	assert.Contains(t, string(content), `"message":"file logging works"`)
}

func TestLoggerBuilder_InvalidLevelFallsBackToInfo(t *testing.T) {
	cfg := NewDefaultFileLogConfig()
	cfg.LogLevel = "verbose"

	logger, err := NewLoggerBuilder().WithConfig(cfg).Build()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.config.Level)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, parseFormat("json"))
	assert.Equal(t, FormatText, parseFormat("text"))
	assert.Equal(t, FormatConsole, parseFormat("console"))
	assert.Equal(t, FormatConsole, parseFormat("anything-else"))
}
