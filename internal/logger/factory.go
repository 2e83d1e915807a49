package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory builds the output writers for a logger configuration.
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates the writer for terminal output
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return formatWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a size-rotated file writer. The log
// directory is created up front; if that fails lumberjack surfaces the
// open error on first write.
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	rotated := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		LocalTime:  true,
	}

	// No ANSI colors inside rotated files
	return formatWriter(rotated, config.Format, true)
}

// formatWriter wraps output according to the requested format. JSON
// passes zerolog's native output through untouched; console and text
// use the human-readable writer, text always without color.
func formatWriter(output io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return output
	case FormatText:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: noColor}
	}
}
