package common

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ReadFile reads the full content of a file
func (fm *FileManager) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "failed to read file: "+path)
	}
	return data, nil
}

// EnsureDirectory creates a directory and its parents if they don't exist
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return NewValidationError("path", path, "exists but is not a directory")
		}
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return WrapError(err, "failed to create directory: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// WriteFileAtomic writes data to a temporary file in the target directory
// and renames it over the destination, so a crash mid-write never leaves
// a truncated file behind.
func (fm *FileManager) WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := fm.EnsureDirectory(dir, 0755); err != nil {
		return WrapError(err, "failed to create parent directories for: "+path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return WrapError(err, "failed to create temporary file in: "+dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return WrapError(err, "failed to write temporary file: "+tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return WrapError(err, "failed to close temporary file: "+tmpPath)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return WrapError(err, "failed to set permissions on: "+tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return WrapError(err, "failed to rename temporary file to: "+path)
	}

	return nil
}
