package datastore

import (
	"fmt"
	"path/filepath"

	"github.com/automatex/texvers/internal/common"
	"github.com/rs/zerolog"
)

// HistoryPathGenerator handles file path generation for history files.
// The filename combines the document's base name with a short hash of
// its absolute path, so two documents with the same base name in
// different directories never collide.
type HistoryPathGenerator struct {
	logger      zerolog.Logger
	pathHashGen *PathHashGenerator
	fileManager *common.FileManager
	rootDir     string
}

// NewHistoryPathGenerator creates a new history path generator
func NewHistoryPathGenerator(rootDir string, pathHashGen *PathHashGenerator, logger zerolog.Logger) *HistoryPathGenerator {
	return &HistoryPathGenerator{
		logger:      logger.With().Str("component", "HistoryPathGenerator").Logger(),
		pathHashGen: pathHashGen,
		fileManager: common.NewFileManager(logger),
		rootDir:     rootDir,
	}
}

// GenerateHistoryFilePath returns the path to the JSON history file for
// a document, creating the storage root when needed.
func (hpg *HistoryPathGenerator) GenerateHistoryFilePath(docPath string) (string, error) {
	absPath, err := filepath.Abs(docPath)
	if err != nil {
		absPath = docPath
	}

	pathHash := hpg.pathHashGen.GenerateHash(absPath)
	fileName := fmt.Sprintf("%s_%s.json", filepath.Base(docPath), pathHash)

	if err := hpg.fileManager.EnsureDirectory(hpg.rootDir, 0755); err != nil {
		hpg.logger.Error().Err(err).Str("directory", hpg.rootDir).Msg("Failed to create storage root directory")
		return "", common.WrapError(common.ErrStorageUnavailable, "failed to create storage root: "+hpg.rootDir)
	}

	historyPath := filepath.Join(hpg.rootDir, fileName)
	hpg.logger.Debug().
		Str("doc_path", docPath).
		Str("history_path", historyPath).
		Str("path_hash", pathHash).
		Msg("Generated history file path")

	return historyPath, nil
}
