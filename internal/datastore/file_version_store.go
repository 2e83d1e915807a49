package datastore

import (
	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/config"
	"github.com/rs/zerolog"
)

// FileVersionStore persists document snapshots as one JSON history file
// per tracked document path, most-recent first. It implements
// models.VersionStore.
type FileVersionStore struct {
	logger        zerolog.Logger
	cfg           config.StorageConfig
	pathGenerator *HistoryPathGenerator
	mutexManager  *PathMutexManager
	fileManager   *common.FileManager
	idGenerator   *SnapshotIDGenerator
}

// NewFileVersionStore creates a new file-backed version store
func NewFileVersionStore(cfg config.StorageConfig, logger zerolog.Logger) (*FileVersionStore, error) {
	if cfg.RootDir == "" {
		return nil, common.NewValidationError("root_dir", cfg.RootDir, "storage root directory cannot be empty")
	}

	componentLogger := logger.With().Str("component", "FileVersionStore").Logger()
	pathHashGen := NewPathHashGenerator(cfg.PathHashLen)

	return &FileVersionStore{
		logger:        componentLogger,
		cfg:           cfg,
		pathGenerator: NewHistoryPathGenerator(cfg.RootDir, pathHashGen, componentLogger),
		mutexManager:  NewPathMutexManager(componentLogger),
		fileManager:   common.NewFileManager(componentLogger),
		idGenerator:   NewSnapshotIDGenerator(config.DefaultStorageIDHashLen),
	}, nil
}
