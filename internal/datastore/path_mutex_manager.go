package datastore

import (
	"sync"

	"github.com/rs/zerolog"
)

// PathMutexManager hands out one mutex per document path so concurrent
// same-process callers touching the same history file are serialized.
type PathMutexManager struct {
	mutexes map[string]*sync.Mutex
	mapLock sync.RWMutex
	logger  zerolog.Logger
}

// NewPathMutexManager creates a new path mutex manager
func NewPathMutexManager(logger zerolog.Logger) *PathMutexManager {
	return &PathMutexManager{
		mutexes: make(map[string]*sync.Mutex),
		logger:  logger.With().Str("component", "PathMutexManager").Logger(),
	}
}

// GetMutex returns the mutex for the specific document path
func (pmm *PathMutexManager) GetMutex(filePath string) *sync.Mutex {
	pmm.mapLock.RLock()
	mutex, exists := pmm.mutexes[filePath]
	pmm.mapLock.RUnlock()

	if exists {
		return mutex
	}

	pmm.mapLock.Lock()
	defer pmm.mapLock.Unlock()

	if mutex, exists = pmm.mutexes[filePath]; exists {
		return mutex
	}

	mutex = &sync.Mutex{}
	pmm.mutexes[filePath] = mutex
	pmm.logger.Debug().Str("file_path", filePath).Msg("Created mutex for document path")
	return mutex
}
