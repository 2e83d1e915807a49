package cache

import (
	"fmt"
	"time"

	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
)

// CachedVersionStore decorates any models.VersionStore with TTL
// memoization of its read-heavy queries. Writes are always forwarded
// and synchronously invalidate the affected entries, so a read made by
// the same process strictly after a write never observes data the write
// made stale.
type CachedVersionStore struct {
	store             models.VersionStore
	cache             *MemoryCache
	logger            zerolog.Logger
	lastSuccessfulTTL time.Duration
	historyTTL        time.Duration
}

// NewCachedVersionStore creates a caching decorator around store
func NewCachedVersionStore(store models.VersionStore, cfg config.CacheConfig, logger zerolog.Logger) (*CachedVersionStore, error) {
	if store == nil {
		return nil, common.NewValidationError("store", store, "underlying version store cannot be nil")
	}

	return &CachedVersionStore{
		store:             store,
		cache:             NewMemoryCache(time.Duration(cfg.DefaultTTLSecs) * time.Second),
		logger:            logger.With().Str("component", "CachedVersionStore").Logger(),
		lastSuccessfulTTL: time.Duration(cfg.LastSuccessfulTTLSecs) * time.Second,
		historyTTL:        time.Duration(cfg.HistoryTTLSecs) * time.Second,
	}, nil
}

// Cache returns the underlying memory cache, for stats and sweeps
func (cvs *CachedVersionStore) Cache() *MemoryCache {
	return cvs.cache
}

// StoreSnapshot forwards the write and evicts every cached entry for
// that document path before returning.
func (cvs *CachedVersionStore) StoreSnapshot(filePath, content string, timestamp time.Time, isSuccessful bool) (string, error) {
	cvs.cache.Delete(lastSuccessfulKey(filePath))
	cvs.cache.DeleteContaining(filePath)

	return cvs.store.StoreSnapshot(filePath, content, timestamp, isSuccessful)
}

// GetLastSuccessful memoizes the underlying lookup per document path.
// A "no successful version" outcome is not cached, so the first
// successful store becomes visible immediately even across processes.
func (cvs *CachedVersionStore) GetLastSuccessful(filePath string) (*models.Snapshot, error) {
	key := lastSuccessfulKey(filePath)
	if cached, ok := cvs.cache.Get(key); ok {
		cvs.logger.Debug().Str("file_path", filePath).Msg("Last successful version served from cache")
		return cached.(*models.Snapshot), nil
	}

	snapshot, err := cvs.store.GetLastSuccessful(filePath)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		cvs.cache.Set(key, snapshot, cvs.lastSuccessfulTTL)
	}
	return snapshot, nil
}

// GetHistory memoizes per (document path, limit) pair
func (cvs *CachedVersionStore) GetHistory(filePath string, limit int) ([]models.VersionSummary, error) {
	key := historyKey(filePath, limit)
	if cached, ok := cvs.cache.Get(key); ok {
		cvs.logger.Debug().Str("file_path", filePath).Int("limit", limit).Msg("Version history served from cache")
		return cached.([]models.VersionSummary), nil
	}

	history, err := cvs.store.GetHistory(filePath, limit)
	if err != nil {
		return nil, err
	}
	cvs.cache.Set(key, history, cvs.historyTTL)
	return history, nil
}

// CleanupOldVersions forwards the cleanup and evicts every cache entry
// whose key mentions that document path.
func (cvs *CachedVersionStore) CleanupOldVersions(filePath string, keepCount int) (int, error) {
	evicted := cvs.cache.DeleteContaining(filePath)
	if evicted > 0 {
		cvs.logger.Debug().Str("file_path", filePath).Int("evicted", evicted).Msg("Evicted cache entries before cleanup")
	}

	return cvs.store.CleanupOldVersions(filePath, keepCount)
}

func lastSuccessfulKey(filePath string) string {
	return "last_success_" + filePath
}

func historyKey(filePath string, limit int) string {
	return fmt.Sprintf("history_%s_%d", filePath, limit)
}
