package datastore

import (
	"time"

	"github.com/automatex/texvers/internal/models"
)

const contentPreviewLimit = 200

// StoreSnapshot appends a new snapshot to the head of the document's
// history and returns its id. Storing an identical snapshot (same
// content hash and timestamp) twice is a no-op returning the existing
// id.
func (fvs *FileVersionStore) StoreSnapshot(filePath, content string, timestamp time.Time, isSuccessful bool) (string, error) {
	mutex := fvs.mutexManager.GetMutex(filePath)
	mutex.Lock()
	defer mutex.Unlock()

	historyPath, err := fvs.pathGenerator.GenerateHistoryFilePath(filePath)
	if err != nil {
		return "", err
	}

	snapshotID := fvs.idGenerator.GenerateID(content, timestamp)
	history := fvs.loadHistory(historyPath)

	for _, existing := range history.Versions {
		if existing.ID == snapshotID {
			fvs.logger.Debug().Str("file_path", filePath).Str("snapshot_id", snapshotID).
				Msg("Snapshot already exists, skipping duplicate")
			return snapshotID, nil
		}
	}

	snapshot := models.Snapshot{
		ID:           snapshotID,
		FilePath:     filePath,
		Content:      content,
		Timestamp:    timestamp,
		IsSuccessful: isSuccessful,
	}

	// Most-recent first
	history.Versions = append([]models.Snapshot{snapshot}, history.Versions...)
	now := timestamp
	history.LastUpdated = &now

	if err := fvs.saveHistory(historyPath, history); err != nil {
		return "", err
	}

	fvs.logger.Info().Str("file_path", filePath).Str("snapshot_id", snapshotID).
		Bool("compilation_success", isSuccessful).Int("total_versions", len(history.Versions)).
		Msg("Stored document snapshot")
	return snapshotID, nil
}

// GetLastSuccessful returns the newest snapshot flagged successful, or
// nil if the document has no successful snapshot yet.
func (fvs *FileVersionStore) GetLastSuccessful(filePath string) (*models.Snapshot, error) {
	mutex := fvs.mutexManager.GetMutex(filePath)
	mutex.Lock()
	defer mutex.Unlock()

	historyPath, err := fvs.pathGenerator.GenerateHistoryFilePath(filePath)
	if err != nil {
		return nil, err
	}

	history := fvs.loadHistory(historyPath)
	for i := range history.Versions {
		if history.Versions[i].IsSuccessful {
			snapshot := history.Versions[i]
			return &snapshot, nil
		}
	}
	return nil, nil
}

// GetHistory returns up to limit most-recent entries as summaries with
// content truncated to a preview. A missing history yields an empty
// slice.
func (fvs *FileVersionStore) GetHistory(filePath string, limit int) ([]models.VersionSummary, error) {
	mutex := fvs.mutexManager.GetMutex(filePath)
	mutex.Lock()
	defer mutex.Unlock()

	historyPath, err := fvs.pathGenerator.GenerateHistoryFilePath(filePath)
	if err != nil {
		return nil, err
	}

	history := fvs.loadHistory(historyPath)
	versions := history.Versions
	if limit > 0 && len(versions) > limit {
		versions = versions[:limit]
	}

	summaries := make([]models.VersionSummary, 0, len(versions))
	for _, version := range versions {
		summaries = append(summaries, models.VersionSummary{
			ID:             version.ID,
			Timestamp:      version.Timestamp,
			IsSuccessful:   version.IsSuccessful,
			ContentPreview: truncatePreview(version.Content, contentPreviewLimit),
		})
	}
	return summaries, nil
}

// CleanupOldVersions retains the keepCount most recent versions plus,
// when none of those is successful, the most recent successful version
// regardless of age. Returns the number of removed versions. Calling it
// twice in a row removes nothing on the second call.
func (fvs *FileVersionStore) CleanupOldVersions(filePath string, keepCount int) (int, error) {
	mutex := fvs.mutexManager.GetMutex(filePath)
	mutex.Lock()
	defer mutex.Unlock()

	historyPath, err := fvs.pathGenerator.GenerateHistoryFilePath(filePath)
	if err != nil {
		return 0, err
	}

	if keepCount < 0 {
		keepCount = 0
	}

	history := fvs.loadHistory(historyPath)
	if len(history.Versions) <= keepCount {
		return 0, nil
	}

	toKeep := append([]models.Snapshot(nil), history.Versions[:keepCount]...)

	hasSuccessful := false
	for _, version := range toKeep {
		if version.IsSuccessful {
			hasSuccessful = true
			break
		}
	}
	if !hasSuccessful {
		for _, version := range history.Versions[keepCount:] {
			if version.IsSuccessful {
				toKeep = append(toKeep, version)
				break
			}
		}
	}

	removed := len(history.Versions) - len(toKeep)
	if removed == 0 {
		return 0, nil
	}

	history.Versions = toKeep
	if err := fvs.saveHistory(historyPath, history); err != nil {
		return 0, err
	}

	fvs.logger.Info().Str("file_path", filePath).Int("removed", removed).
		Int("kept", len(toKeep)).Msg("Cleaned up old versions")
	return removed, nil
}

func truncatePreview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
