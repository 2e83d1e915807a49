package datastore

import (
	"encoding/json"
	"os"
	"time"

	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/models"
)

// loadHistory reads a document's history file. A missing file is an
// empty history. A file that exists but cannot be read or parsed is
// also treated as empty so a broken history never costs the user their
// current document; the corruption is logged instead of propagated.
func (fvs *FileVersionStore) loadHistory(historyPath string) models.VersionHistory {
	data, err := os.ReadFile(historyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fvs.logger.Warn().Err(err).Str("history_path", historyPath).
				Msg("History file unreadable, treating as empty history")
		}
		return newEmptyHistory()
	}

	var history models.VersionHistory
	if err := json.Unmarshal(data, &history); err != nil {
		fvs.logger.Warn().Err(common.WrapError(common.ErrCorruptHistory, err.Error())).
			Str("history_path", historyPath).
			Msg("History file corrupted, treating as empty history")
		return newEmptyHistory()
	}

	if history.Versions == nil {
		history.Versions = []models.Snapshot{}
	}
	return history
}

// saveHistory writes the full history back atomically (temp file +
// rename), so a crash mid-write never truncates the history file.
func (fvs *FileVersionStore) saveHistory(historyPath string, history models.VersionHistory) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to marshal version history")
	}

	if err := fvs.fileManager.WriteFileAtomic(historyPath, data, 0644); err != nil {
		fvs.logger.Error().Err(err).Str("history_path", historyPath).Msg("Failed to write history file")
		return common.WrapError(common.ErrStorageUnavailable, err.Error())
	}

	return nil
}

func newEmptyHistory() models.VersionHistory {
	return models.VersionHistory{
		Versions: []models.Snapshot{},
		Created:  time.Now(),
	}
}
