package coordinator

import (
	"time"

	"github.com/automatex/texvers/internal/auditlog"
	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
)

// DefaultKeepCount is the retention count applied after every stored
// successful compilation.
const DefaultKeepCount = 5

// Coordinator is the engine's single stateful object. It tracks the
// host's current document, stores snapshots after successful
// compilations, and answers "what changed since the last good version"
// queries. All collaborators are injected; the display, presentation
// and navigation sinks are optional and every operation no-ops safely
// when a sink is absent.
//
// The coordinator is not internally synchronized; a host calling it
// from multiple goroutines for the same document must serialize those
// calls itself.
type Coordinator struct {
	logger    zerolog.Logger
	store     models.VersionStore
	diffGen   models.DiffGenerator
	validator models.StructuralValidator
	audit     *auditlog.AuditLog
	presenter models.DebugPresenter
	viewer    models.DiffViewer

	keepCount  int
	onGotoLine func(lineNumber int)

	currentFilePath string
	currentContent  string
	hasDocument     bool
}

// SetCurrentDocument replaces the tracked document and reports to the
// presenter whether a prior successful version exists. No diff is
// computed eagerly.
func (c *Coordinator) SetCurrentDocument(filePath, content string) {
	c.currentFilePath = filePath
	c.currentContent = content
	c.hasDocument = true

	hasLastVersion := false
	lastVersion, err := c.store.GetLastSuccessful(filePath)
	if err != nil {
		c.logger.Warn().Err(err).Str("file_path", filePath).
			Msg("Failed to check for prior successful version")
	} else {
		hasLastVersion = lastVersion != nil
	}

	if c.presenter != nil {
		c.presenter.ShowDebugPanel(hasLastVersion)
	}

	c.logger.Debug().Str("file_path", filePath).Bool("has_last_version", hasLastVersion).
		Msg("Current document updated")
}

// SetNavigationCallback registers the line-navigation sink wired
// through to the diff viewer on display.
func (c *Coordinator) SetNavigationCallback(onGotoLine func(lineNumber int)) {
	c.onGotoLine = onGotoLine
}

// StoreSuccessfulCompilation stores a snapshot flagged successful, then
// applies retention cleanup. Storage failures are returned for the host
// to surface; they are never fatal here.
func (c *Coordinator) StoreSuccessfulCompilation(filePath, content string) error {
	if !c.hasDocument {
		c.logger.Warn().Str("file_path", filePath).
			Msg("StoreSuccessfulCompilation called before SetCurrentDocument, ignoring")
		return common.ErrNoDocument
	}

	previous, err := c.store.GetLastSuccessful(filePath)
	if err != nil {
		c.logger.Warn().Err(err).Str("file_path", filePath).
			Msg("Failed to load previous version for audit statistics")
		previous = nil
	}

	timestamp := time.Now()
	versionID, err := c.store.StoreSnapshot(filePath, content, timestamp, true)
	if err != nil {
		c.logger.Error().Err(err).Str("file_path", filePath).Msg("Failed to store snapshot")
		return common.WrapError(err, "failed to store successful compilation")
	}

	removed, err := c.store.CleanupOldVersions(filePath, c.keepCount)
	if err != nil {
		c.logger.Warn().Err(err).Str("file_path", filePath).Msg("Retention cleanup failed")
	} else if removed > 0 {
		c.logger.Info().Int("removed", removed).Str("file_path", filePath).Msg("Removed old versions")
	}

	c.recordAudit(filePath, versionID, timestamp, previous, content)

	c.logger.Info().Str("file_path", filePath).Str("version_id", versionID).
		Msg("Stored successful compilation")
	return nil
}

// recordAudit writes an audit row with diff statistics against the
// previous successful version. Audit failures are logged, never
// propagated.
func (c *Coordinator) recordAudit(filePath, versionID string, storedAt time.Time, previous *models.Snapshot, content string) {
	if c.audit == nil {
		return
	}

	var stats models.DiffStatistics
	if previous != nil {
		stats = c.diffGen.GetDiffStatistics(c.diffGen.GenerateDiff(previous.Content, content))
	}

	_, err := c.audit.RecordCompilation(auditlog.CompilationEntry{
		FilePath:      filePath,
		VersionID:     versionID,
		StoredAt:      storedAt,
		LinesAdded:    stats.Additions,
		LinesDeleted:  stats.Deletions,
		LinesModified: stats.Modifications,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("file_path", filePath).Msg("Failed to write compilation audit entry")
	}
}

// ShowDiffWithLastVersion computes the diff between the current
// document and its last successful version and hands it to the diff
// viewer. Each missing precondition is reported as its own distinct
// outcome.
func (c *Coordinator) ShowDiffWithLastVersion() error {
	if !c.hasDocument {
		return common.ErrNoDocument
	}
	if c.viewer == nil {
		return common.NewValidationError("diff_viewer", nil, "no diff viewer registered")
	}

	lastVersion, err := c.store.GetLastSuccessful(c.currentFilePath)
	if err != nil {
		return common.WrapError(err, "failed to load last successful version")
	}
	if lastVersion == nil {
		return common.ErrNoPriorVersion
	}

	diffLines := c.diffGen.GenerateDiff(lastVersion.Content, c.currentContent)
	criticalChanges := c.diffGen.FindCriticalChanges(diffLines)

	c.viewer.DisplaySideBySide(lastVersion.Content, c.currentContent, diffLines)
	if len(criticalChanges) > 0 {
		c.viewer.HighlightCritical(criticalChanges)
	}
	if c.onGotoLine != nil {
		c.viewer.SetNavigationCallback(c.onGotoLine)
	}

	c.logger.Info().Int("diff_lines", len(diffLines)).Int("critical_changes", len(criticalChanges)).
		Msg("Displayed diff with last successful version")
	return nil
}

// GetQuickDiffSummary returns compact change statistics against the
// last successful version. ErrNoDocument and ErrNoPriorVersion are
// distinct "nothing to compare yet" outcomes, not failures.
func (c *Coordinator) GetQuickDiffSummary() (*models.QuickDiffSummary, error) {
	if !c.hasDocument {
		return nil, common.ErrNoDocument
	}

	lastVersion, err := c.store.GetLastSuccessful(c.currentFilePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load last successful version")
	}
	if lastVersion == nil {
		return nil, common.ErrNoPriorVersion
	}

	diffLines := c.diffGen.GenerateDiff(lastVersion.Content, c.currentContent)
	stats := c.diffGen.GetDiffStatistics(diffLines)
	criticalChanges := c.diffGen.FindCriticalChanges(diffLines)

	return &models.QuickDiffSummary{
		Statistics:           stats,
		CriticalChangeCount:  len(criticalChanges),
		LastVersionTimestamp: lastVersion.Timestamp,
		HasChanges:           stats.HasChanges(),
	}, nil
}

// ValidateCurrentDocument runs the structural validator over the
// tracked document. Without a document or a validator it returns nil.
func (c *Coordinator) ValidateCurrentDocument() []models.StructuralError {
	if !c.hasDocument || c.validator == nil {
		return nil
	}
	return c.validator.DetectErrors(c.currentContent, c.currentFilePath)
}

// GetVersionHistory returns the tracked document's version summaries.
// Without a document it returns an empty list.
func (c *Coordinator) GetVersionHistory(limit int) ([]models.VersionSummary, error) {
	if !c.hasDocument {
		return []models.VersionSummary{}, nil
	}
	return c.store.GetHistory(c.currentFilePath, limit)
}

// ForceCleanupVersions runs retention cleanup with an explicit keep
// count. Without a document it removes nothing.
func (c *Coordinator) ForceCleanupVersions(keepCount int) (int, error) {
	if !c.hasDocument {
		return 0, nil
	}
	return c.store.CleanupOldVersions(c.currentFilePath, keepCount)
}
