package models

import "time"

// VersionStore persists per-document snapshot history, most-recent
// first. Implementations: datastore.FileVersionStore and the
// cache.CachedVersionStore decorator.
type VersionStore interface {
	// StoreSnapshot appends a snapshot to the head of the document's
	// history and returns its generated id.
	StoreSnapshot(filePath, content string, timestamp time.Time, isSuccessful bool) (string, error)
	// GetLastSuccessful returns the newest snapshot with
	// IsSuccessful == true, or nil if none exists.
	GetLastSuccessful(filePath string) (*Snapshot, error)
	// GetHistory returns up to limit most-recent entries as summaries.
	// A missing history yields an empty slice, never an error.
	GetHistory(filePath string, limit int) ([]VersionSummary, error)
	// CleanupOldVersions retains the keepCount most recent entries plus,
	// when none of those is successful, the most recent successful one.
	// Returns the number of removed entries.
	CleanupOldVersions(filePath string, keepCount int) (int, error)
}

// DiffGenerator computes line-level edit scripts between two full-text
// versions of a document.
type DiffGenerator interface {
	GenerateDiff(oldContent, newContent string) []DiffLine
	GetDiffStatistics(diffLines []DiffLine) DiffStatistics
	FindCriticalChanges(diffLines []DiffLine) []DiffLine
	GenerateUnifiedDiff(oldContent, newContent string, contextLines int) (string, error)
}

// StructuralValidator scans document text for syntax-level structural
// defects independent of any diff.
type StructuralValidator interface {
	// DetectErrors scans content; filePath, when non-empty, anchors
	// resource-existence checks to the document's directory.
	DetectErrors(content, filePath string) []StructuralError
	// GetErrorCategories enumerates every kind tag the validator emits.
	GetErrorCategories() []string
	// IsCompilationBlocking is the single authoritative mapping from
	// severity to "would the compiler reject this".
	IsCompilationBlocking(err StructuralError) bool
}

// DebugPresenter receives availability state for a host's panel. A nil
// presenter is valid; the coordinator no-ops.
type DebugPresenter interface {
	ShowDebugPanel(hasLastVersion bool)
}

// DiffViewer receives computed diffs for display. A nil viewer is
// valid; the coordinator reports the reason instead.
type DiffViewer interface {
	DisplaySideBySide(oldContent, newContent string, diffLines []DiffLine)
	HighlightCritical(diffLines []DiffLine)
	SetNavigationCallback(onGotoLine func(lineNumber int))
}
