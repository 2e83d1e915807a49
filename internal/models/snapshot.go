package models

import "time"

// Snapshot is an immutable stored copy of a document's full text at a
// point in time, tagged with whether the compilation that produced it
// succeeded.
type Snapshot struct {
	ID           string    `json:"id"`
	FilePath     string    `json:"file_path"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	IsSuccessful bool      `json:"compilation_success"`
}

// VersionSummary is a lightweight view of a snapshot for history
// listings. Content is truncated to a preview.
type VersionSummary struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	IsSuccessful   bool      `json:"compilation_success"`
	ContentPreview string    `json:"content_preview"`
}

// VersionHistory is the on-disk JSON shape of a document's stored
// versions, most-recent first.
type VersionHistory struct {
	Versions    []Snapshot `json:"versions"`
	Created     time.Time  `json:"created"`
	LastUpdated *time.Time `json:"last_updated"`
}
