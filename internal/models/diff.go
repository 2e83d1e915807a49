package models

import "time"

// DiffKind classifies a line in a generated diff.
type DiffKind int

const (
	// DiffUnchanged indicates a line present in both versions.
	DiffUnchanged DiffKind = iota
	// DiffAdded indicates a line present only in the new version.
	DiffAdded
	// DiffDeleted indicates a line present only in the old version.
	DiffDeleted
	// DiffModified indicates the new side of a replaced block.
	DiffModified
)

// String returns string representation of DiffKind
func (dk DiffKind) String() string {
	switch dk {
	case DiffAdded:
		return "added"
	case DiffDeleted:
		return "deleted"
	case DiffModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// DiffLine represents a single line in a generated diff.
// LineNumber is the position in the new version for added, modified and
// unchanged lines, and an approximate position for deleted lines.
// OldLineNumber is the position in the old version where known.
type DiffLine struct {
	LineNumber    int      `json:"line_number"`
	Content       string   `json:"content"`
	Kind          DiffKind `json:"kind"`
	OldLineNumber *int     `json:"old_line_number,omitempty"`
}

// DiffStatistics holds the tallies of a diff by line kind.
type DiffStatistics struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	Unchanged     int `json:"unchanged"`
	TotalLines    int `json:"total_lines"`
}

// HasChanges reports whether the diff contains any non-unchanged line.
func (ds DiffStatistics) HasChanges() bool {
	return ds.Additions > 0 || ds.Deletions > 0 || ds.Modifications > 0
}

// QuickDiffSummary is the plain-data answer to "what changed since the
// last good version".
type QuickDiffSummary struct {
	Statistics           DiffStatistics `json:"statistics"`
	CriticalChangeCount  int            `json:"critical_change_count"`
	LastVersionTimestamp time.Time      `json:"last_version_timestamp"`
	HasChanges           bool           `json:"has_changes"`
}
