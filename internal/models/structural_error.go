package models

// ErrorSeverity grades a detected structural defect.
type ErrorSeverity string

const (
	// SeverityCritical marks defects that make compilation fail.
	SeverityCritical ErrorSeverity = "critical"
	// SeverityWarning marks heuristic findings that may cause problems.
	SeverityWarning ErrorSeverity = "warning"
	// SeverityInfo marks purely informational findings.
	SeverityInfo ErrorSeverity = "info"
)

// StructuralError describes a defect found in document text. It is a
// result describing the document's own content, never a system error.
type StructuralError struct {
	LineNumber int           `json:"line_number"`
	Message    string        `json:"message"`
	Severity   ErrorSeverity `json:"severity"`
	Kind       string        `json:"kind"`
	Suggestion string        `json:"suggestion,omitempty"`
}
