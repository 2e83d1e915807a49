package validator

import (
	"fmt"
	"regexp"

	"github.com/automatex/texvers/internal/models"
)

var (
	refPattern     = regexp.MustCompile(`\\ref\{([^}]*)\}`)
	citePattern    = regexp.MustCompile(`\\cite\{([^}]*)\}`)
	packagePattern = regexp.MustCompile(`\\usepackage(?:\[[^\]]*\])?\{([^}]+)\}`)
)

// HeuristicLineChecker emits the non-blocking findings: references and
// citations that may be undefined, and package declarations. These are
// heuristics, so they are never Critical.
type HeuristicLineChecker struct{}

// NewHeuristicLineChecker creates a new heuristic line checker
func NewHeuristicLineChecker() *HeuristicLineChecker {
	return &HeuristicLineChecker{}
}

// Check scans one comment-stripped line
func (hlc *HeuristicLineChecker) Check(line string, lineNumber int) []models.StructuralError {
	var errors []models.StructuralError

	for _, match := range refPattern.FindAllStringSubmatch(line, -1) {
		errors = append(errors, models.StructuralError{
			LineNumber: lineNumber,
			Message:    fmt.Sprintf("Reference '%s' may be undefined", match[1]),
			Severity:   models.SeverityWarning,
			Kind:       KindUndefinedReference,
			Suggestion: fmt.Sprintf(`Make sure a \label{%s} exists`, match[1]),
		})
	}

	for _, match := range citePattern.FindAllStringSubmatch(line, -1) {
		errors = append(errors, models.StructuralError{
			LineNumber: lineNumber,
			Message:    fmt.Sprintf("Citation '%s' may be undefined", match[1]),
			Severity:   models.SeverityWarning,
			Kind:       KindUndefinedCitation,
			Suggestion: "Check your bibliography file",
		})
	}

	for _, match := range packagePattern.FindAllStringSubmatch(line, -1) {
		errors = append(errors, models.StructuralError{
			LineNumber: lineNumber,
			Message:    fmt.Sprintf("Package '%s' in use", match[1]),
			Severity:   models.SeverityInfo,
			Kind:       KindPackageUsage,
		})
	}

	return errors
}
