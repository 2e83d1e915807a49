package validator

import (
	"fmt"
	"regexp"

	"github.com/automatex/texvers/internal/models"
)

var (
	beginPattern = regexp.MustCompile(`\\begin\{(\w+)\}`)
	endPattern   = regexp.MustCompile(`\\end\{(\w+)\}`)
)

// openEnvironment remembers where an environment was opened
type openEnvironment struct {
	name       string
	lineNumber int
}

// EnvironmentChecker performs the stack-based whole-document check for
// \begin/\end pairing.
type EnvironmentChecker struct{}

// NewEnvironmentChecker creates a new environment checker
func NewEnvironmentChecker() *EnvironmentChecker {
	return &EnvironmentChecker{}
}

// Check scans the whole document: every \begin pushes, every \end pops
// and must match the top of the stack. Anything left open at
// end-of-document is an unclosed environment.
func (ec *EnvironmentChecker) Check(content string) []models.StructuralError {
	var errors []models.StructuralError
	var stack []openEnvironment

	for lineNum, line := range splitContentLines(content) {
		checkable, isComment := stripComment(line)
		if isComment {
			continue
		}

		for _, match := range beginPattern.FindAllStringSubmatch(checkable, -1) {
			stack = append(stack, openEnvironment{name: match[1], lineNumber: lineNum + 1})
		}

		for _, match := range endPattern.FindAllStringSubmatch(checkable, -1) {
			envName := match[1]

			if len(stack) == 0 {
				errors = append(errors, models.StructuralError{
					LineNumber: lineNum + 1,
					Message:    fmt.Sprintf(`\end{%s} without matching \begin{%s}`, envName, envName),
					Severity:   models.SeverityCritical,
					Kind:       KindUnmatchedEnd,
					Suggestion: fmt.Sprintf(`Add \begin{%s} before this line`, envName),
				})
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name != envName {
				errors = append(errors, models.StructuralError{
					LineNumber: lineNum + 1,
					Message:    fmt.Sprintf(`\end{%s} does not match \begin{%s} (line %d)`, envName, top.name, top.lineNumber),
					Severity:   models.SeverityCritical,
					Kind:       KindMismatchedEnvironment,
					Suggestion: fmt.Sprintf(`Use \end{%s} or check the nesting`, top.name),
				})
			}
		}
	}

	for _, open := range stack {
		errors = append(errors, models.StructuralError{
			LineNumber: open.lineNumber,
			Message:    fmt.Sprintf("Environment '%s' is never closed", open.name),
			Severity:   models.SeverityCritical,
			Kind:       KindUnclosedEnvironment,
			Suggestion: fmt.Sprintf(`Add \end{%s}`, open.name),
		})
	}

	return errors
}
