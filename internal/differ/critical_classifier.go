package differ

import (
	"regexp"
	"strings"
)

// criticalPatterns matches LaTeX commands whose change is structurally
// significant. Order is irrelevant: classification is "does any pattern
// match", not first-match dispatch.
var criticalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\\(?:section|subsection|subsubsection)\{[^}]*\}`),
	regexp.MustCompile(`\\(?:begin|end)\{[^}]*\}`),
	regexp.MustCompile(`\\(?:documentclass|usepackage)\{[^}]*\}`),
	regexp.MustCompile(`\\(?:input|include|includegraphics)\{[^}]*\}`),
	regexp.MustCompile(`\\(?:label|ref|cite)\{[^}]*\}`),
	regexp.MustCompile(`\\(?:newcommand|renewcommand|def)\{[^}]*\}`),
}

// criticalKeywords are structural commands matched by plain substring
// search, covering forms the patterns above miss (optional arguments,
// no braces).
var criticalKeywords = []string{
	`\documentclass`,
	`\begin{document}`,
	`\end{document}`,
	`\maketitle`,
	`\tableofcontents`,
	`\bibliography`,
}

// CriticalChangeClassifier decides whether a line carries a structural
// LaTeX element.
type CriticalChangeClassifier struct{}

// NewCriticalChangeClassifier creates a new classifier
func NewCriticalChangeClassifier() *CriticalChangeClassifier {
	return &CriticalChangeClassifier{}
}

// IsCritical reports whether the line contains a structural element.
// Comment lines are never critical.
func (ccc *CriticalChangeClassifier) IsCritical(line string) bool {
	if strings.HasPrefix(strings.TrimSpace(line), "%") {
		return false
	}

	for _, pattern := range criticalPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}

	for _, keyword := range criticalKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}

	return false
}
