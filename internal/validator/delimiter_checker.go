package validator

import (
	"fmt"

	"github.com/automatex/texvers/internal/models"
)

// DelimiterBalanceChecker counts opening vs. closing braces per
// physical line, skipping escaped characters. Balance is intentionally
// not reconciled across lines; the per-line contract is simpler and
// more predictable.
type DelimiterBalanceChecker struct{}

// NewDelimiterBalanceChecker creates a new delimiter balance checker
func NewDelimiterBalanceChecker() *DelimiterBalanceChecker {
	return &DelimiterBalanceChecker{}
}

// Check reports a Critical error when a line's brace count does not
// balance, naming the direction and magnitude of the imbalance.
func (dbc *DelimiterBalanceChecker) Check(line string, lineNumber int) []models.StructuralError {
	balance := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++ // skip escaped character
		case '{':
			balance++
		case '}':
			balance--
		}
	}

	if balance == 0 {
		return nil
	}

	var message, suggestion string
	if balance > 0 {
		message = fmt.Sprintf("Unbalanced braces on this line (%d more '{')", balance)
		suggestion = fmt.Sprintf("Add %d missing '}'", balance)
	} else {
		message = fmt.Sprintf("Unbalanced braces on this line (%d more '}')", -balance)
		suggestion = fmt.Sprintf("Remove %d extra '}'", -balance)
	}

	return []models.StructuralError{{
		LineNumber: lineNumber,
		Message:    message,
		Severity:   models.SeverityCritical,
		Kind:       KindUnmatchedBraces,
		Suggestion: suggestion,
	}}
}
