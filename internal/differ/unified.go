package differ

import (
	"github.com/automatex/texvers/internal/common"
	"github.com/pmezard/go-difflib/difflib"
)

// GenerateUnifiedDiff renders a textual unified diff with the given
// number of context lines around each hunk. A negative contextLines
// falls back to the configured default. Display convenience only; no
// correctness-bearing decision is made from it.
func (de *DiffEngine) GenerateUnifiedDiff(oldContent, newContent string, contextLines int) (string, error) {
	if contextLines < 0 {
		contextLines = de.cfg.ContextLines
	}

	unified := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: "last successful version",
		ToFile:   "current version",
		Context:  contextLines,
	}

	text, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		return "", common.WrapError(err, "failed to render unified diff")
	}
	return text, nil
}
