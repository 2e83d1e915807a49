package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffProcessor handles the core line-level diffing logic
type DiffProcessor struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor() *DiffProcessor {
	return &DiffProcessor{
		dmp: diffmatchpatch.New(),
	}
}

// ProcessLineDiff generates a line-granular diff between two content
// strings. Each returned segment spans whole lines only.
func (dp *DiffProcessor) ProcessLineDiff(oldContent, newContent string) []diffmatchpatch.Diff {
	oldChars, newChars, lineIndex := dp.dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dp.dmp.DiffMain(oldChars, newChars, false)
	return dp.dmp.DiffCharsToLines(diffs, lineIndex)
}

// splitSegmentLines splits a diff segment into its lines. Line
// terminators are not part of line content; a trailing newline does not
// open an extra empty line.
func splitSegmentLines(segment string) []string {
	if segment == "" {
		return nil
	}
	lines := strings.Split(segment, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
