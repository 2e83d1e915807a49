package differ

import (
	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffEngine computes line-level diffs between document versions and
// classifies which changed lines carry structural weight. It implements
// models.DiffGenerator.
type DiffEngine struct {
	cfg        config.DiffConfig
	logger     zerolog.Logger
	processor  *DiffProcessor
	classifier *CriticalChangeClassifier
}

// NewDiffEngine creates a new diff engine
func NewDiffEngine(cfg config.DiffConfig, logger zerolog.Logger) *DiffEngine {
	return &DiffEngine{
		cfg:        cfg,
		logger:     logger.With().Str("component", "DiffEngine").Logger(),
		processor:  NewDiffProcessor(),
		classifier: NewCriticalChangeClassifier(),
	}
}

// GenerateDiff produces the ordered DiffLine sequence for transforming
// oldContent into newContent. Replaced blocks are emitted as the old
// lines (Deleted) followed by the new lines (Modified); standalone
// insertions are Added.
func (de *DiffEngine) GenerateDiff(oldContent, newContent string) []models.DiffLine {
	segments := de.processor.ProcessLineDiff(oldContent, newContent)

	var diffLines []models.DiffLine
	oldLineNum := 1
	newLineNum := 1

	for i := 0; i < len(segments); i++ {
		segment := segments[i]
		switch segment.Type {
		case diffmatchpatch.DiffEqual:
			for _, line := range splitSegmentLines(segment.Text) {
				old := oldLineNum
				diffLines = append(diffLines, models.DiffLine{
					LineNumber:    newLineNum,
					Content:       line,
					Kind:          models.DiffUnchanged,
					OldLineNumber: &old,
				})
				oldLineNum++
				newLineNum++
			}

		case diffmatchpatch.DiffDelete:
			deletedLines := splitSegmentLines(segment.Text)
			var insertedLines []string
			if i+1 < len(segments) && segments[i+1].Type == diffmatchpatch.DiffInsert {
				insertedLines = splitSegmentLines(segments[i+1].Text)
				i++
			}

			replaceStart := oldLineNum
			for idx, line := range deletedLines {
				old := replaceStart + idx
				diffLines = append(diffLines, models.DiffLine{
					LineNumber:    newLineNum - 1, // approximate position in the new version
					Content:       line,
					Kind:          models.DiffDeleted,
					OldLineNumber: &old,
				})
				oldLineNum++
			}

			for idx, line := range insertedLines {
				var old *int
				if idx < len(deletedLines) {
					v := replaceStart + idx
					old = &v
				}
				diffLines = append(diffLines, models.DiffLine{
					LineNumber:    newLineNum,
					Content:       line,
					Kind:          models.DiffModified,
					OldLineNumber: old,
				})
				newLineNum++
			}

		case diffmatchpatch.DiffInsert:
			for _, line := range splitSegmentLines(segment.Text) {
				diffLines = append(diffLines, models.DiffLine{
					LineNumber: newLineNum,
					Content:    line,
					Kind:       models.DiffAdded,
				})
				newLineNum++
			}
		}
	}

	return diffLines
}

// GetDiffStatistics tallies the diff lines by kind
func (de *DiffEngine) GetDiffStatistics(diffLines []models.DiffLine) models.DiffStatistics {
	stats := models.DiffStatistics{
		TotalLines: len(diffLines),
	}

	for _, line := range diffLines {
		switch line.Kind {
		case models.DiffAdded:
			stats.Additions++
		case models.DiffDeleted:
			stats.Deletions++
		case models.DiffModified:
			stats.Modifications++
		case models.DiffUnchanged:
			stats.Unchanged++
		}
	}

	return stats
}

// FindCriticalChanges returns the changed lines whose content matches a
// structural LaTeX marker.
func (de *DiffEngine) FindCriticalChanges(diffLines []models.DiffLine) []models.DiffLine {
	var critical []models.DiffLine
	for _, line := range diffLines {
		if line.Kind == models.DiffUnchanged {
			continue
		}
		if de.classifier.IsCritical(line.Content) {
			critical = append(critical, line)
		}
	}
	return critical
}

// GetContextAroundChange returns the diff lines surrounding the first
// changed line with the given new-version line number.
func (de *DiffEngine) GetContextAroundChange(diffLines []models.DiffLine, targetLine, contextSize int) []models.DiffLine {
	targetIndex := -1
	for i, line := range diffLines {
		if line.LineNumber == targetLine && line.Kind != models.DiffUnchanged {
			targetIndex = i
			break
		}
	}
	if targetIndex < 0 {
		return nil
	}

	start := targetIndex - contextSize
	if start < 0 {
		start = 0
	}
	end := targetIndex + contextSize + 1
	if end > len(diffLines) {
		end = len(diffLines)
	}

	return diffLines[start:end]
}
