package validator

import (
	"os"
	"path/filepath"

	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
)

// Error category tags, stable across releases. GetErrorCategories must
// list every kind DetectErrors can emit.
const (
	KindUnclosedEnvironment   = "unclosed_environment"
	KindUnmatchedEnd          = "unmatched_end"
	KindMismatchedEnvironment = "mismatched_environment"
	KindUnmatchedBraces       = "unmatched_braces"
	KindMissingFile           = "missing_file"
	KindMissingImage          = "missing_image"
	KindUndefinedReference    = "undefined_reference"
	KindUndefinedCitation     = "undefined_citation"
	KindPackageUsage          = "package_usage"
)

// LaTeXStructuralValidator scans LaTeX text for structural defects. It
// implements models.StructuralValidator.
type LaTeXStructuralValidator struct {
	logger          zerolog.Logger
	envChecker      *EnvironmentChecker
	braceChecker    *DelimiterBalanceChecker
	resourceChecker *ResourceChecker
	lineChecker     *HeuristicLineChecker
}

// NewStructuralValidator creates a new LaTeX structural validator
func NewStructuralValidator(cfg config.ValidatorConfig, logger zerolog.Logger) *LaTeXStructuralValidator {
	componentLogger := logger.With().Str("component", "StructuralValidator").Logger()
	return &LaTeXStructuralValidator{
		logger:          componentLogger,
		envChecker:      NewEnvironmentChecker(),
		braceChecker:    NewDelimiterBalanceChecker(),
		resourceChecker: NewResourceChecker(cfg.TexExtensions, cfg.GraphicsExtensions),
		lineChecker:     NewHeuristicLineChecker(),
	}
}

// DetectErrors scans content for structural defects. filePath, when
// non-empty, anchors resource-existence checks to the document's
// directory; otherwise the current working directory is used.
func (sv *LaTeXStructuralValidator) DetectErrors(content, filePath string) []models.StructuralError {
	baseDir := sv.resolveBaseDir(filePath)

	var errors []models.StructuralError
	for lineNum, line := range splitContentLines(content) {
		checkable, isComment := stripComment(line)
		if isComment {
			continue
		}

		errors = append(errors, sv.lineChecker.Check(checkable, lineNum+1)...)
		errors = append(errors, sv.resourceChecker.Check(checkable, lineNum+1, baseDir)...)
		errors = append(errors, sv.braceChecker.Check(checkable, lineNum+1)...)
	}

	errors = append(errors, sv.envChecker.Check(content)...)

	sv.logger.Debug().Int("error_count", len(errors)).Str("file_path", filePath).
		Msg("Structural validation completed")
	return errors
}

// GetErrorCategories enumerates every kind tag this validator emits
func (sv *LaTeXStructuralValidator) GetErrorCategories() []string {
	return []string{
		KindUnclosedEnvironment,
		KindUnmatchedEnd,
		KindMismatchedEnvironment,
		KindUnmatchedBraces,
		KindMissingFile,
		KindMissingImage,
		KindUndefinedReference,
		KindUndefinedCitation,
		KindPackageUsage,
	}
}

// IsCompilationBlocking reports whether the error would make the LaTeX
// compiler reject the document. This is the single authoritative
// severity-to-blocking mapping.
func (sv *LaTeXStructuralValidator) IsCompilationBlocking(err models.StructuralError) bool {
	return err.Severity == models.SeverityCritical
}

func (sv *LaTeXStructuralValidator) resolveBaseDir(filePath string) string {
	if filePath != "" {
		if absPath, err := filepath.Abs(filePath); err == nil {
			return filepath.Dir(absPath)
		}
		return filepath.Dir(filePath)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
