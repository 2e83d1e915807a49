package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *LaTeXStructuralValidator {
	return NewStructuralValidator(config.NewDefaultValidatorConfig(), zerolog.Nop())
}

func findByKind(errors []models.StructuralError, kind string) []models.StructuralError {
	var matched []models.StructuralError
	for _, err := range errors {
		if err.Kind == kind {
			matched = append(matched, err)
		}
	}
	return matched
}

func TestDetectErrors_CleanDocument(t *testing.T) {
	validator := newTestValidator()
	content := "\\begin{document}\nHello world.\n\\end{document}\n"

	errors := validator.DetectErrors(content, "")
	assert.Empty(t, errors)
}

func TestDetectErrors_UnclosedEnvironment(t *testing.T) {
	validator := newTestValidator()
	content := "\\begin{itemize}\n\\item one\n"

	errors := validator.DetectErrors(content, "")

	unclosed := findByKind(errors, KindUnclosedEnvironment)
	require.Len(t, unclosed, 1)
	assert.Equal(t, 1, unclosed[0].LineNumber)
	assert.Equal(t, models.SeverityCritical, unclosed[0].Severity)
	assert.Contains(t, unclosed[0].Message, "itemize")
}

func TestDetectErrors_UnmatchedEnd(t *testing.T) {
	validator := newTestValidator()
	content := "some text\n\\end{figure}\n"

	errors := validator.DetectErrors(content, "")

	unmatched := findByKind(errors, KindUnmatchedEnd)
	require.Len(t, unmatched, 1)
	assert.Equal(t, 2, unmatched[0].LineNumber)
	assert.Contains(t, unmatched[0].Message, "figure")
}

func TestDetectErrors_MismatchedEnvironment(t *testing.T) {
	validator := newTestValidator()
	content := "\\begin{figure}\n\\end{itemize}\n"

	errors := validator.DetectErrors(content, "")

	// Exactly one finding: the mismatch pops the open environment, so
	// it must not additionally be reported as unclosed.
	mismatched := findByKind(errors, KindMismatchedEnvironment)
	require.Len(t, mismatched, 1)
	assert.Equal(t, 2, mismatched[0].LineNumber)
	assert.Contains(t, mismatched[0].Message, "itemize")
	assert.Contains(t, mismatched[0].Message, "figure")
	assert.Contains(t, mismatched[0].Message, "line 1")

	assert.Empty(t, findByKind(errors, KindUnclosedEnvironment))
	assert.Empty(t, findByKind(errors, KindUnmatchedEnd))
}

func TestDetectErrors_NestedEnvironmentsMatch(t *testing.T) {
	validator := newTestValidator()
	content := "\\begin{figure}\n\\begin{center}\ncontent\n\\end{center}\n\\end{figure}\n"

	errors := validator.DetectErrors(content, "")
	assert.Empty(t, errors)
}

func TestDetectErrors_UnbalancedBraces(t *testing.T) {
	validator := newTestValidator()
	content := "\\textbf{bold\nplain line\n"

	errors := validator.DetectErrors(content, "")

	braces := findByKind(errors, KindUnmatchedBraces)
	require.Len(t, braces, 1)
	assert.Equal(t, 1, braces[0].LineNumber)
	assert.Equal(t, models.SeverityCritical, braces[0].Severity)
	assert.Contains(t, braces[0].Message, "1 more '{'")
}

func TestDelimiterChecker_EscapedBracesIgnored(t *testing.T) {
	checker := NewDelimiterBalanceChecker()

	assert.Empty(t, checker.Check(`a 50\% share of \{escaped\}`, 1))
	assert.Empty(t, checker.Check(`\textbf{balanced}`, 1))

	errors := checker.Check(`closing only}`, 3)
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0].Message, "1 more '}'")
}

func TestDetectErrors_CommentsAreSkipped(t *testing.T) {
	validator := newTestValidator()
	content := "% \\begin{figure}\ntext % unbalanced {brace in comment\n"

	errors := validator.DetectErrors(content, "")
	assert.Empty(t, errors)
}

func TestStripComment(t *testing.T) {
	checkable, isComment := stripComment("% whole line comment")
	assert.True(t, isComment)
	assert.Empty(t, checkable)

	checkable, isComment = stripComment("text % trailing comment")
	assert.False(t, isComment)
	assert.Equal(t, "text ", checkable)

	checkable, isComment = stripComment(`100\% is not a comment`)
	assert.False(t, isComment)
	assert.Equal(t, `100\% is not a comment`, checkable)
}

func TestDetectErrors_MissingInputFile(t *testing.T) {
	validator := newTestValidator()
	docDir := t.TempDir()
	docPath := filepath.Join(docDir, "main.tex")

	errors := validator.DetectErrors(`\input{chapters/intro}`+"\n", docPath)

	missing := findByKind(errors, KindMissingFile)
	require.Len(t, missing, 1)
	assert.Equal(t, 1, missing[0].LineNumber)
	assert.Contains(t, missing[0].Message, "chapters/intro")
	assert.Equal(t, models.SeverityCritical, missing[0].Severity)
}

func TestDetectErrors_InputResolvedWithTexExtension(t *testing.T) {
	validator := newTestValidator()
	docDir := t.TempDir()
	docPath := filepath.Join(docDir, "main.tex")
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "intro.tex"), []byte("x"), 0644))

	errors := validator.DetectErrors(`\input{intro}`+"\n", docPath)
	assert.Empty(t, findByKind(errors, KindMissingFile))
}

func TestDetectErrors_MissingImage(t *testing.T) {
	validator := newTestValidator()
	docDir := t.TempDir()
	docPath := filepath.Join(docDir, "main.tex")

	errors := validator.DetectErrors(`\includegraphics[width=\textwidth]{figures/plot}`+"\n", docPath)

	missing := findByKind(errors, KindMissingImage)
	require.Len(t, missing, 1)
	assert.Contains(t, missing[0].Message, "figures/plot")
}

func TestDetectErrors_ImageResolvedWithGraphicsExtension(t *testing.T) {
	validator := newTestValidator()
	docDir := t.TempDir()
	docPath := filepath.Join(docDir, "main.tex")
	require.NoError(t, os.MkdirAll(filepath.Join(docDir, "figures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "figures", "plot.png"), []byte("x"), 0644))

	errors := validator.DetectErrors(`\includegraphics{figures/plot}`+"\n", docPath)
	assert.Empty(t, findByKind(errors, KindMissingImage))
}

func TestResourceChecker_CaseSwappedExtension(t *testing.T) {
	checker := NewResourceChecker(config.DefaultValidatorTexExtensions, config.DefaultValidatorGraphicsExtensions)
	docDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "photo.png"), []byte("x"), 0644))

	// Reference carries the wrong-case extension; the checker tries
	// the lower/upper variants before reporting it missing.
	errors := checker.Check(`\includegraphics{photo.PNG}`, 1, docDir)
	assert.Empty(t, errors)
}

func TestDetectErrors_ReferenceAndCitationWarnings(t *testing.T) {
	validator := newTestValidator()
	content := `See \ref{fig:results} and \cite{smith2020}.` + "\n"

	errors := validator.DetectErrors(content, "")

	refs := findByKind(errors, KindUndefinedReference)
	require.Len(t, refs, 1)
	assert.Equal(t, models.SeverityWarning, refs[0].Severity)
	assert.Contains(t, refs[0].Message, "fig:results")

	cites := findByKind(errors, KindUndefinedCitation)
	require.Len(t, cites, 1)
	assert.Equal(t, models.SeverityWarning, cites[0].Severity)

	for _, err := range errors {
		assert.False(t, validator.IsCompilationBlocking(err))
	}
}

func TestDetectErrors_PackageUsageInfo(t *testing.T) {
	validator := newTestValidator()
	content := `\usepackage[utf8]{inputenc}` + "\n"

	errors := validator.DetectErrors(content, "")

	packages := findByKind(errors, KindPackageUsage)
	require.Len(t, packages, 1)
	assert.Equal(t, models.SeverityInfo, packages[0].Severity)
	assert.Contains(t, packages[0].Message, "inputenc")
}

func TestGetErrorCategories_CoversEmittedKinds(t *testing.T) {
	validator := newTestValidator()
	categories := validator.GetErrorCategories()

	expected := []string{
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
	assert.ElementsMatch(t, expected, categories)
}

func TestIsCompilationBlocking(t *testing.T) {
	validator := newTestValidator()

	assert.True(t, validator.IsCompilationBlocking(models.StructuralError{Severity: models.SeverityCritical}))
	assert.False(t, validator.IsCompilationBlocking(models.StructuralError{Severity: models.SeverityWarning}))
	assert.False(t, validator.IsCompilationBlocking(models.StructuralError{Severity: models.SeverityInfo}))
}
