package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/automatex/texvers/internal/models"
)

var (
	inclusionPattern = regexp.MustCompile(`\\(?:input|include)\{([^}]+)\}`)
	graphicsPattern  = regexp.MustCompile(`\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`)
)

// ResourceChecker verifies that file and image inclusion directives
// point at resources that actually exist on disk.
type ResourceChecker struct {
	texExtensions      []string
	graphicsExtensions []string
}

// NewResourceChecker creates a new resource checker with the extension
// candidate lists to try for extension-less references.
func NewResourceChecker(texExtensions, graphicsExtensions []string) *ResourceChecker {
	return &ResourceChecker{
		texExtensions:      texExtensions,
		graphicsExtensions: graphicsExtensions,
	}
}

// Check scans one line for inclusion directives and emits a Critical
// error for every referenced resource that cannot be resolved.
func (rc *ResourceChecker) Check(line string, lineNumber int, baseDir string) []models.StructuralError {
	var errors []models.StructuralError

	for _, match := range inclusionPattern.FindAllStringSubmatch(line, -1) {
		reference := match[1]
		if !rc.resourceExists(baseDir, reference, rc.texExtensions) {
			errors = append(errors, models.StructuralError{
				LineNumber: lineNumber,
				Message:    fmt.Sprintf("File '%s' not found", reference),
				Severity:   models.SeverityCritical,
				Kind:       KindMissingFile,
				Suggestion: "Check the path and that the file exists",
			})
		}
	}

	for _, match := range graphicsPattern.FindAllStringSubmatch(line, -1) {
		reference := match[1]
		if !rc.resourceExists(baseDir, reference, rc.graphicsExtensions) {
			errors = append(errors, models.StructuralError{
				LineNumber: lineNumber,
				Message:    fmt.Sprintf("Image '%s' not found", reference),
				Severity:   models.SeverityCritical,
				Kind:       KindMissingImage,
				Suggestion: "Check the path and that the image exists",
			})
		}
	}

	return errors
}

// resourceExists resolves a reference against baseDir and tries: the
// path as given, each candidate extension when the reference carries
// none, and case-swapped variants of an extension it does carry.
func (rc *ResourceChecker) resourceExists(baseDir, reference string, extensions []string) bool {
	cleanPath := strings.TrimSpace(reference)
	if cleanPath == "" {
		return false
	}

	resolved := cleanPath
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(baseDir, resolved)
	}
	resolved = filepath.Clean(resolved)

	if fileExists(resolved) {
		return true
	}

	ext := filepath.Ext(resolved)
	if ext == "" {
		for _, candidate := range extensions {
			if fileExists(resolved + candidate) {
				return true
			}
		}
		return false
	}

	stem := strings.TrimSuffix(resolved, ext)
	for _, variant := range []string{strings.ToLower(ext), strings.ToUpper(ext)} {
		if variant != ext && fileExists(stem+variant) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
