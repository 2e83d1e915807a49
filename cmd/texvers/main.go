package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automatex/texvers/internal/auditlog"
	"github.com/automatex/texvers/internal/cache"
	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/config"
	"github.com/automatex/texvers/internal/coordinator"
	"github.com/automatex/texvers/internal/datastore"
	"github.com/automatex/texvers/internal/differ"
	"github.com/automatex/texvers/internal/logger"
	"github.com/automatex/texvers/internal/models"
	"github.com/automatex/texvers/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	filePath := flag.String("file", "", "Path to the LaTeX document to operate on.")
	filePathAlias := flag.String("f", "", "Alias for -file")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Operation to run: store, summary, diff, history, validate or audit")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	limitFlag := flag.Int("limit", 10, "Maximum number of entries for history and audit modes")
	flag.Parse()

	if *filePath == "" && *filePathAlias != "" {
		*filePath = *filePathAlias
	}
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}
	if *modeFlag == "" && *modeFlagAlias != "" {
		*modeFlag = *modeFlagAlias
	}

	if *modeFlag == "" {
		log.Fatalln("[FATAL] -mode argument is required (store, summary, diff, history, validate or audit)")
	}
	if *filePath == "" {
		log.Fatalln("[FATAL] -file argument is required")
	}

	gCfg, err := config.LoadGlobalConfig(*configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", *configFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := run(*modeFlag, *filePath, *limitFlag, gCfg, zLogger); err != nil {
		zLogger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func run(mode, filePath string, limit int, gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return common.WrapError(err, "failed to read document: "+filePath)
	}

	fileStore, err := datastore.NewFileVersionStore(gCfg.StorageConfig, zLogger)
	if err != nil {
		return err
	}

	var store models.VersionStore = fileStore
	if gCfg.CacheConfig.Enabled {
		cachedStore, err := cache.NewCachedVersionStore(fileStore, gCfg.CacheConfig, zLogger)
		if err != nil {
			return err
		}
		store = cachedStore
	}

	diffEngine := differ.NewDiffEngine(gCfg.DiffConfig, zLogger)
	structuralValidator := validator.NewStructuralValidator(gCfg.ValidatorConfig, zLogger)

	var audit *auditlog.AuditLog
	if gCfg.AuditConfig.SQLiteDBPath != "" {
		audit, err = auditlog.NewAuditLog(gCfg.AuditConfig.SQLiteDBPath, zLogger)
		if err != nil {
			return err
		}
		defer audit.Close()
	}

	coord, err := coordinator.NewCoordinatorBuilder().
		WithLogger(zLogger).
		WithVersionStore(store).
		WithDiffGenerator(diffEngine).
		WithValidator(structuralValidator).
		WithAuditLog(audit).
		WithDiffViewer(&consoleDiffViewer{}).
		WithKeepCount(gCfg.StorageConfig.KeepCount).
		Build()
	if err != nil {
		return err
	}

	coord.SetCurrentDocument(filePath, string(content))

	switch mode {
	case "store":
		return coord.StoreSuccessfulCompilation(filePath, string(content))
	case "summary":
		return printSummary(coord)
	case "diff":
		return coord.ShowDiffWithLastVersion()
	case "history":
		return printHistory(coord, limit)
	case "validate":
		return printValidation(coord, structuralValidator)
	case "audit":
		return printAudit(audit, filePath, limit)
	default:
		return common.NewValidationError("mode", mode, "unknown mode")
	}
}

func printSummary(coord *coordinator.Coordinator) error {
	summary, err := coord.GetQuickDiffSummary()
	if errors.Is(err, common.ErrNoPriorVersion) {
		fmt.Println("No successful version stored yet; nothing to compare against.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Changes since %s:\n", summary.LastVersionTimestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("  additions:     %d\n", summary.Statistics.Additions)
	fmt.Printf("  deletions:     %d\n", summary.Statistics.Deletions)
	fmt.Printf("  modifications: %d\n", summary.Statistics.Modifications)
	fmt.Printf("  unchanged:     %d\n", summary.Statistics.Unchanged)
	fmt.Printf("  critical:      %d\n", summary.CriticalChangeCount)
	if !summary.HasChanges {
		fmt.Println("Document is identical to the last successful version.")
	}
	return nil
}

func printHistory(coord *coordinator.Coordinator, limit int) error {
	history, err := coord.GetVersionHistory(limit)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No stored versions.")
		return nil
	}

	for _, entry := range history {
		marker := " "
		if entry.IsSuccessful {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, entry.ID, entry.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func printValidation(coord *coordinator.Coordinator, structuralValidator models.StructuralValidator) error {
	findings := coord.ValidateCurrentDocument()
	if len(findings) == 0 {
		fmt.Println("No structural issues found.")
		return nil
	}

	blocking := 0
	for _, finding := range findings {
		fmt.Printf("line %d [%s/%s]: %s\n", finding.LineNumber, finding.Severity, finding.Kind, finding.Message)
		if finding.Suggestion != "" {
			fmt.Printf("  suggestion: %s\n", finding.Suggestion)
		}
		if structuralValidator.IsCompilationBlocking(finding) {
			blocking++
		}
	}
	fmt.Printf("%d finding(s), %d compilation-blocking\n", len(findings), blocking)
	return nil
}

func printAudit(audit *auditlog.AuditLog, filePath string, limit int) error {
	if audit == nil {
		fmt.Println("Audit log disabled; set audit_config.sqlite_db_path to enable it.")
		return nil
	}

	entries, err := audit.GetRecentEntries(filePath, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No audit entries for this document.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s  +%d -%d ~%d\n", entry.StoredAt.Format("2006-01-02 15:04:05"),
			entry.VersionID, entry.LinesAdded, entry.LinesDeleted, entry.LinesModified)
	}
	return nil
}

// consoleDiffViewer renders diffs to stdout. It stands in for the
// desktop diff viewer the engine was designed to feed.
type consoleDiffViewer struct {
	onGotoLine func(lineNumber int)
}

func (v *consoleDiffViewer) DisplaySideBySide(oldContent, newContent string, diffLines []models.DiffLine) {
	for _, line := range diffLines {
		switch line.Kind {
		case models.DiffAdded:
			fmt.Printf("+ %4d        | %s\n", line.LineNumber, line.Content)
		case models.DiffDeleted:
			fmt.Printf("-       %4d | %s\n", *line.OldLineNumber, line.Content)
		case models.DiffModified:
			fmt.Printf("~ %4d        | %s\n", line.LineNumber, line.Content)
		default:
			fmt.Printf("  %4d   %4d | %s\n", line.LineNumber, *line.OldLineNumber, line.Content)
		}
	}
}

func (v *consoleDiffViewer) HighlightCritical(diffLines []models.DiffLine) {
	fmt.Printf("%d critical structural change(s):\n", len(diffLines))
	for _, line := range diffLines {
		fmt.Printf("! %4d | %s\n", line.LineNumber, line.Content)
	}
}

func (v *consoleDiffViewer) SetNavigationCallback(onGotoLine func(lineNumber int)) {
	v.onGotoLine = onGotoLine
}
