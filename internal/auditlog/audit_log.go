package auditlog

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/automatex/texvers/internal/common"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// AuditLog keeps a persistent record of every successful compilation
// stored through the engine, one row per stored snapshot, in a SQLite
// database.
type AuditLog struct {
	db     *sql.DB
	logger zerolog.Logger
}

// CompilationEntry represents a record in the compilation_audit table.
type CompilationEntry struct {
	ID            int64
	FilePath      string
	VersionID     string
	StoredAt      time.Time
	LinesAdded    int
	LinesDeleted  int
	LinesModified int
}

// NewAuditLog opens (or creates) the audit database and ensures the
// schema is set up.
func NewAuditLog(dataSourceName string, logger zerolog.Logger) (*AuditLog, error) {
	componentLogger := logger.With().Str("component", "AuditLog").Logger()
	componentLogger.Info().Str("db_path", dataSourceName).Msg("Initializing compilation audit database")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, common.WrapError(err, "failed to create audit database directory: "+dbDir)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, common.WrapError(err, "sql.Open failed for: "+dataSourceName)
	}

	log := &AuditLog{
		db:     dbInstance,
		logger: componentLogger,
	}

	if err := log.initSchema(); err != nil {
		log.Close()
		return nil, common.WrapError(err, "failed to initialize audit schema")
	}

	return log, nil
}

// Close closes the database connection.
func (al *AuditLog) Close() error {
	if al.db != nil {
		return al.db.Close()
	}
	return nil
}

// initSchema creates the compilation_audit table if it doesn't exist.
func (al *AuditLog) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS compilation_audit (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_path TEXT NOT NULL,
		version_id TEXT NOT NULL,
		stored_at DATETIME NOT NULL,
		lines_added INTEGER DEFAULT 0,
		lines_deleted INTEGER DEFAULT 0,
		lines_modified INTEGER DEFAULT 0
	);
	`
	if _, err := al.db.Exec(query); err != nil {
		al.logger.Error().Err(err).Msg("Failed to initialize audit schema")
		return err
	}
	return nil
}

// RecordCompilation inserts a new audit row for a stored successful
// compilation and returns the row id.
func (al *AuditLog) RecordCompilation(entry CompilationEntry) (int64, error) {
	query := `INSERT INTO compilation_audit (file_path, version_id, stored_at, lines_added, lines_deleted, lines_modified) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := al.db.Exec(query, entry.FilePath, entry.VersionID, entry.StoredAt,
		entry.LinesAdded, entry.LinesDeleted, entry.LinesModified)
	if err != nil {
		al.logger.Error().Err(err).Str("file_path", entry.FilePath).Msg("Failed to record compilation")
		return 0, common.WrapError(err, "failed to insert compilation audit record")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, common.WrapError(err, "failed to get last insert ID")
	}

	al.logger.Debug().Int64("db_id", id).Str("file_path", entry.FilePath).
		Str("version_id", entry.VersionID).Msg("Recorded compilation in audit log")
	return id, nil
}

// GetRecentEntries returns the most recent audit rows for a document,
// newest first.
func (al *AuditLog) GetRecentEntries(filePath string, limit int) ([]CompilationEntry, error) {
	query := `SELECT id, file_path, version_id, stored_at, lines_added, lines_deleted, lines_modified
		FROM compilation_audit WHERE file_path = ? ORDER BY stored_at DESC, id DESC LIMIT ?`

	rows, err := al.db.Query(query, filePath, limit)
	if err != nil {
		return nil, common.WrapError(err, "failed to query compilation audit entries")
	}
	defer rows.Close()

	var entries []CompilationEntry
	for rows.Next() {
		var entry CompilationEntry
		if err := rows.Scan(&entry.ID, &entry.FilePath, &entry.VersionID, &entry.StoredAt,
			&entry.LinesAdded, &entry.LinesDeleted, &entry.LinesModified); err != nil {
			return nil, common.WrapError(err, "failed to scan compilation audit row")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "failed to iterate compilation audit rows")
	}

	return entries, nil
}
