package config

// AuditConfig defines configuration for the compilation audit log.
// An empty SQLiteDBPath disables auditing.
type AuditConfig struct {
	SQLiteDBPath string `json:"sqlite_db_path,omitempty" yaml:"sqlite_db_path,omitempty"`
}

// NewDefaultAuditConfig creates default audit configuration
func NewDefaultAuditConfig() AuditConfig {
	return AuditConfig{
		SQLiteDBPath: DefaultAuditSQLitePath,
	}
}
