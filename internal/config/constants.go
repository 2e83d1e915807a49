package config

const (
	// Storage Defaults
	DefaultStorageRootDir     = ".texvers_versions"
	DefaultStorageKeepCount   = 5
	DefaultStoragePathHashLen = 12
	DefaultStorageIDHashLen   = 16

	// Cache Defaults
	DefaultCacheEnabled               = true
	DefaultCacheLastSuccessfulTTLSecs = 60
	DefaultCacheHistoryTTLSecs        = 120
	DefaultCacheDefaultTTLSecs        = 300

	// Diff Defaults
	DefaultDiffContextLines = 3

	// Audit Defaults
	DefaultAuditSQLitePath = ""
)

// Validator defaults: extension candidate lists for resource checks
var (
	DefaultValidatorTexExtensions      = []string{".tex"}
	DefaultValidatorGraphicsExtensions = []string{".png", ".jpg", ".jpeg", ".pdf", ".eps", ".svg", ".gif"}
)
