package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/automatex/texvers/internal/common"
	"github.com/automatex/texvers/internal/logger"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the engine
type GlobalConfig struct {
	StorageConfig   StorageConfig        `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	CacheConfig     CacheConfig          `json:"cache_config,omitempty" yaml:"cache_config,omitempty"`
	DiffConfig      DiffConfig           `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	ValidatorConfig ValidatorConfig      `json:"validator_config,omitempty" yaml:"validator_config,omitempty"`
	AuditConfig     AuditConfig          `json:"audit_config,omitempty" yaml:"audit_config,omitempty"`
	LogConfig       logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		StorageConfig:   NewDefaultStorageConfig(),
		CacheConfig:     NewDefaultCacheConfig(),
		DiffConfig:      NewDefaultDiffConfig(),
		ValidatorConfig: NewDefaultValidatorConfig(),
		AuditConfig:     NewDefaultAuditConfig(),
		LogConfig:       logger.NewDefaultFileLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default
// locations. Supports both JSON and YAML formats; YAML is preferred if
// the file extension is .yaml or .yml. A missing file yields defaults.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
