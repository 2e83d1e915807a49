package config

// StorageConfig defines configuration for version storage
type StorageConfig struct {
	RootDir     string `json:"root_dir,omitempty" yaml:"root_dir,omitempty"`
	KeepCount   int    `json:"keep_count,omitempty" yaml:"keep_count,omitempty" validate:"omitempty,min=1"`
	PathHashLen int    `json:"path_hash_len,omitempty" yaml:"path_hash_len,omitempty" validate:"omitempty,min=4,max=64"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		RootDir:     DefaultStorageRootDir,
		KeepCount:   DefaultStorageKeepCount,
		PathHashLen: DefaultStoragePathHashLen,
	}
}
