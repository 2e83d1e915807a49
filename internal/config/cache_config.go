package config

// CacheConfig defines configuration for the caching version store
type CacheConfig struct {
	Enabled               bool `json:"enabled" yaml:"enabled"`
	LastSuccessfulTTLSecs int  `json:"last_successful_ttl_secs,omitempty" yaml:"last_successful_ttl_secs,omitempty" validate:"omitempty,min=1"`
	HistoryTTLSecs        int  `json:"history_ttl_secs,omitempty" yaml:"history_ttl_secs,omitempty" validate:"omitempty,min=1"`
	DefaultTTLSecs        int  `json:"default_ttl_secs,omitempty" yaml:"default_ttl_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultCacheConfig creates default cache configuration
func NewDefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:               DefaultCacheEnabled,
		LastSuccessfulTTLSecs: DefaultCacheLastSuccessfulTTLSecs,
		HistoryTTLSecs:        DefaultCacheHistoryTTLSecs,
		DefaultTTLSecs:        DefaultCacheDefaultTTLSecs,
	}
}
