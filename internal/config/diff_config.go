package config

// DiffConfig defines configuration for diff generation
type DiffConfig struct {
	ContextLines int `json:"context_lines,omitempty" yaml:"context_lines,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: DefaultDiffContextLines,
	}
}
