package config

// ValidatorConfig defines configuration for structural validation
type ValidatorConfig struct {
	TexExtensions      []string `json:"tex_extensions,omitempty" yaml:"tex_extensions,omitempty" validate:"omitempty,dive,required"`
	GraphicsExtensions []string `json:"graphics_extensions,omitempty" yaml:"graphics_extensions,omitempty" validate:"omitempty,dive,required"`
}

// NewDefaultValidatorConfig creates default validator configuration
func NewDefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		TexExtensions:      append([]string(nil), DefaultValidatorTexExtensions...),
		GraphicsExtensions: append([]string(nil), DefaultValidatorGraphicsExtensions...),
	}
}
