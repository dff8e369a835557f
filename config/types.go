package config

// Config represents the complete configuration structure
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Import  ImportConfig  `mapstructure:"import"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig contains settings for the in-process store
type StoreConfig struct {
	History int `mapstructure:"history"`
}

// ImportConfig contains settings for converting Radarr exports
type ImportConfig struct {
	PageSize         int  `mapstructure:"page_size"`
	SortByPopularity bool `mapstructure:"sort_by_popularity"`
}

// OutputConfig controls how state is printed
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	ShowDetails bool   `mapstructure:"show_details"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	CacheSize         int                     `mapstructure:"cache_size"`
	Presets           map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named filter expression
type FilterPreset struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// PresetExpressions returns the presets as name to expression
func (f FilterConfig) PresetExpressions() map[string]string {
	out := make(map[string]string, len(f.Presets))
	for name, preset := range f.Presets {
		out[name] = preset.Expression
	}
	return out
}
