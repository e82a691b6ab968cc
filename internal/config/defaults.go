package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Frontend: FrontendConfig{
			Binary: "clang",
		},
		Parse: ParseConfig{
			Macros: true,
		},
		Output: OutputConfig{
			DefaultFormat: "yaml",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Frontend = mergeFrontendConfig(loaded.Frontend, defaults.Frontend)
	result.Parse = mergeParseConfig(loaded.Parse, defaults.Parse)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)

	return result
}

func mergeFrontendConfig(loaded, defaults FrontendConfig) FrontendConfig {
	result := FrontendConfig{}

	// Binary: use loaded if non-empty
	if loaded.Binary != "" {
		result.Binary = loaded.Binary
	} else {
		result.Binary = defaults.Binary
	}

	if len(loaded.ExtraArgs) > 0 {
		result.ExtraArgs = loaded.ExtraArgs
	} else {
		result.ExtraArgs = defaults.ExtraArgs
	}

	return result
}

func mergeParseConfig(loaded, defaults ParseConfig) ParseConfig {
	result := ParseConfig{}

	if len(loaded.IncludePaths) > 0 {
		result.IncludePaths = loaded.IncludePaths
	} else {
		result.IncludePaths = defaults.IncludePaths
	}

	if len(loaded.Defines) > 0 {
		result.Defines = loaded.Defines
	} else {
		result.Defines = defaults.Defines
	}

	// Macros: YAML unmarshals a missing key as false, so an explicit
	// "macros: false" and an absent key look the same. The macro pass is
	// cheap and soft-failing, so the default wins unless set.
	result.Macros = loaded.Macros || defaults.Macros

	if len(loaded.MacroPrefixes) > 0 {
		result.MacroPrefixes = loaded.MacroPrefixes
	} else {
		result.MacroPrefixes = defaults.MacroPrefixes
	}

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	// DefaultFormat: use loaded if non-empty
	if loaded.DefaultFormat != "" {
		result.DefaultFormat = loaded.DefaultFormat
	} else {
		result.DefaultFormat = defaults.DefaultFormat
	}

	return result
}

// ValidFormats lists the valid values for output format
var ValidFormats = []string{"yaml", "json"}

// IsValidFormat checks if the given format value is valid
func IsValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}
