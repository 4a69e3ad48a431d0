package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// ConfigPath is the setup configuration file (HCL).
	ConfigPath string
	// MetadataPath is the root of the authoritative metadata tree. Empty
	// means no authoritative store is reachable.
	MetadataPath string
	// OutputPath, when set, receives the constructed scene as a
	// shape-description file.
	OutputPath string
	// PublicGeometry permits building from the embedded placeholder
	// records when no authoritative store is configured.
	PublicGeometry bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates an application configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("a setup configuration file is required")
	}
	return &cfg, nil
}
