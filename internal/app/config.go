package app

import (
	"errors"

	"github.com/specialistvlad/mailassembler/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ParamsPath is the parameter file. It may be empty when the overrides
	// name a template.
	ParamsPath string
	// Overrides win over the parameter file, field by field.
	Overrides config.Parameters

	LogFormat string
	LogLevel  string
	// DumpTree prints the parsed schedule tree instead of writing a batch.
	DumpTree bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ParamsPath == "" && cfg.Overrides.TemplateFile == "" {
		return nil, errors.New("either a parameter file or a template file is required")
	}
	return &cfg, nil
}
