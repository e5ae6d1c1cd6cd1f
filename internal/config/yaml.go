package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/mailassembler/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads parameters from a YAML mapping.
type YAMLLoader struct{}

type yamlParameters struct {
	ReportsDir   string `yaml:"reports_dir"`
	MailFormat   string `yaml:"mail_format"`
	TemplateFile string `yaml:"template_file"`
	OutputFile   string `yaml:"output_file"`
}

// Load implements Loader. Unknown keys are rejected.
func (YAMLLoader) Load(ctx context.Context, path string) (*Parameters, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML parameters.", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer file.Close()

	var raw yamlParameters
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	return &Parameters{
		ReportsDir:   raw.ReportsDir,
		MailFormat:   raw.MailFormat,
		TemplateFile: raw.TemplateFile,
		OutputFile:   raw.OutputFile,
	}, nil
}
