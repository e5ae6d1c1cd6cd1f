package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/mailassembler/internal/config"
	"github.com/specialistvlad/mailassembler/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	// Environ supplies the variables exposed as `env`. It defaults to
	// os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// parametersFile is the schema of a parameter file.
type parametersFile struct {
	ReportsDir   string   `hcl:"reports_dir,optional"`
	MailFormat   string   `hcl:"mail_format,optional"`
	TemplateFile string   `hcl:"template_file,optional"`
	OutputFile   string   `hcl:"output_file,optional"`
	Remain       hcl.Body `hcl:",remain"`
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Parameters, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	// ParseHCLFile reports a missing file as a diagnostic; stat first so the
	// caller can tell a missing file from a broken one.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed parametersFile
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if attrs, _ := parsed.Remain.JustAttributes(); len(attrs) > 0 {
		for name := range attrs {
			logger.Warn("Ignoring unknown parameter.", "file", path, "name", name)
		}
	}

	logger.Debug("HCL parameters decoded.", "path", path)
	return &config.Parameters{
		ReportsDir:   parsed.ReportsDir,
		MailFormat:   parsed.MailFormat,
		TemplateFile: parsed.TemplateFile,
		OutputFile:   parsed.OutputFile,
	}, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(environ()),
		},
	}
}

// envObject converts KEY=VALUE pairs into a cty object.
func envObject(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		key, value, ok := strings.Cut(e, "=")
		if !ok || key == "" {
			continue
		}
		vals[key] = cty.StringVal(value)
	}
	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}
