package config

import (
	"errors"
	"strings"
)

// Parameters are the run parameters read from the parameter file.
type Parameters struct {
	// ReportsDir is where the schedule and attribute reports are looked up.
	ReportsDir string
	// MailFormat is "html" for HTML mail; anything else means plain text.
	// engine.ParseFormat interprets it.
	MailFormat string
	// TemplateFile is the path of the email template.
	TemplateFile string
	// OutputFile optionally names the batch file.
	OutputFile string
}

// Merge returns a copy of p where every non-empty field of override wins.
func (p Parameters) Merge(override Parameters) Parameters {
	if override.ReportsDir != "" {
		p.ReportsDir = override.ReportsDir
	}
	if override.MailFormat != "" {
		p.MailFormat = override.MailFormat
	}
	if override.TemplateFile != "" {
		p.TemplateFile = override.TemplateFile
	}
	if override.OutputFile != "" {
		p.OutputFile = override.OutputFile
	}
	return p
}

// Validate checks that the parameters are usable.
func (p *Parameters) Validate() error {
	if strings.TrimSpace(p.TemplateFile) == "" {
		return errors.New("no template file given: set the template file in the parameter file or with -template")
	}
	return nil
}
