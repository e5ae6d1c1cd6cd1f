// Package diag collects the per-record problems found during a run so they
// can be shown together once the run finishes.
//
// Every message is logged as it happens; warnings and errors are also kept
// as hcl.Diagnostics until Flush writes them out.
package diag

import (
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
)

// Collector logs messages and accumulates warnings and errors.
// It is not safe for concurrent use.
type Collector struct {
	logger *slog.Logger
	diags  hcl.Diagnostics
}

// New returns a Collector that logs through logger.
func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Info logs an informational message. It is not accumulated.
func (c *Collector) Info(msg string, args ...any) {
	c.logger.Info(msg, args...)
}

// Warn logs and records a warning.
func (c *Collector) Warn(summary, detail string) {
	c.logger.Warn(summary, "detail", detail)
	c.diags = append(c.diags, &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  summary,
		Detail:   detail,
	})
}

// Error logs and records an error.
func (c *Collector) Error(summary, detail string) {
	c.logger.Error(summary, "detail", detail)
	c.diags = append(c.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
	})
}

// HasErrors reports whether any error has been recorded since the last Flush.
func (c *Collector) HasErrors() bool {
	return c.diags.HasErrors()
}

// Diagnostics returns the recorded warnings and errors.
func (c *Collector) Diagnostics() hcl.Diagnostics {
	return c.diags
}

// Flush writes the recorded diagnostics to w and clears them. Nothing is
// written when there is nothing to report.
func (c *Collector) Flush(w io.Writer) error {
	if len(c.diags) == 0 {
		return nil
	}
	writer := hcl.NewDiagnosticTextWriter(w, nil, 0, false)
	err := writer.WriteDiagnostics(c.diags)
	c.diags = nil
	return err
}
