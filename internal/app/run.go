package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/specialistvlad/mailassembler/internal/attributes"
	"github.com/specialistvlad/mailassembler/internal/batch"
	"github.com/specialistvlad/mailassembler/internal/config"
	"github.com/specialistvlad/mailassembler/internal/ctxlog"
	"github.com/specialistvlad/mailassembler/internal/diag"
	"github.com/specialistvlad/mailassembler/internal/engine"
	"github.com/specialistvlad/mailassembler/internal/markup"
)

// emailColumn is the schedule field holding a person's address.
const emailColumn = "email"

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fromFile, params, err := a.loadParameters(ctx)
	if err != nil {
		return err
	}

	schedulePath, scheduleDoc, err := a.readInput(ctx, ScheduleFileName, params.ReportsDir)
	if err != nil {
		return err
	}
	if err := markup.CheckBalance(scheduleDoc); err != nil {
		return fatal(ExitUnbalanced, "%s: %w", schedulePath, err)
	}
	root := markup.Parse(scheduleDoc)
	a.logger.Info("Schedule document parsed.", "path", schedulePath, "people", root.Len())

	if a.config.DumpTree {
		return a.dumpTree(root)
	}

	if err := params.Validate(); err != nil {
		return fatal(ExitFailure, "%w", err)
	}

	participantsPath, participantsDoc, err := a.readInput(ctx, ParticipantsFileName, params.ReportsDir)
	if err != nil {
		return err
	}
	collector := diag.New(a.logger)
	table := attributes.Load(participantsDoc, collector)
	a.logger.Info("Attribute table loaded.", "path", participantsPath, "people", table.Len())

	templatePath, templateDoc, err := a.readInput(ctx, params.TemplateFile, a.paramsDir())
	if err != nil {
		return err
	}
	tmpl, err := engine.ParseTemplate(templateDoc)
	if err != nil {
		code := ExitTemplate
		if errors.Is(err, markup.ErrUnbalanced) {
			code = ExitUnbalanced
		}
		return fatal(code, "%s: %w", templatePath, err)
	}
	a.logger.Debug("Template parsed.", "path", templatePath, "header", tmpl.Selection.Header, "value", tmpl.Selection.Value)

	format := engine.ParseFormat(params.MailFormat)
	out, err := batch.Create(a.outputPath(fromFile, tmpl), a.now())
	if err != nil {
		return fatal(ExitFailure, "%w", err)
	}
	defer out.Abort()

	if err := a.writeMessages(root, table, tmpl, engine.NewRenderer(table, format), out, collector); err != nil {
		return err
	}
	if err := out.Commit(); err != nil {
		return fatal(ExitFailure, "%w", err)
	}

	a.logger.Info("Email batch written.",
		"path", out.Path(),
		"format", format,
		"messages", humanize.Comma(int64(out.Count())),
		"size", humanize.Bytes(uint64(out.Size())),
	)

	if collector.HasErrors() {
		a.logger.Warn("Some people were skipped; the problems are listed below.",
			"problems", len(collector.Diagnostics()))
	}
	if err := collector.Flush(a.outW); err != nil {
		return fmt.Errorf("failed to report problems: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeMessages renders and writes one message per selected person, in
// schedule order. Per-person problems go to collector; only a render or
// write failure stops the loop.
func (a *App) writeMessages(
	root *markup.Node,
	table *attributes.Table,
	tmpl *engine.Template,
	renderer *engine.Renderer,
	out *batch.Writer,
	collector *diag.Collector,
) error {
	if root.Len() == 0 {
		a.logger.Warn("No person records found in the schedule document.")
	}

	for _, person := range root.Children() {
		fullName := person.Get(attributes.FullNameColumn)

		rec, ok := table.Lookup(fullName)
		if !ok {
			collector.Error("Person not in attribute table",
				fmt.Sprintf("%q has a schedule but no attribute record; skipped.", fullName))
			continue
		}

		outcome, value := tmpl.Selection.Evaluate(rec)
		switch outcome {
		case engine.MissingHeader:
			collector.Error("Selection column missing",
				fmt.Sprintf("%q has no %q column; skipped.", fullName, tmpl.Selection.Header))
			continue
		case engine.Mismatch:
			collector.Info("Selection value does not match; skipped.",
				"person", fullName, "value", value, "want", tmpl.Selection.Value)
			continue
		}

		text, err := renderer.Render(tmpl.Body, person)
		if err != nil {
			if errors.Is(err, engine.ErrMissingColumn) {
				return fatal(ExitMissingColumn, "%w", err)
			}
			return fatal(ExitFailure, "%w", err)
		}
		if err := out.Write(person.Get(emailColumn), text); err != nil {
			return fatal(ExitFailure, "%w", err)
		}
		a.logger.Debug("Message written.", "person", fullName)
	}
	return nil
}

// outputPath picks the batch file name: command line, then template, then
// parameter file, then the default.
func (a *App) outputPath(fromFile config.Parameters, tmpl *engine.Template) string {
	for _, candidate := range []string{a.config.Overrides.OutputFile, tmpl.OutputFile, fromFile.OutputFile} {
		if candidate != "" {
			return candidate
		}
	}
	return batch.DefaultFileName
}
