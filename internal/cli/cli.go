package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/mailassembler/internal/app"
	"github.com/specialistvlad/mailassembler/internal/config"
)

// DefaultParamsFile is read when neither a parameter file nor a template is
// named on the command line.
const DefaultParamsFile = "parameters.txt"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mailassembler", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
MailAssembler - Builds a batch of personalized schedule emails for program participants.

Usage:
  mailassembler [options] [PARAMS_PATH]

Arguments:
  PARAMS_PATH
    Parameter file (.txt key=value, .yaml or .hcl). Defaults to parameters.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Path to the parameter file (default \""+DefaultParamsFile+"\").")
	mailFormatFlag := flagSet.String("mail-format", "", "Message format, overriding the parameter file. Options: 'text' or 'html'.")
	templateFlag := flagSet.String("template", "", "Template file, overriding the parameter file.")
	reportsDirFlag := flagSet.String("reports-dir", "", "Directory holding the schedule and attribute reports.")
	outputFlag := flagSet.String("output", "", "Batch file to write, overriding the template and the parameter file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dumpTreeFlag := flagSet.Bool("dump-tree", false, "Print the parsed schedule tree and exit without writing a batch.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: app.ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: app.ExitUsage, Message: "at most one parameter file may be given"}
	}

	path := *paramsFlag
	if path == "" && flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
	}
	if path == "" && *templateFlag == "" {
		path = DefaultParamsFile
	}
	slog.Debug("Parameter path determined.", "path", path)

	mailFormat := strings.ToLower(strings.TrimSpace(*mailFormatFlag))
	switch mailFormat {
	case "", "text", "html":
		// valid
	default:
		return nil, false, &ExitError{Code: app.ExitUsage, Message: "invalid mail-format: must be 'text' or 'html'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: app.ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: app.ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(app.Config{
		ParamsPath: path,
		Overrides: config.Parameters{
			ReportsDir:   *reportsDirFlag,
			MailFormat:   mailFormat,
			TemplateFile: *templateFlag,
			OutputFile:   *outputFlag,
		},
		LogFormat: logFormat,
		LogLevel:  logLevel,
		DumpTree:  *dumpTreeFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: app.ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
