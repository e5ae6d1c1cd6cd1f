package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/mailassembler/internal/app"
	"github.com/specialistvlad/mailassembler/internal/cli"
	"github.com/specialistvlad/mailassembler/internal/ctxlog"
)

// main is the entrypoint for the mailassembler application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(app.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	mailApp := app.NewApp(outW, appConfig)
	ctx := ctxlog.WithLogger(context.Background(), mailApp.Logger())

	if err := mailApp.Run(ctx); err != nil {
		var fatalErr *app.FatalError
		if errors.As(err, &fatalErr) {
			return &cli.ExitError{Code: fatalErr.Code, Message: fatalErr.Error()}
		}
		return err
	}
	return nil
}
