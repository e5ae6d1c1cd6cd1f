package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/mailassembler/internal/config"
	"github.com/specialistvlad/mailassembler/internal/ctxlog"
	"github.com/specialistvlad/mailassembler/internal/fsutil"
)

// loadParameters reads the parameter file, if any, and applies the
// command-line overrides. It returns the file parameters and the merged ones.
func (a *App) loadParameters(ctx context.Context) (fromFile, merged config.Parameters, err error) {
	logger := ctxlog.FromContext(ctx)

	if path := a.config.ParamsPath; path != "" {
		format := config.FormatForPath(path)
		logger.Debug("Loading parameters.", "path", path, "format", format)

		params, err := a.loaders[format].Load(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fromFile, merged, fatal(ExitMissingInput, "can't open/read %s: %w", path, err)
			}
			return fromFile, merged, fatal(ExitFailure, "invalid parameter file: %w", err)
		}
		fromFile = *params
	}

	merged = fromFile.Merge(a.config.Overrides)
	return fromFile, merged, nil
}

// readInput locates name in dirs (then the working directory) and returns its
// path and contents.
func (a *App) readInput(ctx context.Context, name string, dirs ...string) (string, string, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := fsutil.Locate(name, dirs...)
	if err != nil {
		return "", "", fatal(ExitMissingInput, "%w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fatal(ExitMissingInput, "failed to read %s: %w", path, err)
	}
	logger.Debug("Input file read.", "path", path, "bytes", len(data))
	return path, string(data), nil
}

// paramsDir is the directory of the parameter file. The template is looked
// up there before the working directory.
func (a *App) paramsDir() string {
	if a.config.ParamsPath == "" {
		return ""
	}
	return filepath.Dir(a.config.ParamsPath)
}
