package config

import (
	"context"
	"path/filepath"
	"strings"
)

// Loader is the interface for a format-specific parameter file loader.
type Loader interface {
	// Load reads the parameter file at path. A missing file is reported
	// with an error wrapping fs.ErrNotExist.
	Load(ctx context.Context, path string) (*Parameters, error)
}

// Format names a parameter file format.
type Format string

const (
	FormatParm Format = "parm"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatForPath picks the file format from the extension of path.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatParm
	}
}
