// Package config defines the format-agnostic run parameters of the
// application, along with the Loader interface for reading them from a
// parameter file.
//
// `config.Parameters` is the single source of truth for the `app` package.
// The legacy key=value format and YAML are implemented here; the HCL
// implementation lives in the separate `hcl` package.
package config
