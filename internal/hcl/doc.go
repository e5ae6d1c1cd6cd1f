// Package hcl provides the concrete HCL implementation of the parameter
// loading interface defined in the `config` package. Expressions may refer
// to the process environment through the `env` object.
package hcl
