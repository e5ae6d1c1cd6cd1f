// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run pipeline that turns the program
// reports and a template into an email batch, decoupled from any specific
// entrypoint like a CLI.
//
// A run is strictly sequential:
//
//  1. load parameters (parameter file plus command-line overrides)
//  2. read and balance-check the schedule document, then parse it
//  3. read the attribute table
//  4. read and parse the template
//  5. select, render and write one message per qualifying person
//  6. commit the batch file and show the accumulated per-person problems
//
// Any failure in steps 1-4, a render failure, or a write failure aborts the
// run without producing the batch file; see FatalError for the exit codes.
package app
