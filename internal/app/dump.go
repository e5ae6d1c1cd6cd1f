package app

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/specialistvlad/mailassembler/internal/markup"
)

// newPrinter returns an uncolored printer for tree dumps. It leaves pp's
// package-level printer untouched.
func newPrinter() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer
}

// dumpTree pretty-prints the resolved schedule tree.
func (a *App) dumpTree(root *markup.Node) error {
	if _, err := a.printer.Fprintln(a.outW, root.Outline()); err != nil {
		return fmt.Errorf("failed to dump schedule tree: %w", err)
	}
	return nil
}
