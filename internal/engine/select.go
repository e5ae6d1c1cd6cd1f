package engine

import (
	"strings"

	"github.com/specialistvlad/mailassembler/internal/attributes"
)

// Outcome is the result of applying a Selection to one person.
type Outcome int

const (
	// Selected means the person gets an email.
	Selected Outcome = iota
	// MissingHeader means the person's record has no selection column.
	MissingHeader
	// Mismatch means the column value differs from the expected value.
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case MissingHeader:
		return "missing header"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Evaluate applies the selection to rec. It also returns the person's value
// for the selection column, for logging.
func (s Selection) Evaluate(rec *attributes.Record) (Outcome, string) {
	value, ok := rec.Get(s.Header)
	if !ok {
		return MissingHeader, ""
	}
	if !strings.EqualFold(strings.TrimSpace(value), s.Value) {
		return Mismatch, value
	}
	return Selected, value
}
