// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalanced is wrapped by every error CheckBalance returns.
var ErrUnbalanced = errors.New("unbalanced markup")

// Reason classifies a structural violation.
type Reason int

const (
	// UnbalancedDelimiters means the document ended with delimiters still open.
	UnbalancedDelimiters Reason = iota + 1
	// UnmatchedClose means a closing delimiter appeared with nothing open.
	UnmatchedClose
	// MismatchedBracket means "]]" closed something other than "[[".
	MismatchedBracket
	// MismatchedTag means "</name>" closed something other than "<name>".
	MismatchedTag
)

func (r Reason) String() string {
	switch r {
	case UnbalancedDelimiters:
		return "unbalanced delimiters"
	case UnmatchedClose:
		return "unmatched closing delimiter"
	case MismatchedBracket:
		return "mismatched [[ ]]"
	case MismatchedTag:
		return "mismatched <tag></tag>"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// BalanceError describes the first structural violation in a document.
type BalanceError struct {
	Reason Reason
	// Delimiter is the offending token: the closing delimiter for
	// UnmatchedClose and the mismatch reasons, the innermost still-open
	// delimiter for UnbalancedDelimiters.
	Delimiter string
	// Open is the delimiter that was on top of the stack, if any.
	Open string
	// Context is a short excerpt of the text following the violation.
	Context string
}

func (e *BalanceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %q", e.Reason, e.Delimiter)
	if e.Open != "" && e.Open != e.Delimiter {
		fmt.Fprintf(&b, " (open %q)", e.Open)
	}
	if e.Context != "" {
		fmt.Fprintf(&b, " near '%s'", e.Context)
	}
	return b.String()
}

// Unwrap makes errors.Is(err, ErrUnbalanced) hold.
func (e *BalanceError) Unwrap() error {
	return ErrUnbalanced
}

const contextLimit = 60

// CheckBalance verifies that every delimiter in doc is matched and properly
// nested. It returns nil for a well-formed document and a *BalanceError
// describing the first violation otherwise.
func CheckBalance(doc string) error {
	s := strings.ReplaceAll(doc, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	var nesting []string
	for {
		delim, rest := LocateNext(s)
		if delim == "" {
			if len(nesting) > 0 {
				open := nesting[len(nesting)-1]
				return &BalanceError{
					Reason:    UnbalancedDelimiters,
					Delimiter: open,
					Open:      open,
					Context:   strings.Join(nesting, " > "),
				}
			}
			return nil
		}
		s = rest

		if isOpening(delim) {
			nesting = append(nesting, delim)
			continue
		}

		if len(nesting) == 0 {
			return &BalanceError{Reason: UnmatchedClose, Delimiter: delim, Context: excerpt(s)}
		}
		top := nesting[len(nesting)-1]
		nesting = nesting[:len(nesting)-1]

		if delim == CloseBrackets {
			if top != OpenBrackets {
				return &BalanceError{Reason: MismatchedBracket, Delimiter: delim, Open: top, Context: excerpt(s)}
			}
			continue
		}
		if top != delim[1:] {
			return &BalanceError{Reason: MismatchedTag, Delimiter: delim, Open: top, Context: excerpt(s)}
		}
	}
}

func isOpening(delim string) bool {
	if delim == OpenBrackets {
		return true
	}
	return delim != CloseBrackets && !strings.HasPrefix(delim, "/")
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= contextLimit {
		return s
	}
	return string(r[:contextLimit]) + "..."
}
