package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/mailassembler/internal/attributes"
	"github.com/specialistvlad/mailassembler/internal/markup"
)

// Format selects how the schedule expansion is rendered.
type Format int

const (
	// PlainText renders one line per field.
	PlainText Format = iota
	// HTML renders one paragraph per field.
	HTML
)

// ParseFormat returns HTML for "html" in any case and PlainText otherwise.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "html") {
		return HTML
	}
	return PlainText
}

func (f Format) String() string {
	if f == HTML {
		return "html"
	}
	return "text"
}

const scheduleToken = "schedule"

var (
	// ErrMissingColumn is wrapped when a placeholder names a column the
	// attribute table does not have.
	ErrMissingColumn = errors.New("column not in attribute table")
	// ErrUnknownPerson is returned when the person has no attribute record.
	ErrUnknownPerson = errors.New("person not in attribute table")
)

// MissingColumnError names the unknown column and the person being rendered
// when it was found.
type MissingColumnError struct {
	Column string
	Person string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("can't find column %q in the attribute table (rendering %q)", e.Column, e.Person)
}

// Unwrap makes errors.Is(err, ErrMissingColumn) hold.
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Renderer expands template bodies for people in a schedule tree.
type Renderer struct {
	table  *attributes.Table
	format Format
}

// NewRenderer returns a renderer that reads attribute values from table.
func NewRenderer(table *attributes.Table, format Format) *Renderer {
	return &Renderer{table: table, format: format}
}

// Render expands every [[token]] in body for person, a person node of the
// schedule tree. A token naming a column absent from the attribute table
// fails the whole render.
func (r *Renderer) Render(body string, person *markup.Node) (string, error) {
	fullName := person.Get(attributes.FullNameColumn)
	rec, ok := r.table.Lookup(fullName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPerson, fullName)
	}

	var out strings.Builder
	rest := body
	for {
		open := strings.Index(rest, markup.OpenBrackets)
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+len(markup.OpenBrackets):], markup.CloseBrackets)
		if end < 0 {
			break
		}
		end += open + len(markup.OpenBrackets)

		out.WriteString(rest[:open])
		token := rest[open+len(markup.OpenBrackets) : end]
		rest = rest[end+len(markup.CloseBrackets):]

		expansion, err := r.expand(token, person, rec)
		if err != nil {
			return "", err
		}
		out.WriteString(expansion)
	}
	out.WriteString(rest)
	return out.String(), nil
}

func (r *Renderer) expand(token string, person *markup.Node, rec *attributes.Record) (string, error) {
	if strings.EqualFold(strings.TrimSpace(token), scheduleToken) {
		return RenderSchedule(person, r.format), nil
	}

	if strings.Count(token, "|") == 2 {
		parts := strings.SplitN(token, "|", 3)
		value, err := r.column(parts[1], rec)
		if err != nil || value == "" {
			return "", err
		}
		return parts[0] + value + parts[2], nil
	}

	return r.column(token, rec)
}

func (r *Renderer) column(name string, rec *attributes.Record) (string, error) {
	if !r.table.HasColumn(name) {
		return "", &MissingColumnError{Column: strings.TrimSpace(name), Person: rec.FullName()}
	}
	value, _ := rec.Get(name)
	return value, nil
}
