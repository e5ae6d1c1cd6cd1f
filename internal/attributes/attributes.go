// Package attributes holds the per-person attribute table read from the
// participants report.
//
// Column headers and full names are compared ignoring case and whitespace:
// "Full Name", "full name" and "fullname" are the same key.
package attributes

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/specialistvlad/mailassembler/internal/diag"
	"github.com/specialistvlad/mailassembler/internal/markup"
)

// FullNameColumn is the column every record must carry.
const FullNameColumn = "full name"

// NormalizeKey lowercases s and removes all whitespace from it.
func NormalizeKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Record is one person's row. Columns keep the order they were read in.
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under column. A repeated column overwrites the earlier
// value but keeps its original position.
func (r *Record) Set(column, value string) {
	key := NormalizeKey(column)
	if _, exists := r.values[key]; !exists {
		r.columns = append(r.columns, strings.TrimSpace(column))
	}
	r.values[key] = value
}

// Get returns the value stored under column.
func (r *Record) Get(column string) (string, bool) {
	v, ok := r.values[NormalizeKey(column)]
	return v, ok
}

// Has reports whether the record carries column.
func (r *Record) Has(column string) bool {
	_, ok := r.values[NormalizeKey(column)]
	return ok
}

// Columns returns the column headers in read order.
func (r *Record) Columns() []string {
	return r.columns
}

// FullName returns the record's full name, or "" if it has none.
func (r *Record) FullName() string {
	v, _ := r.Get(FullNameColumn)
	return v
}

// Table maps full names to records.
type Table struct {
	people map[string]*Record
	schema map[string]struct{}
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		people: make(map[string]*Record),
		schema: make(map[string]struct{}),
	}
}

// Add stores rec under its full name. It reports false, and stores nothing,
// when rec has no full name column. A later record with the same name
// replaces the earlier one.
func (t *Table) Add(rec *Record) bool {
	if !rec.Has(FullNameColumn) {
		return false
	}
	t.people[NormalizeKey(rec.FullName())] = rec
	for _, col := range rec.Columns() {
		t.schema[NormalizeKey(col)] = struct{}{}
	}
	return true
}

// Lookup returns the record for fullName.
func (t *Table) Lookup(fullName string) (*Record, bool) {
	rec, ok := t.people[NormalizeKey(fullName)]
	return rec, ok
}

// HasColumn reports whether any record in the table carries column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.schema[NormalizeKey(column)]
	return ok
}

// Len returns the number of people in the table.
func (t *Table) Len() int {
	return len(t.people)
}

// Load builds a table from an attribute document: a sequence of
// <person>...</person> blocks, each holding <column>value</column> pairs.
// Persons without a full name are reported to d and discarded.
func Load(doc string, d *diag.Collector) *Table {
	table := NewTable()
	for i, block := range markup.SplitBlocks(doc) {
		rec := NewRecord()
		for _, field := range markup.SplitBlocks(block.Body) {
			rec.Set(field.Tag, field.Body)
		}

		if !rec.Has(FullNameColumn) {
			d.Error("Person without a full name discarded",
				fmt.Sprintf("Entry %d of the attribute table has no %q column.", i+1, FullNameColumn))
			continue
		}
		if _, exists := table.Lookup(rec.FullName()); exists {
			d.Warn("Duplicate person in attribute table",
				fmt.Sprintf("%q appears more than once; the last entry wins.", rec.FullName()))
		}
		table.Add(rec)
	}
	return table
}
