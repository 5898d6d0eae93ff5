package domain

import "strconv"

// ColumnDescriptor names one column of a section table, optionally
// carrying the unit parsed from the header.
type ColumnDescriptor struct {
	// Name is the base column name, unit stripped.
	Name string

	// Unit is the unit string, empty when the header carried none.
	Unit string
}

// Key returns the column key used in records and export headers:
// "Name (Unit)" when a unit is present, the bare name otherwise.
func (c ColumnDescriptor) Key() string {
	if c.Unit == "" {
		return c.Name
	}
	return c.Name + " (" + c.Unit + ")"
}

// Value is one cell of a record: either a number or free text.
// The zero Value represents a missing cell.
type Value struct {
	// Number holds the numeric value when Numeric is true.
	Number float64

	// Text holds the raw text when Numeric is false.
	Text string

	// Numeric reports whether Number is meaningful.
	Numeric bool
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{Number: f, Numeric: true}
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// IsMissing reports whether the value is an empty cell.
func (v Value) IsMissing() bool {
	return !v.Numeric && v.Text == ""
}

// String renders the value for display and export. Numbers use the
// shortest representation that round-trips.
func (v Value) String() string {
	if v.Numeric {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.Text
}

// Record maps column keys to cell values. Column order lives on the
// owning Table, not the record.
type Record map[string]Value

// Table is one logical section's content: an ordered column set and
// the records sharing it. Every record carries exactly the column set
// derived from the section header; missing cells are zero Values.
type Table struct {
	// Columns is the ordered column descriptor set.
	Columns []ColumnDescriptor

	// Rows are the parsed records in file order.
	Rows []Record
}

// NewTable creates an empty table with the given columns.
func NewTable(cols []ColumnDescriptor) *Table {
	return &Table{Columns: cols}
}

// Keys returns the ordered column keys.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		keys[i] = c.Key()
	}
	return keys
}

// Append adds a record to the table.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// NumRows returns the number of records.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no records.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Cell returns the value at a row index and column key.
func (t *Table) Cell(row int, key string) Value {
	if row < 0 || row >= len(t.Rows) {
		return Value{}
	}
	return t.Rows[row][key]
}
