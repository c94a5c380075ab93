package plate

import (
	"fmt"
	"slices"

	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/internal/hash"
)

// Reserved column names. The time column lives outside the column list and
// may never be added as a sample; the blank column is consumed by blank
// correction and never appears as a result row.
const (
	TimeColumn  = "time"
	BlankColumn = "blank"
)

// Column is one named measurement series of a plate.
type Column struct {
	Name   string
	Values []float64
}

// Table is the in-memory measurement table the orchestrator consumes: one
// shared time vector plus named sample columns in insertion order. A Table
// is built once and then read-only; orchestration never mutates it.
type Table struct {
	times []float64
	cols  []Column
	index map[string]int
}

// NewTable creates a table around the shared time vector.
//
// Returns ErrConfig when the vector is empty, starts before t=0, or is not
// sorted ascending. Negative times are rejected because both AUC metrics
// integrate from t=0.
func NewTable(times []float64) (*Table, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: empty time vector", fit.ErrConfig)
	}
	if times[0] < 0 {
		return nil, fmt.Errorf("%w: negative time %v", fit.ErrConfig, times[0])
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, fmt.Errorf("%w: time vector must be non-decreasing", fit.ErrConfig)
		}
	}

	return &Table{
		times: slices.Clone(times),
		index: make(map[string]int),
	}, nil
}

// AddColumn appends a named measurement column. Insertion order is the
// order rows appear in the plate result. The name "time" is reserved,
// duplicates are rejected, and the column length must match the time
// vector.
func (t *Table) AddColumn(name string, values []float64) error {
	if name == TimeColumn {
		return fmt.Errorf("%w: %q is a reserved column name", fit.ErrConfig, name)
	}
	if len(values) != len(t.times) {
		return fmt.Errorf("%w: column %q has %d values for %d time points",
			fit.ErrConfig, name, len(values), len(t.times))
	}
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("%w: duplicate column %q", fit.ErrConfig, name)
	}

	t.index[name] = len(t.cols)
	t.cols = append(t.cols, Column{Name: name, Values: slices.Clone(values)})

	return nil
}

// Times returns a copy of the shared time vector. The copy keeps the table
// read-only after construction.
func (t *Table) Times() []float64 {
	return slices.Clone(t.times)
}

// Blank returns the blank column's values, or nil when the table has none.
func (t *Table) Blank() []float64 {
	if i, exists := t.index[BlankColumn]; exists {
		return t.cols[i].Values
	}

	return nil
}

// Samples returns the sample columns in insertion order, excluding the
// blank column.
func (t *Table) Samples() []Column {
	out := make([]Column, 0, len(t.cols))
	for _, c := range t.cols {
		if c.Name == BlankColumn {
			continue
		}
		out = append(out, c)
	}

	return out
}

// Fingerprint returns a deterministic xxHash64 of the table's layout and
// data. Two tables with the same columns in the same order and identical
// values share a fingerprint; any rename, reorder or edit changes it.
func (t *Table) Fingerprint() uint64 {
	parts := make([]uint64, 0, len(t.cols)+1)
	parts = append(parts, hash.Series(TimeColumn, t.times))
	for _, c := range t.cols {
		parts = append(parts, hash.Series(c.Name, c.Values))
	}

	return hash.Combine(parts...)
}
