// SPDX-License-Identifier: MIT

package combine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvraster/pairing"
)

// Entry is one row of the Value Attribute Table.
type Entry struct {
	Value  uint64 `json:"value" yaml:"value"`   // code in the combined grid
	First  uint64 `json:"first" yaml:"first"`   // cell value of the first grid
	Second uint64 `json:"second" yaml:"second"` // cell value of the second grid
	Count  int    `json:"count" yaml:"count"`   // number of cells holding this pair
}

// Table is an immutable Value Attribute Table: code → {First, Second, Count}.
// Entries are kept in ascending code order for deterministic iteration.
type Table struct {
	entries []Entry        // ascending by Value
	index   map[uint64]int // Value → position in entries
	total   int            // Σ Count
}

// buildTable decodes each distinct code of hist once and assembles the table.
// Each entry takes its count from the same histogram slot it was decoded from.
// decode defaults to pairing.Decode.
func buildTable(hist histogram, decode func(uint64) (uint64, uint64)) *Table {
	if decode == nil {
		decode = pairing.Decode
	}
	codes := make([]uint64, 0, len(hist))
	for z := range hist {
		codes = append(codes, z)
	}
	slices.Sort(codes)

	t := &Table{
		entries: make([]Entry, len(codes)),
		index:   make(map[uint64]int, len(codes)),
	}
	for i, z := range codes {
		a, b := decode(z)
		n := hist[z]
		t.entries[i] = Entry{Value: z, First: a, Second: b, Count: n}
		t.index[z] = i
		t.total += n
	}

	return t
}

// NewTable rebuilds a Table from stored entries (any order).
// Each entry must satisfy Value == pairing.Encode(First, Second) within the safe
// range and Count > 0; codes must be unique. Violations fail with ErrInvalidEntry.
func NewTable(entries []Entry) (*Table, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(x, y Entry) int { return cmp.Compare(x.Value, y.Value) })

	t := &Table{
		entries: sorted,
		index:   make(map[uint64]int, len(sorted)),
	}
	for i, e := range sorted {
		if e.Count <= 0 {
			return nil, fmt.Errorf("NewTable: value %d: count %d: %w", e.Value, e.Count, ErrInvalidEntry)
		}
		if !pairing.Safe(e.First, e.Second) || pairing.Encode(e.First, e.Second) != e.Value {
			return nil, fmt.Errorf("NewTable: value %d does not encode (%d,%d): %w", e.Value, e.First, e.Second, ErrInvalidEntry)
		}
		if _, dup := t.index[e.Value]; dup {
			return nil, fmt.Errorf("NewTable: duplicate value %d: %w", e.Value, ErrInvalidEntry)
		}
		t.index[e.Value] = i
		t.total += e.Count
	}

	return t, nil
}

// Len returns the number of distinct pairs.
func (t *Table) Len() int { return len(t.entries) }

// Total returns Σ Count, i.e. the number of cells tabulated.
func (t *Table) Total() int { return t.total }

// Lookup returns the entry for code z.
func (t *Table) Lookup(z uint64) (Entry, bool) {
	i, ok := t.index[z]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}

// CodeOf returns the code of pair (first, second) if the pair occurs in the table.
func (t *Table) CodeOf(first, second uint64) (uint64, bool) {
	if !pairing.Safe(first, second) {
		return 0, false
	}
	z := pairing.Encode(first, second)
	if _, ok := t.index[z]; !ok {
		return 0, false
	}

	return z, true
}

// Entries returns a copy of all entries in ascending code order.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Codes returns all codes in ascending order.
func (t *Table) Codes() []uint64 {
	out := make([]uint64, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}

	return out
}
