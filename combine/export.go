// SPDX-License-Identifier: MIT

package combine

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// csvHeader names the columns written by WriteCSV and expected by ReadCSV.
var csvHeader = []string{"value", "first", "second", "count"}

// tableDoc is the serialized form shared by JSON and YAML.
type tableDoc struct {
	Cells   int     `json:"cells" yaml:"cells"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

func (t *Table) doc() tableDoc {
	return tableDoc{Cells: t.total, Entries: t.Entries()}
}

// fromDoc validates d through NewTable and checks the declared cell count.
func fromDoc(d tableDoc) (*Table, error) {
	nt, err := NewTable(d.Entries)
	if err != nil {
		return nil, err
	}
	if d.Cells != nt.total {
		return nil, fmt.Errorf("cells %d != sum of counts %d: %w", d.Cells, nt.total, ErrInvalidEntry)
	}

	return nt, nil
}

// WriteCSV writes a header row followed by one row per entry in code order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	rec := make([]string, len(csvHeader))
	for _, e := range t.entries {
		rec[0] = strconv.FormatUint(e.Value, 10)
		rec[1] = strconv.FormatUint(e.First, 10)
		rec[2] = strconv.FormatUint(e.Second, 10)
		rec[3] = strconv.Itoa(e.Count)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses the format written by WriteCSV and validates it with NewTable.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}
	for i, name := range csvHeader {
		if head[i] != name {
			return nil, fmt.Errorf("ReadCSV: column %d is %q, want %q: %w", i, head[i], name, ErrInvalidEntry)
		}
	}

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %w", line, err)
		}
		e, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %w", line, err)
		}
		entries = append(entries, e)
	}

	return NewTable(entries)
}

func parseRecord(rec []string) (Entry, error) {
	var e Entry
	var err error
	if e.Value, err = strconv.ParseUint(rec[0], 10, 64); err != nil {
		return e, err
	}
	if e.First, err = strconv.ParseUint(rec[1], 10, 64); err != nil {
		return e, err
	}
	if e.Second, err = strconv.ParseUint(rec[2], 10, 64); err != nil {
		return e, err
	}
	if e.Count, err = strconv.Atoi(rec[3]); err != nil {
		return e, err
	}

	return e, nil
}

// MarshalJSON encodes the table as {"cells": N, "entries": [...]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

// UnmarshalJSON decodes the MarshalJSON form and validates it.
func (t *Table) UnmarshalJSON(data []byte) error {
	var d tableDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	nt, err := fromDoc(d)
	if err != nil {
		return err
	}
	*t = *nt

	return nil
}

// MarshalYAML implements yaml.Marshaler with the same layout as MarshalJSON.
func (t *Table) MarshalYAML() (any, error) {
	return t.doc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler and validates the decoded entries.
func (t *Table) UnmarshalYAML(n *yaml.Node) error {
	var d tableDoc
	if err := n.Decode(&d); err != nil {
		return err
	}
	nt, err := fromDoc(d)
	if err != nil {
		return err
	}
	*t = *nt

	return nil
}
