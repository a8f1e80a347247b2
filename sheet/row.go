// Package sheet holds the row model shared by every stage of the pipeline:
// order-preserving rows keyed by column header, the JSON staging file that
// hands rows from fetch/import to load/upsert, and the filter that strips
// test entries and no-contact rows.
package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one record fetched from a spreadsheet, keyed by column header. Key
// order is significant - it carries the sheet's column order through the
// staging file - so Row marshals and unmarshals as a JSON object with the
// keys in insertion order.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow builds a row from a header list and the matching data cells. Short
// rows are padded with empty strings to the header width (the Sheets API
// omits trailing empty cells). A duplicate header keeps its first position
// and takes the last value.
func NewRow(headers []string, cells []string) Row {
	row := Row{}

	for i, header := range headers {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}

		row.Set(header, v)
	}

	return row
}

func (r *Row) Set(key, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

func (r Row) Get(key string) string {
	return r.values[key]
}

func (r Row) Lookup(key string) (string, bool) {
	v, ok := r.values[key]

	return v, ok
}

// Headers returns the row's keys in insertion order.
func (r Row) Headers() []string {
	headers := make([]string, len(r.keys))
	copy(headers, r.keys)

	return headers
}

func (r Row) Len() int {
	return len(r.keys)
}

func (r Row) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}

		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

func (r *Row) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", token)
	}

	r.keys = nil
	r.values = map[string]string{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		key := token.(string)

		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("invalid value for %q (%v)", key, err)
		}

		r.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}

// RenameColumns returns a copy of rows with each key renamed according to
// mapping. Keys without a mapping entry are kept as-is.
func RenameColumns(rows []Row, mapping map[string]string) []Row {
	renamed := make([]Row, 0, len(rows))

	for _, row := range rows {
		mapped := Row{}
		for _, key := range row.keys {
			name := key
			if v, ok := mapping[key]; ok {
				name = v
			}

			mapped.Set(name, row.values[key])
		}

		renamed = append(renamed, mapped)
	}

	return renamed
}
