package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// fieldOrder is the fixed column layout of the storage format.
var fieldOrder = []string{"word", "etymology", "notes"}

// Load reads a dataset from a CSV file. A missing file yields an empty
// dataset, not an error; other I/O failures propagate so the caller can
// report them and continue with what it has.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV records from r. The header row maps columns by name,
// so field order in the file does not matter. Rows without a word and
// rows that fail to parse are skipped.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	d := New(nil)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep the batch.
			continue
		}
		d.add(Entry{
			Word:      field(row, "word"),
			Etymology: field(row, "etymology"),
			Notes:     field(row, "notes"),
		})
	}
	return d, nil
}

// Save writes the full dataset to path, header first, in the fixed
// field order word,etymology,notes. The file is overwritten entirely.
func Save(path string, d *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(fieldOrder); err != nil {
		f.Close()
		return fmt.Errorf("save dataset header: %w", err)
	}
	for _, e := range d.entries {
		if err := w.Write([]string{e.Word, e.Etymology, e.Notes}); err != nil {
			f.Close()
			return fmt.Errorf("save dataset row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("save dataset: %w", err)
	}
	return f.Close()
}
