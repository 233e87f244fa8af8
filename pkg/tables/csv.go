package tables

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/crosscheckhq/crosscheck/pkg/errors"
)

// outputFilePermissions is used for written report files.
const outputFilePermissions = 0o644

// Load reads a CSV document into a Table. Rows whose cells are all empty
// are dropped. Records may vary in width; rectangularity is the producer's
// contract, not verified here.
func Load(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	t := &Table{Name: name}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}
		if isBlank(record) {
			continue
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// LoadFile reads the CSV file at path into a Table named after its basename.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return Load(filepath.Base(path), f)
}

// Write encodes rows as CSV to w.
func Write(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// SaveFile writes rows as a CSV file at path, replacing any existing file.
func SaveFile(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputFilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// isBlank reports whether every cell in the record is empty.
func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
