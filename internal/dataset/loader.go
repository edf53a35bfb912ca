package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RawTable is a delimited file held verbatim: one header and one string
// slice per data line. No cell is coerced.
type RawTable struct {
	Header []string
	Rows   [][]string

	index HeaderIndex
}

// NewRawTable builds a RawTable from a header and rows.
// It does not validate the header against Schema.
func NewRawTable(header []string, rows [][]string) *RawTable {
	return &RawTable{
		Header: header,
		Rows:   rows,
		index:  MakeHeaderIndex(header),
	}
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column returns the position of a column by header name.
// A table built without NewRawTable or ReadRaw gets its header index
// cached on first use.
func (t *RawTable) Column(name string) (int, bool) {
	if t.index == nil {
		t.index = MakeHeaderIndex(t.Header)
	}
	return t.index.Lookup(name)
}

// Cell returns the raw value at row i in the named column.
// ok is false when the column is absent or the row is too short.
func (t *RawTable) Cell(i int, column string) (string, bool) {
	pos, ok := t.Column(column)
	if !ok || i < 0 || i >= len(t.Rows) || pos >= len(t.Rows[i]) {
		return "", false
	}
	return t.Rows[i][pos], true
}

// LoadRaw reads the dataset at path into a RawTable.
func LoadRaw(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	table, err := ReadRaw(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return table, nil
}

// ReadRaw parses delimited text from r into a RawTable.
//
// The stream is decoded as UTF-8 with a leading BOM removed and invalid
// sequences replaced. Every record must have as many fields as the header,
// and the header must name every column in Schema.
func ReadRaw(r io.Reader) (*RawTable, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = 0 // header sets the width

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: errors.New("empty file: no header row")}
	}
	if err != nil {
		return nil, csvParseError(err)
	}

	idx, err := ValidateHeaders(header)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}
		rows = append(rows, rec)
	}

	return &RawTable{Header: header, Rows: rows, index: idx}, nil
}

// csvParseError converts an encoding/csv error into a ParseError.
func csvParseError(err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Line: ce.Line, Err: ce.Err}
	}
	return &ParseError{Err: err}
}
