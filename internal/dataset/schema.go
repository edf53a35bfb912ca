package dataset

import (
	"fmt"
	"strings"
)

// Column headers the pipeline depends on.
const (
	ColName          = "Name"
	ColPlatform      = "Platform"
	ColYearOfRelease = "Year_of_Release"
	ColGenre         = "Genre"
	ColPublisher     = "Publisher"
	ColNASales       = "NA_Sales"
	ColEUSales       = "EU_Sales"
	ColJPSales       = "JP_Sales"
	ColOtherSales    = "Other_Sales"
	ColGlobalSales   = "Global_Sales"
	ColUserScore     = "User_Score"
	ColDeveloper     = "Developer"
)

// PlatformPrefix selects the PlayStation platform family (PS, PS2, PSP, PSV...).
const PlatformPrefix = "PS"

// FieldType represents the coercion applied to a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
)

// FieldSpec defines one named column and where its cell lives in a Record.
// Type selects which accessor is set.
type FieldSpec struct {
	Name string // Column header name (matched case-insensitively)
	Type FieldType
	text func(*Record) *string
	num  func(*Record) *Number
}

func textField(name string, dst func(*Record) *string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldText, text: dst}
}

func numericField(name string, dst func(*Record) *Number) FieldSpec {
	return FieldSpec{Name: name, Type: FieldNumeric, num: dst}
}

// assign coerces a raw cell into the record field.
func (f FieldSpec) assign(r *Record, raw string) {
	switch f.Type {
	case FieldNumeric:
		*f.num(r) = ParseNumber(raw)
	default:
		*f.text(r) = CoerceText(raw)
	}
}

// format renders the record field as a raw cell that assign reads back
// to the same value.
func (f FieldSpec) format(r *Record) string {
	switch f.Type {
	case FieldNumeric:
		return FormatNumber(*f.num(r))
	default:
		return FormatText(*f.text(r))
	}
}

// Schema lists every column the loader requires, in dataset order.
var Schema = []FieldSpec{
	textField(ColName, func(r *Record) *string { return &r.Name }),
	textField(ColPlatform, func(r *Record) *string { return &r.Platform }),
	numericField(ColYearOfRelease, func(r *Record) *Number { return &r.YearOfRelease }),
	textField(ColGenre, func(r *Record) *string { return &r.Genre }),
	textField(ColPublisher, func(r *Record) *string { return &r.Publisher }),
	numericField(ColNASales, func(r *Record) *Number { return &r.NASales }),
	numericField(ColEUSales, func(r *Record) *Number { return &r.EUSales }),
	numericField(ColJPSales, func(r *Record) *Number { return &r.JPSales }),
	numericField(ColOtherSales, func(r *Record) *Number { return &r.OtherSales }),
	numericField(ColGlobalSales, func(r *Record) *Number { return &r.GlobalSales }),
	numericField(ColUserScore, func(r *Record) *Number { return &r.UserScore }),
	textField(ColDeveloper, func(r *Record) *string { return &r.Developer }),
}

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are trimmed and lowercased; the first occurrence of a duplicate wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// Lookup returns the position of the named column.
func (h HeaderIndex) Lookup(name string) (int, bool) {
	pos, ok := h[strings.ToLower(strings.TrimSpace(name))]
	return pos, ok
}

// ValidateHeaders checks that every column in Schema is present.
// Returns the header index, or an error listing the missing columns.
func ValidateHeaders(header []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, field := range Schema {
		if _, ok := idx.Lookup(field.Name); !ok {
			missing = append(missing, field.Name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}
