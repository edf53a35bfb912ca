package dataset

import "strings"

// Record is one cleaned game-platform sales entry.
// Sales figures are in millions of units.
type Record struct {
	Name      string
	Platform  string
	Genre     string
	Publisher string
	Developer string

	YearOfRelease Number
	UserScore     Number

	NASales     Number
	EUSales     Number
	JPSales     Number
	OtherSales  Number
	GlobalSales Number
}

// Table is an ordered set of cleaned records.
type Table struct {
	Records []Record
}

// NewTable wraps records in a Table without cleaning them.
func NewTable(records ...Record) *Table {
	return &Table{Records: records}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// CleanStats counts what happened to each raw row during cleaning.
type CleanStats struct {
	Total           int // Rows read
	MissingRequired int // Dropped for a null Year_of_Release or Global_Sales
	OtherPlatform   int // Dropped by the platform prefix filter
	Retained        int
}

// Clean converts a raw table into PlayStation records.
// The input is not modified.
func Clean(raw *RawTable) *Table {
	t, _ := CleanWithStats(raw)
	return t
}

// CleanWithStats is Clean that also reports how many rows each step dropped.
func CleanWithStats(raw *RawTable) (*Table, CleanStats) {
	stats := CleanStats{Total: raw.Len()}
	out := &Table{Records: make([]Record, 0, raw.Len())}
	if raw == nil {
		return out, stats
	}

	idx := MakeHeaderIndex(raw.Header)
	positions := make([]int, len(Schema))
	for i, field := range Schema {
		pos, ok := idx.Lookup(field.Name)
		if !ok {
			pos = -1
		}
		positions[i] = pos
	}

	for _, row := range raw.Rows {
		var rec Record
		for i, field := range Schema {
			cell := ""
			if pos := positions[i]; pos >= 0 && pos < len(row) {
				cell = row[pos]
			}
			field.assign(&rec, cell)
		}

		switch {
		case !hasRequired(rec):
			stats.MissingRequired++
		case !IsPlayStation(rec.Platform):
			stats.OtherPlatform++
		default:
			out.Records = append(out.Records, rec)
		}
	}

	stats.Retained = len(out.Records)
	return out, stats
}

// Clean re-applies the row checks to an already typed table: the required
// values, text trimming and the platform filter. Cleaning a cleaned table
// returns an equal table.
func (t *Table) Clean() *Table {
	out := &Table{Records: make([]Record, 0, t.Len())}
	if t == nil {
		return out
	}

	for _, rec := range t.Records {
		if !hasRequired(rec) {
			continue
		}
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Platform = strings.TrimSpace(rec.Platform)
		rec.Genre = strings.TrimSpace(rec.Genre)
		rec.Publisher = strings.TrimSpace(rec.Publisher)
		rec.Developer = strings.TrimSpace(rec.Developer)
		if !IsPlayStation(rec.Platform) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// Raw renders the table back to a RawTable with the Schema columns in order.
// Numbers use their shortest round-trip form and null is the empty cell, so
// Clean(t.Raw()) equals t for any cleaned table t.
func (t *Table) Raw() *RawTable {
	header := make([]string, len(Schema))
	for i, field := range Schema {
		header[i] = field.Name
	}

	rows := make([][]string, 0, t.Len())
	if t != nil {
		for i := range t.Records {
			rec := &t.Records[i]
			cells := make([]string, len(Schema))
			for j, field := range Schema {
				cells[j] = field.format(rec)
			}
			rows = append(rows, cells)
		}
	}

	return NewRawTable(header, rows)
}

// IsPlayStation reports whether a platform belongs to the PlayStation family.
// The match is a case-sensitive prefix check.
func IsPlayStation(platform string) bool {
	return strings.HasPrefix(platform, PlatformPrefix)
}

func hasRequired(rec Record) bool {
	return rec.YearOfRelease.Valid && rec.GlobalSales.Valid
}
