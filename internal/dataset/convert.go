package dataset

// convert.go provides the total coercion functions applied to raw cells.
//
// Raw sales data is messy: years recorded as "N/A", user scores of "tbd",
// stray whitespace around names. None of that is fatal. Numeric cells that
// do not parse become null, and missing text becomes the literal "nan" so it
// still groups as an ordinary category.

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Number is a nullable numeric cell. Valid is false for null.
type Number = pgtype.Float8

// MissingText is what a missing text cell becomes after coercion.
const MissingText = "nan"

// numericRegex validates that a string is a plain decimal number.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// missingTokens are the cell values read as missing, on top of the empty string.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw cell is a missing-value marker.
// The comparison is exact; " NA " is a value, not a marker.
func IsMissing(raw string) bool {
	_, ok := missingTokens[raw]
	return ok
}

// Null returns a null Number.
func Null() Number {
	return Number{Valid: false}
}

// Num returns a valid Number holding v.
func Num(v float64) Number {
	return Number{Float64: v, Valid: true}
}

// ParseNumber converts a raw cell to a Number.
// Returns null for missing markers, non-numeric text, NaN, infinity
// spellings and values that overflow float64; never fails.
func ParseNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if s == "" || !numericRegex.MatchString(s) {
		return Null()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return Null()
	}

	return Num(v)
}

// FormatNumber renders a Number in its shortest round-trip decimal form.
// Null renders as the empty string.
func FormatNumber(n Number) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

// CoerceText converts a raw cell to a trimmed string.
// Missing markers become MissingText rather than the empty string.
func CoerceText(raw string) string {
	if IsMissing(raw) {
		return MissingText
	}
	return strings.TrimSpace(raw)
}

// FormatText renders a coerced text value so CoerceText reads it back
// unchanged. A value that is itself a missing marker, other than MissingText,
// gets a leading space; CoerceText trims it off again.
func FormatText(s string) string {
	if s != MissingText && IsMissing(s) {
		return " " + s
	}
	return s
}
