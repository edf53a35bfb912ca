// Package dataset loads and cleans the video game sales table.
//
// The package is organized around two representations of the same data:
//
//   - [RawTable]: the delimited file exactly as read, every cell a string.
//   - [Table]: typed [Record] values after cleaning, restricted to the
//     PlayStation platform family.
//
// # Loading
//
// [LoadRaw] reads a CSV file whose header names every column in [Schema].
// Extra columns are kept in the raw table and ignored downstream. The reader
// strips a UTF-8 BOM and replaces invalid byte sequences before parsing.
//
// # Cleaning
//
// [Clean] converts a raw table into a [Table]:
//
//  1. Numeric columns are parsed with [ParseNumber]; unparseable cells become null.
//  2. Rows missing Year_of_Release or Global_Sales are dropped.
//  3. Text columns are trimmed with [CoerceText]; missing text becomes "nan".
//  4. Rows whose Platform does not start with [PlatformPrefix] are dropped.
//
// Coercion never fails. Numeric cells are [pgtype.Float8] values whose Valid
// flag is false for null.
//
// # Errors
//
//   - [ErrFileNotFound]: the dataset path does not exist.
//   - [ErrParse] / [*ParseError]: malformed CSV or a header missing a named column.
package dataset
