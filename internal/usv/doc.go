// Package usv converts between CSV and Unicode Separated Values.
//
// USV replaces the comma and the line break of CSV with two visible Unicode
// control pictures:
//
//	␟ (U+241F) separates fields within a record
//	␞ (U+241E) separates records
//
// Because neither code point occurs in ordinary text, USV needs no quoting or
// escaping. Converting CSV to USV therefore only requires a CSV tokenizer,
// while the reverse direction re-quotes any field that contains a comma, a
// double quote or a line feed.
//
// # Operations
//
//   - [CSVToUSV] parses CSV and encodes the table as USV.
//   - [USVToCSV] decodes USV and emits CSV.
//   - [Statistics] reports row, column and character counts and never fails.
//
// The lower level stages ([ParseCSV], [EncodeUSV], [DecodeUSV], [EncodeCSV])
// are exported for callers that need the table itself, such as previews.
//
// # Normalization
//
// The CSV parser trims surrounding whitespace from every field, including
// quoted ones, and drops rows whose fields are all empty. USV decoding keeps
// empty fields. Both behaviours are kept for compatibility with existing USV
// documents.
//
// All functions are pure and safe for concurrent use.
package usv
