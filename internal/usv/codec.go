package usv

import (
	"strings"
	"unicode/utf8"
)

// EncodeUSV joins each row's fields with UnitSep and the rows with RecordSep.
// Fields are written as is; they must not contain either separator.
func EncodeUSV(t Table) string {
	rows := make([]string, len(t))
	for i, row := range t {
		rows[i] = strings.Join(row, unitSep)
	}
	return strings.Join(rows, recordSep)
}

// DecodeUSV validates USV text and splits it into a table.
func DecodeUSV(text string) (Table, error) {
	if isBlank(text) {
		return nil, emptyInput(FormatUSV)
	}
	if !strings.ContainsRune(text, UnitSep) && !strings.ContainsRune(text, RecordSep) {
		return nil, ErrNotUSV
	}
	t := splitUSV(text)
	if len(t) == 0 {
		return nil, ErrNoRecords
	}
	return t, nil
}

// splitUSV drops zero-length records but applies the preserveEmptyFields
// policy within a record: "a␟␟b" is three fields.
func splitUSV(text string) Table {
	var t Table
	for _, rec := range strings.Split(text, recordSep) {
		if rec == "" {
			continue
		}
		t = append(t, strings.Split(rec, unitSep))
	}
	return t
}

// CSVToUSV converts CSV text to USV.
func CSVToUSV(text string) (string, error) {
	if isBlank(text) {
		return "", emptyInput(FormatCSV)
	}
	t, err := ParseCSV(text)
	if err != nil {
		return "", &ConversionError{Stage: FormatCSV, Err: err}
	}
	if len(t) == 0 {
		return "", &ConversionError{Stage: FormatCSV, Err: ErrNoData}
	}
	return EncodeUSV(t), nil
}

// USVToCSV converts USV text to CSV, quoting fields where CSV requires it.
func USVToCSV(text string) (string, error) {
	if isBlank(text) {
		return "", emptyInput(FormatUSV)
	}
	t, err := DecodeUSV(text)
	if err != nil {
		return "", &ConversionError{Stage: FormatUSV, Err: err}
	}
	return EncodeCSV(t), nil
}

// Stats summarizes a document.
type Stats struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	Characters int `json:"characters"`
}

// Statistics counts rows, first-row columns and characters of content.
// It never fails: content that cannot be parsed reports zero rows and
// columns with the character count of the raw input.
func Statistics(content string, f Format) Stats {
	stats := Stats{Characters: utf8.RuneCountInString(content)}

	var t Table
	switch f {
	case FormatCSV:
		parsed, err := ParseCSV(content)
		if err != nil {
			return stats
		}
		t = parsed
	case FormatUSV:
		t = splitUSV(content)
	default:
		return stats
	}

	stats.Rows = len(t)
	stats.Columns = t.Columns()
	return stats
}
