package usv

import (
	"strings"
	"unicode"
)

// Row is one record of a table.
type Row []string

// Table is an ordered list of rows. Rows may differ in length.
type Table []Row

// Columns returns the field count of the first row, or zero for an empty table.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// ParseCSV tokenizes CSV text into a table.
//
// Every field is trimmed of surrounding whitespace, quoted fields included,
// and rows consisting only of empty fields are dropped. Line feeds and
// carriage returns both end a record; CRLF counts once. A quote left open at
// the end of input yields an *UnterminatedQuoteError whose line counts only
// line feeds seen outside quotes.
func ParseCSV(text string) (Table, error) {
	if isBlank(text) {
		return nil, emptyInput(FormatCSV)
	}

	var (
		table    Table
		row      Row
		field    strings.Builder
		inQuotes bool
		line     = 1
	)

	endField := func() {
		row = append(row, trimField(field.String()))
		field.Reset()
	}
	endRow := func() {
		if field.Len() == 0 && len(row) == 0 {
			return
		}
		endField()
		if !isBlankRow(row) {
			table = append(table, row)
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case inQuotes:
			field.WriteByte(c)
		case c == ',':
			endField()
		case c == '\n' || c == '\r':
			endRow()
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				c = '\n'
				i++
			}
			if c == '\n' {
				line++
			}
		default:
			field.WriteByte(c)
		}
	}

	if inQuotes {
		return nil, &UnterminatedQuoteError{Line: line}
	}
	endRow()

	return table, nil
}

// isBlankRow implements the dropBlankRows policy of the CSV parser: a row
// whose fields are all empty is not part of the table.
func isBlankRow(row Row) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

// EncodeCSV emits a table as CSV. Fields containing a comma, a double quote
// or a line feed are quoted with inner quotes doubled. Records are joined by
// a single line feed with no trailing terminator.
func EncodeCSV(t Table) string {
	var b strings.Builder
	for i, row := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, f := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			writeCSVField(&b, f)
		}
	}
	return b.String()
}

func writeCSVField(b *strings.Builder, f string) {
	if !fieldNeedsQuote(f) {
		b.WriteString(f)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(f, `"`, `""`))
	b.WriteByte('"')
}

// fieldNeedsQuote ignores '\r'; such fields are emitted bare.
func fieldNeedsQuote(f string) bool {
	return strings.ContainsAny(f, ",\"\n")
}

func isBlank(s string) bool {
	return trimField(s) == ""
}

// trimField strips white space and the zero width no-break space U+FEFF.
func trimField(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
