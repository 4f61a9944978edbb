package usv

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// UnitSep separates fields within a record.
	UnitSep = '␟'
	// RecordSep separates records.
	RecordSep = '␞'

	unitSep   = string(UnitSep)
	recordSep = string(RecordSep)
)

// Format identifies one of the two supported document formats.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatUSV
)

// String returns "CSV" or "USV".
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatUSV:
		return "USV"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatUSV:
		return ".usv"
	default:
		return ""
	}
}

// Other returns the format on the opposite side of a conversion.
func (f Format) Other() Format {
	switch f {
	case FormatCSV:
		return FormatUSV
	case FormatUSV:
		return FormatCSV
	default:
		return f
	}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatUSV
}

// ParseFormat parses "csv" or "usv" case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "usv":
		return FormatUSV, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want csv or usv)", s)
	}
}

// FormatFromPath infers the format from a file name's extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".usv":
		return FormatUSV, true
	default:
		return 0, false
	}
}
