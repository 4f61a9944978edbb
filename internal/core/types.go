package core

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/JonMunkholm/uniseparate/internal/usv"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Direction names a conversion.
type Direction string

const (
	DirCSVToUSV Direction = "csv-to-usv"
	DirUSVToCSV Direction = "usv-to-csv"
)

// ParseDirection accepts "csv-to-usv" or "usv-to-csv".
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

// DirectionFrom returns the conversion that reads the given format.
func DirectionFrom(source usv.Format) (Direction, error) {
	switch source {
	case usv.FormatCSV:
		return DirCSVToUSV, nil
	case usv.FormatUSV:
		return DirUSVToCSV, nil
	default:
		return "", fmt.Errorf("unknown format %v", source)
	}
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirCSVToUSV || d == DirUSVToCSV
}

// Source is the format read by the conversion.
func (d Direction) Source() usv.Format {
	if d == DirUSVToCSV {
		return usv.FormatUSV
	}
	return usv.FormatCSV
}

// Target is the format written by the conversion.
func (d Direction) Target() usv.Format {
	return d.Source().Other()
}

func (d Direction) convert(content string) (string, error) {
	switch d {
	case DirCSVToUSV:
		return usv.CSVToUSV(content)
	case DirUSVToCSV:
		return usv.USVToCSV(content)
	default:
		return "", fmt.Errorf("unknown direction %q", string(d))
	}
}

// ConvertRequest describes one conversion.
type ConvertRequest struct {
	Direction Direction
	FileName  string    // Optional; used for the output name and history
	Input     io.Reader // Document content
}

// ConvertResult is the outcome of a successful conversion.
type ConvertResult struct {
	ID         uuid.UUID     `json:"id"`
	Direction  Direction     `json:"direction"`
	FileName   string        `json:"file_name,omitempty"`
	OutputName string        `json:"output_name"`
	Output     string        `json:"output"`
	Before     usv.Stats     `json:"before"`
	After      usv.Stats     `json:"after"`
	Duration   time.Duration `json:"-"`
}

// ConversionStatus is the recorded outcome of a conversion.
type ConversionStatus string

const (
	StatusSucceeded ConversionStatus = "succeeded"
	StatusFailed    ConversionStatus = "failed"
)

// HistoryEntry is one row of the conversion history.
type HistoryEntry struct {
	ID           uuid.UUID        `json:"id"`
	Direction    Direction        `json:"direction"`
	FileName     string           `json:"file_name,omitempty"`
	OutputName   string           `json:"output_name,omitempty"`
	Rows         int              `json:"rows"`
	Columns      int              `json:"columns"`
	InputChars   int              `json:"input_chars"`
	OutputChars  int              `json:"output_chars"`
	Status       ConversionStatus `json:"status"`
	ErrorCode    string           `json:"error_code,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	IPAddress    string           `json:"ip_address,omitempty"`
	UserAgent    string           `json:"user_agent,omitempty"`
	DurationMs   int64            `json:"duration_ms"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Preview is a tabular view of a document.
type Preview struct {
	Format usv.Format `json:"-"`
	Header usv.Row    `json:"columns"`
	Rows   []usv.Row  `json:"rows"`
	Stats  usv.Stats  `json:"stats"`
}
