package usv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input is empty or only whitespace.
	ErrEmptyInput = errors.New("input is empty")
	// ErrNoData is returned when CSV parsing succeeds but yields no rows.
	ErrNoData = errors.New("no valid data rows found in CSV")
	// ErrNotUSV is returned when the input contains neither separator.
	ErrNotUSV = errors.New("no USV separators found, input should contain " + string(UnitSep) + " or " + string(RecordSep))
	// ErrNoRecords is returned when USV input holds separators but no records.
	ErrNoRecords = errors.New("no valid records found in USV")
)

// UnterminatedQuoteError reports a quoted CSV field that is never closed.
type UnterminatedQuoteError struct {
	// Line is the 1-based line at which the input ended.
	Line int
}

func (e *UnterminatedQuoteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unclosed quote at line %d, check your CSV formatting", e.Line)
}

// ConversionError qualifies a parsing failure with the stage that raised it.
type ConversionError struct {
	Stage Format
	Err   error
}

// Error formats the error as "<STAGE> parsing failed: <cause>".
func (e *ConversionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s parsing failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func emptyInput(f Format) error {
	return fmt.Errorf("%w, please provide %s content", ErrEmptyInput, f)
}
