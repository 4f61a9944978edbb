package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

func TestMapError(t *testing.T) {
	_, unclosed := usv.CSVToUSV(`a,"open`)
	_, notUSV := usv.USVToCSV("plain text")
	_, noRecords := usv.USVToCSV("␞␞")
	_, noData := usv.CSVToUSV(" , \n")
	_, empty := usv.CSVToUSV("  ")

	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:     "nil error returns empty",
			err:      nil,
			wantCode: "",
		},
		{
			name:        "empty input",
			err:         empty,
			wantCode:    "CONV001",
			wantMessage: "The document is empty",
		},
		{
			name:        "unclosed quote",
			err:         unclosed,
			wantCode:    "CONV002",
			wantMessage: "A quoted CSV field is never closed",
		},
		{
			name:        "no csv data",
			err:         noData,
			wantCode:    "CONV003",
			wantMessage: "The CSV contains no data rows",
		},
		{
			name:        "not usv",
			err:         notUSV,
			wantCode:    "CONV004",
			wantMessage: "The document is not USV",
		},
		{
			name:        "no usv records",
			err:         noRecords,
			wantCode:    "CONV005",
			wantMessage: "The USV document contains no records",
		},
		{
			name:        "input too large",
			err:         fmt.Errorf("%w: exceeds 10 bytes", ErrInputTooLarge),
			wantCode:    "FILE001",
			wantMessage: "File exceeds the maximum size limit",
		},
		{
			name:        "output exists",
			err:         fmt.Errorf("%w: people.usv", ErrOutputExists),
			wantCode:    "FILE002",
			wantMessage: "A file with the converted name already exists",
		},
		{
			name:        "unsupported file",
			err:         fmt.Errorf("%w: notes.txt", ErrUnsupportedFile),
			wantCode:    "FILE003",
			wantMessage: "Unsupported file type",
		},
		{
			name:        "remote without output",
			err:         ErrOutputRequired,
			wantCode:    "FILE005",
			wantMessage: "A downloaded document needs a local output path",
		},
		{
			name:        "limiter busy",
			err:         ErrTooManyConversions,
			wantCode:    "UPL002",
			wantMessage: "Too many conversions in progress",
		},
		{
			name:        "context canceled",
			err:         context.Canceled,
			wantCode:    "UPL004",
			wantMessage: "Request was cancelled",
		},
		{
			name:        "history miss",
			err:         ErrHistoryNotFound,
			wantCode:    "HIST001",
			wantMessage: "Conversion not found",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("RATE LIMIT exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(ErrTooManyConversions)

	expected := "Too many conversions in progress (Code: UPL002). Please wait a moment and try again"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error is not user facing", err: nil, want: false},
		{name: "engine error is user facing", err: usv.ErrNotUSV, want: true},
		{name: "unknown error is not user facing", err: errors.New("random internal error xyz"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
