// Package core provides the conversion service around the usv engine.
//
// # Error Codes Reference
//
// This file maps technical errors to user-friendly messages with codes for
// support reference. Codes are grouped by category:
//
// # Conversion Errors (CONV001-CONV099)
//
//	CONV001 - Empty input: The document is empty
//	          Action: Provide CSV or USV content to convert
//	          Patterns: "input is empty"
//
//	CONV002 - Unclosed quote: A quoted CSV field is never closed
//	          Action: Check the line reported in the error for a missing quote
//	          Patterns: "unclosed quote"
//
//	CONV003 - No data: The CSV contains no non-blank rows
//	          Action: Add at least one row with a value
//	          Patterns: "no valid data rows"
//
//	CONV004 - Not USV: The document has no ␟ or ␞ separators
//	          Action: Check that the file really is USV, or convert it as CSV
//	          Patterns: "no usv separators"
//
//	CONV005 - No records: The USV document holds only separators
//	          Action: Add at least one record
//	          Patterns: "no valid records"
//
//	CONV006 - Unknown format: The format or direction is not supported
//	          Action: Use csv or usv
//	          Patterns: "unknown format", "unknown direction"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: Input exceeds the configured size limit
//	FILE002 - Output exists: The converted file would overwrite another file
//	FILE003 - Unsupported file: The file is neither .csv nor .usv
//	FILE004 - No input: Nothing was uploaded
//	FILE005 - Output required: A URL source was given without an output path
//
// # Upload Errors (UPL001-UPL099)
//
//	UPL002 - System busy: Too many conversions in progress
//	UPL004 - Request cancelled
//	UPL005 - Request timeout
//
// # History Errors (HIST001-HIST099)
//
//	HIST001 - Not found: The conversion is not in the history
//
// # Database Errors (DB001-DB099)
//
//	DB004 - Connection refused
//	DB005 - Connection reset
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Too many requests
//
// # Default Error (ERR000)
//
// Fallback when no pattern matches. Check the application logs for the
// original technical error.
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Conversion Errors (CONV001-CONV006)
	// =========================================================================
	{
		pattern: "input is empty",
		msg: UserMessage{
			Message: "The document is empty",
			Action:  "Provide CSV or USV content to convert",
			Code:    "CONV001",
		},
	},
	{
		pattern: "unclosed quote",
		msg: UserMessage{
			Message: "A quoted CSV field is never closed",
			Action:  "Check the reported line for a missing closing quote",
			Code:    "CONV002",
		},
	},
	{
		pattern: "no valid data rows",
		msg: UserMessage{
			Message: "The CSV contains no data rows",
			Action:  "Add at least one row with a value",
			Code:    "CONV003",
		},
	},
	{
		pattern: "no usv separators",
		msg: UserMessage{
			Message: "The document is not USV",
			Action:  "USV files contain the visible separators ␟ and ␞; convert it as CSV instead",
			Code:    "CONV004",
		},
	},
	{
		pattern: "no valid records",
		msg: UserMessage{
			Message: "The USV document contains no records",
			Action:  "Add at least one record between the separators",
			Code:    "CONV005",
		},
	},
	{
		pattern: "unknown format",
		msg: UserMessage{
			Message: "Unsupported format",
			Action:  "Use csv or usv",
			Code:    "CONV006",
		},
	},
	{
		pattern: "unknown direction",
		msg: UserMessage{
			Message: "Unsupported conversion",
			Action:  "Use csv-to-usv or usv-to-csv",
			Code:    "CONV006",
		},
	},

	// =========================================================================
	// File Errors (FILE001-FILE004)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "output file already exists",
		msg: UserMessage{
			Message: "A file with the converted name already exists",
			Action:  "Choose another output path or convert in place",
			Code:    "FILE002",
		},
	},
	{
		pattern: "not a csv or usv file",
		msg: UserMessage{
			Message: "Unsupported file type",
			Action:  "Use a file ending in .csv or .usv",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no input provided",
		msg: UserMessage{
			Message: "No file or content was provided",
			Action:  "Select a CSV or USV file to convert",
			Code:    "FILE004",
		},
	},
	{
		pattern: "output path required",
		msg: UserMessage{
			Message: "A downloaded document needs a local output path",
			Action:  "Pass --output with the file to write",
			Code:    "FILE005",
		},
	},

	// =========================================================================
	// Upload Errors (UPL002-UPL005)
	// =========================================================================
	{
		pattern: "too many concurrent conversions",
		msg: UserMessage{
			Message: "Too many conversions in progress",
			Action:  "Please wait a moment and try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "UPL005",
		},
	},

	// =========================================================================
	// History Errors (HIST001)
	// =========================================================================
	{
		pattern: "history entry not found",
		msg: UserMessage{
			Message: "Conversion not found",
			Action:  "The entry may have been pruned; list the history again",
			Code:    "HIST001",
		},
	},

	// =========================================================================
	// Database Connection Errors (DB004-DB005)
	// =========================================================================
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first pattern match, or the ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a display string: "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a specific pattern rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
