package core

// input.go reads conversion input into memory.
//
// The engine works on whole documents, so input is read in full but capped at
// the configured size. Two artifacts common in files saved by Windows tools
// are cleaned up on the way in:
//
//   - a leading UTF-8 BOM (0xEF 0xBB 0xBF) is removed
//   - invalid UTF-8 sequences are replaced with U+FFFD

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultMaxInputSize is used when the configured limit is not positive.
const DefaultMaxInputSize = 50 << 20

var (
	// ErrInputTooLarge is returned when input exceeds the size limit.
	ErrInputTooLarge = errors.New("file too large")
	// ErrNoInput is returned when a request carries no reader.
	ErrNoInput = errors.New("no input provided")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadInput reads r in full, failing with ErrInputTooLarge past limit bytes.
func ReadInput(r io.Reader, limit int64) (string, error) {
	if r == nil {
		return "", ErrNoInput
	}
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: exceeds %d bytes", ErrInputTooLarge, limit)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	}
	return string(data), nil
}
