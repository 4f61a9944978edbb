package core

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

// MaxPreviewRows caps the data rows returned by Preview.
const MaxPreviewRows = 200

// Preview parses content as format and returns its first row as the header
// followed by at most MaxPreviewRows data rows.
func (s *Service) Preview(content string, format usv.Format) (*Preview, error) {
	var (
		table usv.Table
		err   error
	)
	switch format {
	case usv.FormatCSV:
		table, err = usv.ParseCSV(content)
		if err == nil && len(table) == 0 {
			err = usv.ErrNoData
		}
	case usv.FormatUSV:
		table, err = usv.DecodeUSV(content)
	default:
		return nil, fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		if errors.Is(err, usv.ErrEmptyInput) {
			return nil, err
		}
		return nil, &usv.ConversionError{Stage: format, Err: err}
	}

	p := &Preview{
		Format: format,
		Header: table[0],
		Rows:   make([]usv.Row, 0),
		Stats: usv.Stats{
			Rows:       len(table),
			Columns:    table.Columns(),
			Characters: utf8.RuneCountInString(content),
		},
	}
	data := table[1:]
	if len(data) > MaxPreviewRows {
		data = data[:MaxPreviewRows]
	}
	p.Rows = append(p.Rows, data...)
	return p, nil
}
