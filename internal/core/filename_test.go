package core

import (
	"testing"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target usv.Format
		want   string
	}{
		{"csvToUsv", "people.csv", usv.FormatUSV, "people.usv"},
		{"usvToCsv", "people.usv", usv.FormatCSV, "people.csv"},
		{"lastExtensionOnly", "backup.2024.csv", usv.FormatUSV, "backup.2024.usv"},
		{"noExtension", "export", usv.FormatUSV, "export.usv"},
		{"dotFile", ".hidden", usv.FormatCSV, ".hidden.csv"},
		{"directoryStripped", "/tmp/in/data.csv", usv.FormatUSV, "data.usv"},
		{"emptyName", "", usv.FormatUSV, "untitled.usv"},
		{"whitespaceName", "   ", usv.FormatCSV, "untitled.csv"},
		{"upperCaseExtension", "DATA.CSV", usv.FormatUSV, "DATA.usv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputFileName(tt.input, tt.target); got != tt.want {
				t.Errorf("OutputFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
