package usv

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"a,b\n1,2",
		`"a,b",c`,
		`a,"he said ""hi"""`,
		"a,\"b\nc\",d\n",
		`a,"unterminated`,
		"one\r\ntwo\r\n",
		" , \n,,\nx",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 || !utf8.ValidString(input) {
			t.Skip()
		}

		stats := Statistics(input, FormatCSV)
		if stats.Characters != utf8.RuneCountInString(input) {
			t.Fatalf("Statistics().Characters = %d, want %d", stats.Characters, utf8.RuneCountInString(input))
		}
		_ = Statistics(input, FormatUSV)

		table, err := ParseCSV(input)
		if err != nil || len(table) == 0 {
			return
		}
		for _, row := range table {
			if isBlankRow(row) {
				t.Fatalf("ParseCSV() kept blank row %q for input %q", row, input)
			}
		}

		// Separators inside fields and bare carriage returns are outside the
		// lossless contract, as is a lone field with nothing to separate.
		if strings.ContainsAny(input, unitSep+recordSep+"\r") {
			return
		}
		if len(table) == 1 && len(table[0]) == 1 {
			return
		}

		csv, err := USVToCSV(EncodeUSV(table))
		if err != nil {
			t.Fatalf("USVToCSV() error = %v for input %q", err, input)
		}
		back, err := ParseCSV(csv)
		if err != nil {
			t.Fatalf("ParseCSV(re-emitted) error = %v for input %q", err, input)
		}
		if diff := cmp.Diff(table, back); diff != "" {
			t.Fatalf("round trip mismatch for input %q (-want +got):\n%s", input, diff)
		}
	})
}
