package usv

import (
	"strings"
	"testing"
)

func benchmarkCSV() string {
	return strings.Repeat(`xxxxxxxxxxxxxxxx,"yyyy, yyyy",zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz,"w ""quoted"" w",vvvvvvvvvvvvvvvv
aaaaaaaaaaaaaaaaaaaaaaaa,bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb,"multi
line",dddddddddddddddd,eeee
`, 64)
}

func BenchmarkCSVToUSV(b *testing.B) {
	data := benchmarkCSV()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := CSVToUSV(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUSVToCSV(b *testing.B) {
	data, err := CSVToUSV(benchmarkCSV())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := USVToCSV(data); err != nil {
			b.Fatal(err)
		}
	}
}
