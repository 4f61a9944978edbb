package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestConvertFile_New(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "people.csv", "name,age\nBob,25\n")
	svc := newTestService(nil)

	res, err := svc.ConvertFile(context.Background(), FileRequest{Path: src})
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if want := filepath.Join(dir, "people.usv"); res.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, want)
	}
	if got := readFile(t, res.OutputPath); got != "name␟age␞Bob␟25" {
		t.Errorf("output = %q", got)
	}
	if got := readFile(t, src); got != "name,age\nBob,25\n" {
		t.Errorf("source modified: %q", got)
	}

	if _, err := svc.ConvertFile(context.Background(), FileRequest{Path: src}); !errors.Is(err, ErrOutputExists) {
		t.Errorf("second convert: err = %v, want ErrOutputExists", err)
	}
	if _, err := svc.ConvertFile(context.Background(), FileRequest{Path: src, Force: true}); err != nil {
		t.Errorf("forced convert: %v", err)
	}
}

func TestConvertFile_Replace(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "data.usv", "a␟b, c␞d␟e")
	svc := newTestService(nil)

	res, err := svc.ConvertFile(context.Background(), FileRequest{Path: src, Mode: WriteReplace})
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if res.OutputPath != src {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, src)
	}
	if got := readFile(t, src); got != "a,\"b, c\"\nd,e" {
		t.Errorf("replaced content = %q", got)
	}
}

func TestConvertFile_ExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "in.csv", "x,y")
	out := filepath.Join(dir, "elsewhere.usv")

	res, err := newTestService(nil).ConvertFile(context.Background(), FileRequest{Path: src, Output: out})
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if res.OutputPath != out || readFile(t, out) != "x␟y" {
		t.Errorf("result = %+v", res)
	}
}

func TestConvertFile_Errors(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(nil)

	txt := writeTemp(t, dir, "notes.txt", "a,b")
	if _, err := svc.ConvertFile(context.Background(), FileRequest{Path: txt}); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("txt: err = %v", err)
	}

	bad := writeTemp(t, dir, "bad.csv", "\"open")
	_, err := svc.ConvertFile(context.Background(), FileRequest{Path: bad})
	var qerr *usv.UnterminatedQuoteError
	if !errors.As(err, &qerr) {
		t.Errorf("bad csv: err = %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "bad.usv")); !os.IsNotExist(statErr) {
		t.Errorf("failed conversion left an output file")
	}
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "report.csv", "a,b")

	out, err := SaveAs(src, false)
	if err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if out != filepath.Join(dir, "report.usv") {
		t.Errorf("out = %q", out)
	}
	if got := readFile(t, out); got != "a,b" {
		t.Errorf("SaveAs must copy content unchanged, got %q", got)
	}
	if _, err := SaveAs(src, false); !errors.Is(err, ErrOutputExists) {
		t.Errorf("second SaveAs: err = %v", err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "b.usv", "x")
	writeTemp(t, dir, "a.CSV", "y")
	writeTemp(t, dir, "readme.md", "z")
	writeTemp(t, dir, ".hidden.csv", "h")
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}
	if files[0].Name != "a.CSV" || files[0].Format != usv.FormatCSV {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1].Name != "b.usv" || files[1].Format != usv.FormatUSV {
		t.Errorf("files[1] = %+v", files[1])
	}
}

func TestFileStats(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "s.csv", "a,b,c\n1,2,3\n4,5,6")

	stats, err := newTestService(nil).FileStats(path, usv.FormatCSV)
	if err != nil {
		t.Fatalf("FileStats: %v", err)
	}
	if stats.Rows != 3 || stats.Columns != 3 {
		t.Errorf("stats = %+v", stats)
	}
}
