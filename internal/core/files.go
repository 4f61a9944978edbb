package core

// files.go applies conversions to files on disk for the CLI and the
// terminal browser.
//
// A converted document is either written next to the source under the
// converted name, or written over the source in place. SaveAs copies a
// document unchanged under the other extension.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

var (
	// ErrOutputExists is returned instead of overwriting an unrelated file.
	ErrOutputExists = errors.New("output file already exists")
	// ErrUnsupportedFile is returned for paths without a .csv or .usv extension.
	ErrUnsupportedFile = errors.New("not a csv or usv file")
)

// WriteMode selects where a converted document goes.
type WriteMode int

const (
	// WriteNew writes name.usv / name.csv next to the source.
	WriteNew WriteMode = iota
	// WriteReplace overwrites the source file with the converted content.
	WriteReplace
)

// FileRequest describes a conversion of a file on disk.
type FileRequest struct {
	Path   string
	Mode   WriteMode
	Output string // Optional explicit output path for WriteNew
	Force  bool   // Overwrite an existing output file
}

// FileResult is the outcome of ConvertFile.
type FileResult struct {
	*ConvertResult
	OutputPath string
}

// ConvertFile converts the file at req.Path in the direction implied by its
// extension and writes the result according to req.Mode.
func (s *Service) ConvertFile(ctx context.Context, req FileRequest) (*FileResult, error) {
	source, ok := usv.FormatFromPath(req.Path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, req.Path)
	}
	dir, err := DirectionFrom(source)
	if err != nil {
		return nil, err
	}

	outPath := req.Path
	if req.Mode == WriteNew {
		outPath = req.Output
		if outPath == "" {
			outPath = filepath.Join(filepath.Dir(req.Path), OutputFileName(req.Path, dir.Target()))
		}
		if err := checkOutput(outPath, req.Force); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(req.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := s.Convert(ctx, ConvertRequest{
		Direction: dir,
		FileName:  filepath.Base(req.Path),
		Input:     f,
	})
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, []byte(res.Output)); err != nil {
		return nil, err
	}
	return &FileResult{ConvertResult: res, OutputPath: outPath}, nil
}

// SaveAs copies the file at path unchanged to the name with the other
// format's extension and returns the new path.
func SaveAs(path string, force bool) (string, error) {
	source, ok := usv.FormatFromPath(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	outPath := filepath.Join(filepath.Dir(path), OutputFileName(path, source.Other()))
	if err := checkOutput(outPath, force); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return "", err
	}
	return outPath, nil
}

// checkOutput refuses an existing path unless force is set.
func checkOutput(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return nil
}

// writeFileAtomic writes through a temporary file in the same directory so a
// failed write never leaves a truncated target.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// DocumentFile is a CSV or USV file found by ScanDir.
type DocumentFile struct {
	Path   string
	Name   string
	Format usv.Format
	Size   int64
}

// ScanDir lists the .csv and .usv files directly inside dir, sorted by name.
func ScanDir(dir string) ([]DocumentFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []DocumentFile
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		format, ok := usv.FormatFromPath(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, DocumentFile{
			Path:   filepath.Join(dir, e.Name()),
			Name:   e.Name(),
			Format: format,
			Size:   info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// FileStats reads the file at path and returns its statistics as format.
func (s *Service) FileStats(path string, format usv.Format) (usv.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return usv.Stats{}, err
	}
	defer f.Close()

	content, err := ReadInput(f, s.maxInputSize)
	if err != nil {
		return usv.Stats{}, err
	}
	return s.Stats(content, format), nil
}
