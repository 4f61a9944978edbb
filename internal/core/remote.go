package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/usv"
)

// ErrOutputRequired is returned when a remote document has no local output path.
var ErrOutputRequired = errors.New("output path required for remote documents")

// IsURL reports whether location names a document by URL (file://, https://,
// mem:// and any other scheme registered with afs) rather than a local path.
func IsURL(location string) bool {
	u, err := url.Parse(location)
	return err == nil && len(u.Scheme) > 1 && strings.Contains(location, "://")
}

// urlDocument returns the file name and format of the document at rawURL.
func urlDocument(rawURL string) (string, usv.Format, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	format, ok := usv.FormatFromPath(name)
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", ErrUnsupportedFile, rawURL)
	}
	return name, format, nil
}

func (s *Service) download(ctx context.Context, rawURL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", rawURL, err)
	}
	return data, nil
}

// ConvertURL downloads the document at rawURL, converts it in the direction
// implied by its extension and writes the result to outPath.
func (s *Service) ConvertURL(ctx context.Context, rawURL, outPath string, force bool) (*FileResult, error) {
	name, source, err := urlDocument(rawURL)
	if err != nil {
		return nil, err
	}
	if outPath == "" {
		return nil, ErrOutputRequired
	}
	if err := checkOutput(outPath, force); err != nil {
		return nil, err
	}
	dir, err := DirectionFrom(source)
	if err != nil {
		return nil, err
	}

	data, err := s.download(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	res, err := s.Convert(ctx, ConvertRequest{
		Direction: dir,
		FileName:  name,
		Input:     bytes.NewReader(data),
	})
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, []byte(res.Output)); err != nil {
		return nil, err
	}
	return &FileResult{ConvertResult: res, OutputPath: outPath}, nil
}

// URLStats downloads the document at rawURL and returns its statistics.
func (s *Service) URLStats(ctx context.Context, rawURL string, format usv.Format) (usv.Stats, error) {
	data, err := s.download(ctx, rawURL)
	if err != nil {
		return usv.Stats{}, err
	}
	content, err := ReadInput(bytes.NewReader(data), s.maxInputSize)
	if err != nil {
		return usv.Stats{}, err
	}
	return s.Stats(content, format), nil
}
