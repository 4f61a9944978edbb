package web

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
)

// document is an uploaded CSV or USV body.
type document struct {
	Name string
	Body io.Reader
}

// readDocument returns the request's document. Multipart requests carry it in
// the "file" part; any other request carries it as the raw body, with an
// optional ?name= for the file name.
func readDocument(r *http.Request) (*document, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return &document{Name: r.URL.Query().Get("name"), Body: r.Body}, nil
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, core.ErrNoInput
		}
		if err != nil {
			return nil, fmt.Errorf("invalid multipart form: %w", err)
		}
		if part.FormName() == "file" {
			return &document{Name: part.FileName(), Body: part}, nil
		}
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// writeDownload sends the converted document as an attachment.
func writeDownload(w http.ResponseWriter, res *core.ConvertResult) {
	contentType := "text/csv; charset=utf-8"
	if res.Direction.Target() == usv.FormatUSV {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": res.OutputName,
	}))
	w.Header().Set("X-Conversion-ID", res.ID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.Output)
}

// documentFormat resolves ?format=, falling back to the document name's
// extension.
func documentFormat(r *http.Request, doc *document, fallback usv.Format) (usv.Format, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		return usv.ParseFormat(f)
	}
	if f, ok := usv.FormatFromPath(doc.Name); ok {
		return f, nil
	}
	if fallback.Valid() {
		return fallback, nil
	}
	return 0, fmt.Errorf("unknown format: pass ?format=csv|usv or a .csv/.usv name")
}
