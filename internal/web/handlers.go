package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"conversions": s.service.LimiterStatus(),
	})
}

// handleConvert runs the conversion named by the {direction} URL parameter.
// With ?download=true the converted document is returned as an attachment,
// otherwise as a JSON ConvertResult.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	dir, err := core.ParseDirection(chi.URLParam(r, "direction"))
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	doc, err := readDocument(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx := withRequestMetadata(r.Context(), r)
	res, err := s.service.Convert(ctx, core.ConvertRequest{
		Direction: dir,
		FileName:  doc.Name,
		Input:     doc.Body,
	})
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		writeDownload(w, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleStats reports statistics. Malformed content is not an error; it
// yields zero rows and columns.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	format, err := documentFormat(r, doc, 0)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	content, err := core.ReadInput(doc.Body, s.cfg.Convert.MaxInputSize)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Format string `json:"format"`
		usv.Stats
	}{
		Format: strings.ToLower(format.String()),
		Stats:  s.service.Stats(content, format),
	})
}

// handlePreview returns a document as a header row plus data rows.
// USV is assumed unless the format says otherwise.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	format, err := documentFormat(r, doc, usv.FormatUSV)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	content, err := core.ReadInput(doc.Body, s.cfg.Convert.MaxInputSize)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	preview, err := s.service.Preview(content, format)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", s.cfg.Convert.HistoryLimit)

	entries, err := s.service.History(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, core.ErrHistoryNotFound, http.StatusNotFound)
		return
	}

	entry, err := s.service.HistoryEntry(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleLimiterStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.LimiterStatus())
}
