// Package server handles HTTP requests and middleware.
package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/DominikBaer/kroki/assets"
	"github.com/DominikBaer/kroki/internal/gpx"
	"github.com/DominikBaer/kroki/internal/report"

	"github.com/rs/zerolog/log"
)

// HandleIndex serves the upload form.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(assets.Index)
}

// HandleConvert accepts a single GPX file upload and returns the Kroki
// report as plain text.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(s.MaxUpload); err != nil {
		http.Error(w, "bad upload form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("gpx")
	if err != nil {
		http.Error(w, "missing gpx file field", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.MaxUpload))
	if err != nil {
		http.Error(w, "could not read upload", http.StatusBadRequest)
		return
	}

	points, err := gpx.Extract(data)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, gpx.ErrNoPoints) {
			status = http.StatusUnprocessableEntity
		}

		log.Warn().Err(err).Str("file", header.Filename).Msg("Rejected upload")
		http.Error(w, err.Error(), status)
		return
	}

	p, err := s.Builder.Build(r.Context(), points)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("Conversion failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.Info().
		Str("file", header.Filename).
		Int("points", len(p.Points)).
		Msg("Converted upload")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, report.Format(p))
}
