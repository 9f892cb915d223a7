package server

import (
	"fmt"
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrDefaultSize = 256
	qrMinSize     = 64
	qrMaxSize     = 1024
)

// handlePersonQR serves a PNG QR code encoding the person's public page URL.
// The optional size query parameter is clamped to [64, 1024] pixels.
func (s *Server) handlePersonQR(w http.ResponseWriter, r *http.Request) {
	id, ok := personID(w, r)
	if !ok {
		return
	}

	_, found, err := s.store.GetPerson(id)
	if err != nil {
		s.logger.Error("failed to fetch person for QR code", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	if !found {
		respondMessage(w, http.StatusNotFound, "Person not found")
		return
	}

	size := qrDefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}
	if size < qrMinSize {
		size = qrMinSize
	}
	if size > qrMaxSize {
		size = qrMaxSize
	}

	pageURL := fmt.Sprintf("%s/person/%d", s.baseURL, id)
	png, err := qrcode.Encode(pageURL, qrcode.Medium, size)
	if err != nil {
		s.logger.Error("failed to encode QR code", "id", id, "url", pageURL, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
