package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/services"
)

// ContentHandler serves mood-matched quotes and GIFs. Provider payloads
// are passed through to the client byte-for-byte.
type ContentHandler struct {
	rec *services.Recommender
}

func NewContentHandler(rec *services.Recommender) *ContentHandler {
	return &ContentHandler{rec: rec}
}

// Quote handles GET /moods/quote/{moodRating}.
func (h *ContentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	moodRating, err := strconv.Atoi(chi.URLParam(r, "moodRating"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid moodRating. Must be a number.")
		return
	}

	payload, err := h.rec.QuoteFor(r.Context(), moodRating)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeRawJSON(w, payload)
}

// Gif handles GET /moods/gif/{moodRating}.
func (h *ContentHandler) Gif(w http.ResponseWriter, r *http.Request) {
	moodRating, err := strconv.Atoi(chi.URLParam(r, "moodRating"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid moodRating. Must be a number.")
		return
	}

	payload, err := h.rec.GifFor(r.Context(), moodRating)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeRawJSON(w, payload)
}

func writeRawJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
