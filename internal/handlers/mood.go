package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/middleware"
	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/services"
)

// MoodResponse wraps a single mood entry.
type MoodResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Mood    *models.Mood `json:"mood,omitempty"`
}

// MoodListResponse wraps a sequence of mood entries.
type MoodListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Moods   []models.Mood `json:"moods"`
}

// MoodHandler exposes the mood entry lifecycle over HTTP. Identity comes
// from the auth middleware; the handler never trusts a body user id.
type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

// Record handles POST /moods: create or update today's entry.
func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var in services.RecordMoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, false, decodeErrorMessage(err))
		return
	}

	mood, err := h.svc.RecordToday(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MoodResponse{Success: true, Mood: mood})
}

// List handles GET /moods: all of the caller's entries, newest first.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	moods, err := h.svc.ListAll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MoodListResponse{Success: true, Moods: moods})
}

// ListRange handles GET /moods/range?startDate=&endDate=: entries in the
// inclusive window, oldest first.
func (h *MoodHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	moods, err := h.svc.ListRange(r.Context(), userID, startDate, endDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MoodListResponse{Success: true, Moods: moods})
}

// Get handles GET /moods/{id}.
func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	mood, err := h.svc.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MoodResponse{Success: true, Mood: mood})
}

// Delete handles DELETE /moods/{id}.
func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	if err := h.svc.DeleteByID(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Mood entry removed")
}

// decodeErrorMessage turns a JSON decode failure into a client-facing
// validation message, naming the field on a type mismatch (e.g. a
// string where moodRating's number belongs).
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "moodRating":
			return "Invalid moodRating. Must be a number between 1 and 5."
		case "journal":
			return "Journal is required and must be a non-empty string up to 500 characters."
		case "tags":
			return "Tags must be an array of strings."
		}
	}
	return "Invalid request body"
}
