package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/moodmate/moodmate-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, map[string]interface{}{"success": success, "message": message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Validation and ownership problems go back to the caller as 4xx;
// provider and store failures are logged and surfaced as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		writeMessage(w, http.StatusBadRequest, false, validationErr.Message)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, false, "Mood entry not found")
		return
	}
	if errors.Is(err, services.ErrNotAuthorized) {
		writeMessage(w, http.StatusUnauthorized, false, "User not authorized")
		return
	}

	var providerErr *services.ProviderError
	if errors.As(err, &providerErr) {
		log.Printf("provider error: %v", providerErr)
		writeMessage(w, http.StatusInternalServerError, false, "Failed to fetch "+providerErr.Provider)
		return
	}

	log.Printf("internal error: %v", err)
	writeMessage(w, http.StatusInternalServerError, false, "Server error")
}
