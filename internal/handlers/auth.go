package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/moodmate/moodmate-backend/internal/middleware"
	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/pkg/utils"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// Signup creates a user account and signs it in.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Username) > 20 {
		writeMessage(w, http.StatusBadRequest, false, "Username must be 3-20 characters")
		return
	}
	if len(req.Password) < 8 {
		writeMessage(w, http.StatusBadRequest, false, "Password must be at least 8 characters")
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}

	userID, err := services.CreateUser(req.Username, passwordHash)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			writeMessage(w, http.StatusConflict, false, "Username already taken")
			return
		}
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created",
		Token:   token,
		UserID:  userID.String(),
	})
}

// Signin validates credentials and issues a session token.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	user, err := services.GetUserByUsername(req.Username)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
		return
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
		return
	}

	token, err := services.CreateSession(user.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		UserID:  user.ID.String(),
	})
}

// Me returns the authenticated caller's id and username.
func Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	username, err := services.GetUsernameByID(userID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"user_id":  userID,
		"username": username,
	})
}
