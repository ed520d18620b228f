package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/moodmate/moodmate-backend/internal/database"
	"github.com/moodmate/moodmate-backend/internal/models"
)

// ErrUsernameTaken is returned by CreateUser on a duplicate username.
var ErrUsernameTaken = errors.New("username already taken")

// CreateUser inserts a new account and returns its id.
func CreateUser(username, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.PostgresDB.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, ErrUsernameTaken
		}
		return uuid.Nil, err
	}

	return id, nil
}

// GetUserByUsername retrieves an active account by username (case-insensitive).
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, password_hash, created_at, is_active
		FROM users WHERE LOWER(username) = $1 AND is_active = TRUE
	`, strings.ToLower(strings.TrimSpace(username))).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.IsActive,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetUsernameByID retrieves a username by user ID. Returns "" when the
// user does not exist or is inactive.
func GetUsernameByID(userID string) (string, error) {
	parsedID, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}

	var username string
	err = database.PostgresDB.QueryRow(`
		SELECT username FROM users WHERE id = $1 AND is_active = TRUE
	`, parsedID).Scan(&username)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return username, nil
}
