package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/store"
)

const (
	MinMoodRating    = 1
	MaxMoodRating    = 5
	MaxJournalLength = 500
)

// RecordMoodInput is the request body for recording today's mood.
// MoodRating is a pointer so a missing field is distinguishable from 0.
type RecordMoodInput struct {
	MoodRating *int     `json:"moodRating"`
	Journal    string   `json:"journal"`
	Tags       []string `json:"tags"`
}

// MoodService owns the mood entry lifecycle: input validation, day
// bucketing and ownership checks. Day buckets are computed from the
// wall clock in UTC; clients never supply the write date.
type MoodService struct {
	store store.MoodStore
	now   func() time.Time
}

func NewMoodService(s store.MoodStore) *MoodService {
	return &MoodService{store: s, now: time.Now}
}

// RecordToday validates the input and upserts the entry for the caller's
// current UTC day. Posting twice on the same day replaces the entry's
// rating, journal and tags; the caller cannot tell a create from an
// update.
func (s *MoodService) RecordToday(ctx context.Context, userID string, in RecordMoodInput) (*models.Mood, error) {
	if in.MoodRating == nil || *in.MoodRating < MinMoodRating || *in.MoodRating > MaxMoodRating {
		return nil, newValidationError("moodRating", "Invalid moodRating. Must be a number between 1 and 5.")
	}
	if strings.TrimSpace(in.Journal) == "" || utf8.RuneCountInString(in.Journal) > MaxJournalLength {
		return nil, newValidationError("journal", "Journal is required and must be a non-empty string up to 500 characters.")
	}

	day := dayStartUTC(s.now())
	return s.store.UpsertDay(ctx, userID, day, store.MoodFields{
		MoodRating: *in.MoodRating,
		Journal:    in.Journal,
		Tags:       in.Tags,
	})
}

// ListAll returns all of the user's entries, newest first.
func (s *MoodService) ListAll(ctx context.Context, userID string) ([]models.Mood, error) {
	return s.store.FindAllByUser(ctx, userID)
}

// ListRange returns the user's entries with startDate <= date <= endDate,
// oldest first. Dates accept RFC 3339 or plain 2006-01-02.
func (s *MoodService) ListRange(ctx context.Context, userID, startDate, endDate string) ([]models.Mood, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, newValidationError("startDate", "Invalid startDate. Must be a valid date.")
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, newValidationError("endDate", "Invalid endDate. Must be a valid date.")
	}
	return s.store.FindByDateRange(ctx, userID, start, end)
}

// GetByID returns the entry with the given id. Existence is checked
// before ownership: probing a nonexistent id reports ErrNotFound, while
// probing someone else's real entry reports ErrNotAuthorized.
func (s *MoodService) GetByID(ctx context.Context, userID, id string) (*models.Mood, error) {
	mood, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if mood.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return mood, nil
}

// DeleteByID removes the entry after the same existence and ownership
// checks as GetByID.
func (s *MoodService) DeleteByID(ctx context.Context, userID, id string) error {
	mood, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if mood.UserID != userID {
		return ErrNotAuthorized
	}
	return s.store.DeleteByID(ctx, id)
}

// dayStartUTC truncates t to UTC midnight, the start of its day bucket.
func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
