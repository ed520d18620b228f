package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// MemoryMoodStore is an in-memory MoodStore used as a test double. It
// mirrors the MongoDB store's semantics, including the one-entry-per-day
// rule, but serializes everything behind a single mutex.
type MemoryMoodStore struct {
	mu    sync.Mutex
	moods map[string]models.Mood // keyed by hex id
}

func NewMemoryMoodStore() *MemoryMoodStore {
	return &MemoryMoodStore{moods: make(map[string]models.Mood)}
}

func (s *MemoryMoodStore) UpsertDay(ctx context.Context, userID string, day time.Time, fields MoodFields) (*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}

	for id, m := range s.moods {
		if m.UserID == userID && !m.Date.Before(day) && m.Date.Before(day.Add(24*time.Hour)) {
			m.Date = day
			m.MoodRating = fields.MoodRating
			m.Journal = fields.Journal
			m.Tags = tags
			m.UpdatedAt = now
			s.moods[id] = m
			return &m, nil
		}
	}

	mood := models.Mood{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Date:       day,
		MoodRating: fields.MoodRating,
		Journal:    fields.Journal,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.moods[mood.ID.Hex()] = mood
	return &mood, nil
}

func (s *MemoryMoodStore) FindAllByUser(ctx context.Context, userID string) ([]models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moods := []models.Mood{}
	for _, m := range s.moods {
		if m.UserID == userID {
			moods = append(moods, m)
		}
	}
	sort.Slice(moods, func(i, j int) bool { return moods[i].Date.After(moods[j].Date) })
	return moods, nil
}

func (s *MemoryMoodStore) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moods := []models.Mood{}
	for _, m := range s.moods {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			moods = append(moods, m)
		}
	}
	sort.Slice(moods, func(i, j int) bool { return moods[i].Date.Before(moods[j].Date) })
	return moods, nil
}

func (s *MemoryMoodStore) FindByID(ctx context.Context, id string) (*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mood, ok := s.moods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &mood, nil
}

func (s *MemoryMoodStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.moods[id]; !ok {
		return ErrNotFound
	}
	delete(s.moods, id)
	return nil
}
