// Package store is the persistence boundary for mood entries. It owns
// the one-entry-per-user-per-day invariant: the moods collection carries
// a unique compound index on (user_id, date) so concurrent writers
// cannot race a duplicate past the application layer.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodmate/moodmate-backend/internal/models"
)

var (
	// ErrNotFound is returned by id lookups when no entry exists.
	ErrNotFound = errors.New("mood entry not found")
	// ErrConflict is returned when the (user, date) unique index rejects
	// a write. UpsertDay resolves this internally; callers should only
	// ever see it from code paths that bypass the upsert.
	ErrConflict = errors.New("mood entry already exists for this day")
)

// MoodFields are the caller-writable fields of an entry. An upsert
// replaces all of them, whether it creates or updates.
type MoodFields struct {
	MoodRating int
	Journal    string
	Tags       []string
}

// MoodStore abstracts mood entry persistence so the service layer can be
// tested against an in-memory double.
type MoodStore interface {
	// UpsertDay atomically creates or fully replaces the entry whose date
	// falls inside [day, day+24h) for the given user. day must be a UTC
	// midnight. Returns the entry as persisted.
	UpsertDay(ctx context.Context, userID string, day time.Time, fields MoodFields) (*models.Mood, error)
	// FindAllByUser returns the user's entries, newest first.
	FindAllByUser(ctx context.Context, userID string) ([]models.Mood, error)
	// FindByDateRange returns the user's entries with start <= date <= end,
	// oldest first.
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Mood, error)
	FindByID(ctx context.Context, id string) (*models.Mood, error)
	DeleteByID(ctx context.Context, id string) error
}

const moodsCollection = "moods"

// MongoMoodStore is the MongoDB-backed MoodStore.
type MongoMoodStore struct {
	coll *mongo.Collection
}

func NewMongoMoodStore(db *mongo.Database) *MongoMoodStore {
	return &MongoMoodStore{coll: db.Collection(moodsCollection)}
}

// EnsureIndexes creates the unique (user_id, date) compound index. Must
// run before the store serves writes.
func (s *MongoMoodStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoMoodStore) UpsertDay(ctx context.Context, userID string, day time.Time, fields MoodFields) (*models.Mood, error) {
	mood, err := s.upsertDay(ctx, userID, day, fields)
	if errors.Is(err, ErrConflict) {
		// Lost a create race: the other writer's document now exists, so
		// the retry matches it and becomes an update.
		mood, err = s.upsertDay(ctx, userID, day, fields)
	}
	return mood, err
}

func (s *MongoMoodStore) upsertDay(ctx context.Context, userID string, day time.Time, fields MoodFields) (*models.Mood, error) {
	now := time.Now().UTC()
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}

	filter := bson.M{
		"user_id": userID,
		"date": bson.M{
			"$gte": day,
			"$lt":  day.Add(24 * time.Hour),
		},
	}
	update := bson.M{
		"$set": bson.M{
			"date":        day,
			"mood_rating": fields.MoodRating,
			"journal":     fields.Journal,
			"tags":        tags,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var mood models.Mood
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mood)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &mood, nil
}

func (s *MongoMoodStore) FindAllByUser(ctx context.Context, userID string) ([]models.Mood, error) {
	findOptions := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	moods := []models.Mood{}
	if err = cursor.All(ctx, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}

func (s *MongoMoodStore) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Mood, error) {
	filter := bson.M{
		"user_id": userID,
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	findOptions := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := s.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	moods := []models.Mood{}
	if err = cursor.All(ctx, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}

func (s *MongoMoodStore) FindByID(ctx context.Context, id string) (*models.Mood, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var mood models.Mood
	err = s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&mood)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mood, nil
}

func (s *MongoMoodStore) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
