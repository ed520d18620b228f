package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood is a single day's journal entry for a user. The date field is
// always normalized to UTC midnight and a unique compound index on
// (user_id, date) guarantees at most one entry per user per day.
type Mood struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Date       time.Time          `bson:"date" json:"date"`
	MoodRating int                `bson:"mood_rating" json:"moodRating"`
	Journal    string             `bson:"journal" json:"journal"`
	Tags       []string           `bson:"tags" json:"tags"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
