package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an append-only text reply on a post; no edit exists, only
// deletion by id.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	Texto     string             `bson:"texto"`
	CreatedAt time.Time          `bson:"created_at"`
}
