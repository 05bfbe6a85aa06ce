package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is a set membership keyed by (post_id, user_id); a user either has
// or has not liked a post, never counted twice.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
}
