package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a user-authored content item with an optional media attachment.
// MediaURL and StoragePath are either both set or both empty: the URL is
// the public link, the path is the internal locator used for deletion.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Texto       string             `bson:"texto"`
	MediaURL    string             `bson:"media_url,omitempty"`
	StoragePath string             `bson:"storage_path,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}
