package repository

import (
	"context"

	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LikeRepo interface {
	// Remove deletes the membership and reports whether it existed.
	Remove(ctx context.Context, postID, userID string) (bool, error)
	Add(ctx context.Context, like *model.Like) error
	Count(ctx context.Context, postID string) (int64, error)
	ListUserIDs(ctx context.Context, postID string) ([]string, error)
}

type likeRepoImpl struct {
	col *mongo.Collection
}

func NewLikeRepo(db *mongo.Database) LikeRepo {
	return &likeRepoImpl{
		col: db.Collection(consts.ColLikes),
	}
}

func (s *likeRepoImpl) Remove(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Add is an upsert on (post_id, user_id) so concurrent toggles cannot
// produce duplicate memberships.
func (s *likeRepoImpl) Add(ctx context.Context, like *model.Like) error {
	filter := bson.M{"post_id": like.PostID, "user_id": like.UserID}
	update := bson.M{"$setOnInsert": like}
	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *likeRepoImpl) Count(ctx context.Context, postID string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (s *likeRepoImpl) ListUserIDs(ctx context.Context, postID string) ([]string, error) {
	values, err := s.col.Distinct(ctx, "user_id", bson.M{"post_id": postID})
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			userIDs = append(userIDs, id)
		}
	}
	return userIDs, nil
}
