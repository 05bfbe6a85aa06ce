package repository

import (
	"context"

	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	Insert(ctx context.Context, comment *model.Comment) error
	// ListByPost returns the thread oldest first.
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	// Delete is idempotent; a missing or malformed id is not an error.
	Delete(ctx context.Context, id string) error
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection(consts.ColComments),
	}
}

func (s *commentRepoImpl) Insert(ctx context.Context, comment *model.Comment) error {
	_, err := s.col.InsertOne(ctx, comment)
	return err
}

func (s *commentRepoImpl) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *commentRepoImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
