package repository

import (
	"context"
	"errors"

	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	Insert(ctx context.Context, post *model.Post) (string, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, userID string) ([]*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection(consts.ColPosts),
	}
}

func (s *postRepoImpl) Insert(ctx context.Context, post *model.Post) (string, error) {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Get returns (nil, nil) when the id is absent or malformed.
func (s *postRepoImpl) Get(ctx context.Context, id string) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var post model.Post
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest first, optionally narrowed to one author.
func (s *postRepoImpl) List(ctx context.Context, userID string) ([]*model.Post, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *postRepoImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
