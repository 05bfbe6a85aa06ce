package repository

import (
	"context"
	"errors"

	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepo interface {
	// Get returns (nil, nil) when the user document does not exist.
	Get(ctx context.Context, uid string) (*model.Profile, error)
}

type profileRepoImpl struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepoImpl{
		col: db.Collection(consts.ColUsers),
	}
}

func (s *profileRepoImpl) Get(ctx context.Context, uid string) (*model.Profile, error) {
	var profile model.Profile
	err := s.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
