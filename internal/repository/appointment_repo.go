package repository

import (
	"context"

	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepo interface {
	Insert(ctx context.Context, appointment *model.Appointment) (string, error)
}

type appointmentRepoImpl struct {
	col *mongo.Collection
}

func NewAppointmentRepo(db *mongo.Database) AppointmentRepo {
	return &appointmentRepoImpl{
		col: db.Collection(consts.ColAppointments),
	}
}

func (s *appointmentRepoImpl) Insert(ctx context.Context, appointment *model.Appointment) (string, error) {
	res, err := s.col.InsertOne(ctx, appointment)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
