package service

import (
	"context"
	"time"

	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/model"
	"github.com/Wellingtondela/wsapet-backend/internal/repository"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *dto.AppointmentCreateDTO) (*dto.AppointmentCreatedDTO, error)
}

type appointmentServiceImpl struct {
	appointmentRepo repository.AppointmentRepo
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepo) AppointmentService {
	return &appointmentServiceImpl{
		appointmentRepo: appointmentRepo,
	}
}

func (s *appointmentServiceImpl) CreateAppointment(ctx context.Context, req *dto.AppointmentCreateDTO) (*dto.AppointmentCreatedDTO, error) {
	dataHora, err := time.Parse(time.RFC3339, req.DataHora)
	if err != nil {
		return nil, ErrAppointmentInvalid
	}

	appointment := &model.Appointment{
		UID:       req.UID,
		ClinicaID: req.ClinicaID,
		DataHora:  dataHora,
		CriadoEm:  time.Now(),
	}

	id, err := s.appointmentRepo.Insert(ctx, appointment)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentCreatedDTO{ID: id}, nil
}
