package handler

import (
	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/response"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
}

func NewAppointmentHandler(appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentSvc: appointmentSvc,
	}
}

func (s *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.appointmentSvc.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}
