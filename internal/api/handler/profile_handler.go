package handler

import (
	"github.com/Wellingtondela/wsapet-backend/internal/pkg/response"
	"github.com/Wellingtondela/wsapet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

func (s *ProfileHandler) Get(c *gin.Context) {
	profile, err := s.profileSvc.GetProfile(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
