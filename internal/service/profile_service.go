package service

import (
	"context"

	"github.com/Wellingtondela/wsapet-backend/internal/api/dto"
	"github.com/Wellingtondela/wsapet-backend/internal/repository"

	"github.com/jinzhu/copier"
)

type ProfileService interface {
	GetProfile(ctx context.Context, uid string) (*dto.ProfileDTO, error)
}

type profileServiceImpl struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, uid string) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	var res dto.ProfileDTO
	if err := copier.Copy(&res, profile); err != nil {
		return nil, err
	}
	return &res, nil
}
