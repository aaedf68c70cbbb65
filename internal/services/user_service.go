// internal/services/user_service.go
package services

import (
	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

type UserService struct {
	users *store.UserStore
}

type UpdateProfileRequest struct {
	Username    string `json:"username,omitempty" validate:"omitempty,username"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,min=1,max=80"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio         string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Region      string `json:"region,omitempty" validate:"omitempty,max=80"`
}

func NewUserService(users *store.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	u, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) GetPublicProfile(id string) (*models.User, error) {
	u, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}
	public := u.PublicProfile()
	return &public, nil
}

func (s *UserService) UpdateProfile(id string, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.DisplayName != "" {
		u.DisplayName = req.DisplayName
	}
	if req.AvatarURL != "" {
		u.AvatarURL = req.AvatarURL
	}
	if req.Bio != "" {
		u.Bio = req.Bio
	}
	if req.Region != "" {
		u.Region = req.Region
	}

	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return &u, nil
}
