package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	GetByID(id uint) (*dto.UserResponse, error)
	List(skip, limit int) ([]dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("Failed to map user")
	}
	return &resp, nil
}

func (s *userService) List(skip, limit int) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		var resp dto.UserResponse
		if err := copier.Copy(&resp, &users[i]); err != nil {
			log.Error().Err(err).Msg("Failed to map user")
		}
		out = append(out, resp)
	}
	return out, nil
}
