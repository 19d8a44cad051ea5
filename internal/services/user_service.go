package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// UserService handles user business logic
type UserService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) *UserService {
	return &UserService{userRepo: userRepo, membershipRepo: membershipRepo}
}

func (s *UserService) Create(name, description string) (*models.User, error) {
	user := &models.User{Name: name, Description: description}
	if err := s.userRepo.Create(user); err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "User", id)
	}
	return user, nil
}

func (s *UserService) List(params repository.ListParams) ([]models.User, int64, error) {
	users, count, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return users, count, nil
}

func (s *UserService) Update(id uint64, input UpdateEntityInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "User", id)
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Description != nil {
		user.Description = *input.Description
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (s *UserService) Delete(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return notFoundOr(err, "User", id)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return classify(err)
	}
	return nil
}

// GetMemberships returns the user's roles and groups.
func (s *UserService) GetMemberships(id uint64) ([]models.Role, []models.Group, error) {
	roles, err := s.membershipRepo.GetUserRoles(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	groups, err := s.membershipRepo.GetUserGroups(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	return roles, groups, nil
}
