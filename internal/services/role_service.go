package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// RoleService handles role business logic
type RoleService struct {
	roleRepo       repository.RoleRepository
	membershipRepo repository.MembershipRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo repository.RoleRepository, membershipRepo repository.MembershipRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo, membershipRepo: membershipRepo}
}

func (s *RoleService) Create(name, description string) (*models.Role, error) {
	role := &models.Role{Name: name, Description: description}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, classify(err)
	}
	return role, nil
}

func (s *RoleService) Get(id uint64) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Role", id)
	}
	return role, nil
}

func (s *RoleService) List(params repository.ListParams) ([]models.Role, int64, error) {
	roles, count, err := s.roleRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return roles, count, nil
}

func (s *RoleService) Update(id uint64, input UpdateEntityInput) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Role", id)
	}
	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = *input.Description
	}
	if err := s.roleRepo.Update(role); err != nil {
		return nil, classify(err)
	}
	return role, nil
}

func (s *RoleService) Delete(id uint64) error {
	if _, err := s.roleRepo.FindByID(id); err != nil {
		return notFoundOr(err, "Role", id)
	}
	if err := s.roleRepo.Delete(id); err != nil {
		return classify(err)
	}
	return nil
}

// GetRoleUsers returns every user holding the role.
func (s *RoleService) GetRoleUsers(id uint64) ([]models.User, error) {
	users, err := s.membershipRepo.GetRoleUsers(id)
	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// GetRoleGroups returns every group holding the role.
func (s *RoleService) GetRoleGroups(id uint64) ([]models.Group, error) {
	groups, err := s.membershipRepo.GetRoleGroups(id)
	if err != nil {
		return nil, classify(err)
	}
	return groups, nil
}
