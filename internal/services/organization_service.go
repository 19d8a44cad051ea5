package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// OrganizationService handles organization business logic
type OrganizationService struct {
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo repository.OrganizationRepository, membershipRepo repository.MembershipRepository) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo, membershipRepo: membershipRepo}
}

func (s *OrganizationService) Create(name, description string) (*models.Organization, error) {
	org := &models.Organization{Name: name, Description: description}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, classify(err)
	}
	return org, nil
}

func (s *OrganizationService) Get(id uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Organization", id)
	}
	return org, nil
}

func (s *OrganizationService) List(params repository.ListParams) ([]models.Organization, int64, error) {
	orgs, count, err := s.orgRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return orgs, count, nil
}

func (s *OrganizationService) Update(id uint64, input UpdateEntityInput) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Organization", id)
	}
	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Description != nil {
		org.Description = *input.Description
	}
	if err := s.orgRepo.Update(org); err != nil {
		return nil, classify(err)
	}
	return org, nil
}

func (s *OrganizationService) Delete(id uint64) error {
	if _, err := s.orgRepo.FindByID(id); err != nil {
		return notFoundOr(err, "Organization", id)
	}
	if err := s.orgRepo.Delete(id); err != nil {
		return classify(err)
	}
	return nil
}

// GetMembers returns the organization's users and groups.
func (s *OrganizationService) GetMembers(id uint64) ([]models.User, []models.Group, error) {
	users, err := s.membershipRepo.GetOrganizationUsers(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	groups, err := s.membershipRepo.GetOrganizationGroups(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	return users, groups, nil
}
