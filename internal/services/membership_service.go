package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// MembershipService handles the five membership edge sets. It is a thin
// classification layer over the repository, which owns the existence and
// duplicate checks.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(membershipRepo repository.MembershipRepository) *MembershipService {
	return &MembershipService{membershipRepo: membershipRepo}
}

func (s *MembershipService) AddUserToOrganization(userID, organizationID uint64) error {
	return classifyNil(s.membershipRepo.AddUserToOrganization(userID, organizationID))
}

func (s *MembershipService) RemoveUserFromOrganization(userID, organizationID uint64) error {
	return classifyNil(s.membershipRepo.RemoveUserFromOrganization(userID, organizationID))
}

func (s *MembershipService) AddGroupToOrganization(groupID, organizationID uint64) error {
	return classifyNil(s.membershipRepo.AddGroupToOrganization(groupID, organizationID))
}

func (s *MembershipService) RemoveGroupFromOrganization(groupID, organizationID uint64) error {
	return classifyNil(s.membershipRepo.RemoveGroupFromOrganization(groupID, organizationID))
}

func (s *MembershipService) AddUserToGroup(userID, groupID uint64) error {
	return classifyNil(s.membershipRepo.AddUserToGroup(userID, groupID))
}

func (s *MembershipService) RemoveUserFromGroup(userID, groupID uint64) error {
	return classifyNil(s.membershipRepo.RemoveUserFromGroup(userID, groupID))
}

func (s *MembershipService) AddRoleToUser(userID, roleID uint64) error {
	return classifyNil(s.membershipRepo.AddRoleToUser(userID, roleID))
}

func (s *MembershipService) RemoveRoleFromUser(userID, roleID uint64) error {
	return classifyNil(s.membershipRepo.RemoveRoleFromUser(userID, roleID))
}

func (s *MembershipService) AddRoleToGroup(groupID, roleID uint64) error {
	return classifyNil(s.membershipRepo.AddRoleToGroup(groupID, roleID))
}

func (s *MembershipService) RemoveRoleFromGroup(groupID, roleID uint64) error {
	return classifyNil(s.membershipRepo.RemoveRoleFromGroup(groupID, roleID))
}

func classifyNil(err error) error {
	if err == nil {
		return nil
	}
	return classify(err)
}
