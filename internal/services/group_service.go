package services

import (
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// CreateGroupInput represents input for creating a group
type CreateGroupInput struct {
	Name        string
	Description string
	ParentID    *uint64
	OwnerID     *uint64
}

// UpdateGroupInput represents input for updating a group. Nil fields are
// left unchanged; ParentID and OwnerID can only be set, not cleared, through
// this input.
type UpdateGroupInput struct {
	Name        *string
	Description *string
	ParentID    *uint64
	OwnerID     *uint64
}

// GroupService handles group business logic including hierarchy, delegates
// and cascaded objectives.
type GroupService struct {
	groupRepo      repository.GroupRepository
	membershipRepo repository.MembershipRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo repository.GroupRepository, membershipRepo repository.MembershipRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, membershipRepo: membershipRepo}
}

func (s *GroupService) Create(input CreateGroupInput) (*models.Group, error) {
	if input.ParentID != nil {
		if _, err := s.groupRepo.FindByID(*input.ParentID); err != nil {
			return nil, notFoundOr(err, "Group", *input.ParentID)
		}
	}
	group := &models.Group{
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		OwnerID:     input.OwnerID,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, classify(err)
	}
	return group, nil
}

func (s *GroupService) Get(id uint64) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Group", id)
	}
	return group, nil
}

func (s *GroupService) List(params repository.ListParams) ([]models.Group, int64, error) {
	groups, count, err := s.groupRepo.List(params)
	if err != nil {
		return nil, 0, classify(err)
	}
	return groups, count, nil
}

func (s *GroupService) Update(id uint64, input UpdateGroupInput) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Group", id)
	}
	if input.Name != nil {
		group.Name = *input.Name
	}
	if input.Description != nil {
		group.Description = *input.Description
	}
	if input.ParentID != nil {
		if *input.ParentID == id {
			return nil, apperrors.Validation("a group cannot be its own parent", "parent_id", *input.ParentID)
		}
		if _, err := s.groupRepo.FindByID(*input.ParentID); err != nil {
			return nil, notFoundOr(err, "Group", *input.ParentID)
		}
		group.ParentID = input.ParentID
	}
	if input.OwnerID != nil {
		group.OwnerID = input.OwnerID
	}
	if err := s.groupRepo.Update(group); err != nil {
		return nil, classify(err)
	}
	return group, nil
}

func (s *GroupService) Delete(id uint64) error {
	if _, err := s.groupRepo.FindByID(id); err != nil {
		return notFoundOr(err, "Group", id)
	}
	if err := s.groupRepo.Delete(id); err != nil {
		return classify(err)
	}
	return nil
}

// GetMembers returns the group's users and roles.
func (s *GroupService) GetMembers(id uint64) ([]models.User, []models.Role, error) {
	users, err := s.membershipRepo.GetGroupUsers(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	roles, err := s.membershipRepo.GetGroupRoles(id)
	if err != nil {
		return nil, nil, classify(err)
	}
	return users, roles, nil
}

func (s *GroupService) AddDelegate(groupID, userID uint64) error {
	if err := s.membershipRepo.AddDelegateToGroup(groupID, userID); err != nil {
		return classify(err)
	}
	return nil
}

func (s *GroupService) RemoveDelegate(groupID, userID uint64) error {
	if err := s.membershipRepo.RemoveDelegateFromGroup(groupID, userID); err != nil {
		return classify(err)
	}
	return nil
}

func (s *GroupService) GetDelegates(groupID uint64) ([]models.User, error) {
	users, err := s.membershipRepo.GetGroupDelegates(groupID)
	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// CascadeObjective propagates an objective from the group to one of its
// direct children.
func (s *GroupService) CascadeObjective(parentGroupID, childGroupID, objectiveID uint64) (*models.GroupCascadedObjective, error) {
	cascaded, err := s.membershipRepo.CascadeObjectiveToChild(parentGroupID, childGroupID, objectiveID)
	if err != nil {
		return nil, classify(err)
	}
	return cascaded, nil
}

func (s *GroupService) RemoveCascadedObjective(parentGroupID, childGroupID, objectiveID uint64) error {
	if err := s.membershipRepo.RemoveCascadedObjective(parentGroupID, childGroupID, objectiveID); err != nil {
		return classify(err)
	}
	return nil
}

func (s *GroupService) ToggleCascadedObjective(cascadedID uint64, isActive bool) (*models.GroupCascadedObjective, error) {
	cascaded, err := s.membershipRepo.ToggleCascadedObjective(cascadedID, isActive)
	if err != nil {
		return nil, classify(err)
	}
	return cascaded, nil
}

// GetCascadedObjectives returns the objectives cascaded to the group from
// its parent.
func (s *GroupService) GetCascadedObjectives(groupID uint64) ([]models.GroupCascadedObjective, error) {
	cascaded, err := s.membershipRepo.GetCascadedObjectivesForGroup(groupID)
	if err != nil {
		return nil, classify(err)
	}
	return cascaded, nil
}
