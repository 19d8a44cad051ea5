package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type GroupHandler struct {
	service           *services.GroupService
	membershipService *services.MembershipService
	streakService     *services.StreakService
}

func NewGroupHandler(service *services.GroupService, membershipService *services.MembershipService, streakService *services.StreakService) *GroupHandler {
	return &GroupHandler{
		service:           service,
		membershipService: membershipService,
		streakService:     streakService,
	}
}

// Create creates a new group
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	group, err := h.service.Create(services.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupDTO(*group))
}

// Get returns a single group with its parent, children and owner
func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	group, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupDTO(*group))
}

// List returns a paginated group list
func (h *GroupHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	groups, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToGroupDTOs(groups)))
}

// Update partially updates a group
func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	group, err := h.service.Update(id, services.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupDTO(*group))
}

// Delete removes a group; its children are detached, not deleted
func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMembers returns the group's users and roles
func (h *GroupHandler) GetMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, roles, err := h.service.GetMembers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GroupMembersDTO{
		Users: dto.ToUserDTOs(users),
		Roles: dto.ToRoleDTOs(roles),
	})
}

// AddUser adds a user to the group
func (h *GroupHandler) AddUser(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.membershipService.AddUserToGroup(userID, groupID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveUser removes a user from the group
func (h *GroupHandler) RemoveUser(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.membershipService.RemoveUserFromGroup(userID, groupID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddRole assigns a role to the group
func (h *GroupHandler) AddRole(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleID")
	if !ok {
		return
	}
	if err := h.membershipService.AddRoleToGroup(groupID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveRole removes a role from the group
func (h *GroupHandler) RemoveRole(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleID")
	if !ok {
		return
	}
	if err := h.membershipService.RemoveRoleFromGroup(groupID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDelegates returns the group's delegates
func (h *GroupHandler) GetDelegates(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, err := h.service.GetDelegates(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delegates": dto.ToUserDTOs(users)})
}

// AddDelegate adds a delegate to the group
func (h *GroupHandler) AddDelegate(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.service.AddDelegate(groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveDelegate removes a delegate from the group
func (h *GroupHandler) RemoveDelegate(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.service.RemoveDelegate(groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CascadeObjective propagates an objective to a direct child group
func (h *GroupHandler) CascadeObjective(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CascadeObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}
	cascaded, err := h.service.CascadeObjective(groupID, req.ChildGroupID, req.ObjectiveID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCascadedObjectiveDTO(*cascaded))
}

// RemoveCascadedObjective withdraws a cascaded objective from a child group
func (h *GroupHandler) RemoveCascadedObjective(c *gin.Context) {
	groupID, ok := parseID(c, "id")
	if !ok {
		return
	}
	childID, ok := parseID(c, "childID")
	if !ok {
		return
	}
	objectiveID, ok := parseID(c, "objectiveID")
	if !ok {
		return
	}
	if err := h.service.RemoveCascadedObjective(groupID, childID, objectiveID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleCascadedObjective flips a cascaded objective's active flag
func (h *GroupHandler) ToggleCascadedObjective(c *gin.Context) {
	cascadedID, ok := parseID(c, "cascadedID")
	if !ok {
		return
	}
	var req dto.ToggleCascadedObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}
	cascaded, err := h.service.ToggleCascadedObjective(cascadedID, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCascadedObjectiveDTO(*cascaded))
}

// GetCascadedObjectives returns the objectives cascaded to the group
func (h *GroupHandler) GetCascadedObjectives(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cascaded, err := h.service.GetCascadedObjectives(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cascaded_objectives": dto.ToCascadedObjectiveDTOs(cascaded)})
}

// GetStreak returns the group's activity streak
func (h *GroupHandler) GetStreak(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	streak, err := h.streakService.GetStreak(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, streak)
}

// RecordActivity records today's activity for the group's streak
func (h *GroupHandler) RecordActivity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	streak, increased, err := h.streakService.RecordActivity(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RecordActivityResponse{Streak: *streak, Increased: increased})
}
