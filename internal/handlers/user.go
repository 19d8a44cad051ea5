package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type UserHandler struct {
	service           *services.UserService
	membershipService *services.MembershipService
	ownershipService  *services.OwnershipService
}

func NewUserHandler(service *services.UserService, membershipService *services.MembershipService, ownershipService *services.OwnershipService) *UserHandler {
	return &UserHandler{
		service:           service,
		membershipService: membershipService,
		ownershipService:  ownershipService,
	}
}

// Create creates a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Create(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Get returns a single user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// List returns a paginated user list
func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	users, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToUserDTOs(users)))
}

// Update partially updates a user
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Update(id, services.UpdateEntityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes a user
func (h *UserHandler) Delete(c *gin.Context) {
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

// GetMemberships returns the user's roles and groups
func (h *UserHandler) GetMemberships(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	roles, groups, err := h.service.GetMemberships(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserMembershipsDTO{
		Roles:  dto.ToRoleDTOs(roles),
		Groups: dto.ToGroupDTOs(groups),
	})
}

// GetAssignments returns every objective assigned to the user, partitioned
// by how it was granted
func (h *UserHandler) GetAssignments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	assignments, err := h.ownershipService.ResolveUserAssignments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// AddRole assigns a role to the user
func (h *UserHandler) AddRole(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleID")
	if !ok {
		return
	}
	if err := h.membershipService.AddRoleToUser(userID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveRole removes a role from the user
func (h *UserHandler) RemoveRole(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleID")
	if !ok {
		return
	}
	if err := h.membershipService.RemoveRoleFromUser(userID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
