package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type OrganizationHandler struct {
	service           *services.OrganizationService
	membershipService *services.MembershipService
}

func NewOrganizationHandler(service *services.OrganizationService, membershipService *services.MembershipService) *OrganizationHandler {
	return &OrganizationHandler{service: service, membershipService: membershipService}
}

// Create creates a new organization
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	org, err := h.service.Create(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(*org))
}

// Get returns a single organization
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	org, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// List returns a paginated organization list
func (h *OrganizationHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	orgs, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToOrganizationDTOs(orgs)))
}

// Update partially updates an organization
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	org, err := h.service.Update(id, services.UpdateEntityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// Delete removes an organization
func (h *OrganizationHandler) Delete(c *gin.Context) {
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

// GetMembers returns the organization's users and groups
func (h *OrganizationHandler) GetMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, groups, err := h.service.GetMembers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrganizationMembersDTO{
		Users:  dto.ToUserDTOs(users),
		Groups: dto.ToGroupDTOs(groups),
	})
}

// AddUser adds a user to the organization
func (h *OrganizationHandler) AddUser(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.membershipService.AddUserToOrganization(userID, orgID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveUser removes a user from the organization
func (h *OrganizationHandler) RemoveUser(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}
	if err := h.membershipService.RemoveUserFromOrganization(userID, orgID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddGroup adds a group to the organization
func (h *OrganizationHandler) AddGroup(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		return
	}
	groupID, ok := parseID(c, "groupID")
	if !ok {
		return
	}
	if err := h.membershipService.AddGroupToOrganization(groupID, orgID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// RemoveGroup removes a group from the organization
func (h *OrganizationHandler) RemoveGroup(c *gin.Context) {
	orgID, ok := parseID(c, "id")
	if !ok {
		return
	}
	groupID, ok := parseID(c, "groupID")
	if !ok {
		return
	}
	if err := h.membershipService.RemoveGroupFromOrganization(groupID, orgID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
