package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type RoleHandler struct {
	service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// Create creates a new role
func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.CreateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.service.Create(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoleDTO(*role))
}

// Get returns a single role
func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	role, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleDTO(*role))
}

// List returns a paginated role list
func (h *RoleHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	roles, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToRoleDTOs(roles)))
}

// Update partially updates a role
func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.service.Update(id, services.UpdateEntityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleDTO(*role))
}

// Delete removes a role
func (h *RoleHandler) Delete(c *gin.Context) {
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

// GetUsers returns every user holding the role
func (h *RoleHandler) GetUsers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	users, err := h.service.GetRoleUsers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// GetGroups returns every group holding the role
func (h *RoleHandler) GetGroups(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	groups, err := h.service.GetRoleGroups(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": dto.ToGroupDTOs(groups)})
}
