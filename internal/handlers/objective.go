package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type ObjectiveHandler struct {
	service          *services.ObjectiveService
	ownershipService *services.OwnershipService
}

func NewObjectiveHandler(service *services.ObjectiveService, ownershipService *services.OwnershipService) *ObjectiveHandler {
	return &ObjectiveHandler{service: service, ownershipService: ownershipService}
}

// Create creates a new objective
func (h *ObjectiveHandler) Create(c *gin.Context) {
	var req dto.CreateObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}
	objective, err := h.service.Create(services.CreateObjectiveInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToObjectiveDTO(*objective))
}

// Get returns a single objective with computed progress
func (h *ObjectiveHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	objective, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveDTO(*objective))
}

// List returns a paginated objective list
func (h *ObjectiveHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	objectives, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToObjectiveDTOs(objectives)))
}

// Update partially updates an objective
func (h *ObjectiveHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}
	objective, err := h.service.Update(id, services.UpdateObjectiveInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveDTO(*objective))
}

// Delete removes an objective and everything hanging off it
func (h *ObjectiveHandler) Delete(c *gin.Context) {
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

// ListOwnerships returns the objective's owners with resolved names
func (h *ObjectiveHandler) ListOwnerships(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ownerships, err := h.ownershipService.ListOwnerships(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ownerships": ownerships})
}

// AddOwnership assigns a user, role or group as an owner
func (h *ObjectiveHandler) AddOwnership(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddOwnershipRequest
	if !bindJSON(c, &req) {
		return
	}
	ownership, err := h.ownershipService.AddOwnership(id, models.OwnerType(req.OwnerType), req.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOwnershipDTO(*ownership, ""))
}

// RemoveOwnership removes an owner from the objective
func (h *ObjectiveHandler) RemoveOwnership(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ownerID, ok := parseID(c, "ownerID")
	if !ok {
		return
	}
	ownerType := models.OwnerType(c.Param("ownerType"))
	if err := h.ownershipService.RemoveOwnership(id, ownerType, ownerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
