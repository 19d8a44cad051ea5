package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/middleware"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/services"
	"github.com/yukikurage/okr-tracker-api/internal/utils"
)

type KeyResultHandler struct {
	service          *services.KeyResultService
	reactionService  *services.ReactionService
	recurringService *services.RecurringService
}

func NewKeyResultHandler(service *services.KeyResultService, reactionService *services.ReactionService, recurringService *services.RecurringService) *KeyResultHandler {
	return &KeyResultHandler{
		service:          service,
		reactionService:  reactionService,
		recurringService: recurringService,
	}
}

// Create creates a new key result under an objective
func (h *KeyResultHandler) Create(c *gin.Context) {
	var req dto.CreateKeyResultRequest
	if !bindJSON(c, &req) {
		return
	}
	kr, err := h.service.Create(services.CreateKeyResultInput{
		Name:         req.Name,
		Description:  req.Description,
		ObjectiveID:  req.ObjectiveID,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToKeyResultDTO(*kr))
}

// Get returns a single key result with computed progress and effective dates
func (h *KeyResultHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	kr, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToKeyResultDTO(*kr))
}

// List returns a paginated key result list
func (h *KeyResultHandler) List(c *gin.Context) {
	params := utils.GetListParams(c, "name", "description")
	krs, count, err := h.service.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(count, params.Page, params.PageSize, dto.ToKeyResultDTOs(krs)))
}

// Update partially updates a key result and re-syncs objective completion
func (h *KeyResultHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateKeyResultRequest
	if !bindJSON(c, &req) {
		return
	}
	kr, err := h.service.Update(id, services.UpdateKeyResultInput{
		Name:         req.Name,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsComplete:   req.IsComplete,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToKeyResultDTO(*kr))
}

// Delete removes a key result
func (h *KeyResultHandler) Delete(c *gin.Context) {
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

// ToggleReaction toggles the current user's emoji reaction
func (h *KeyResultHandler) ToggleReaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req dto.ToggleReactionRequest
	if !bindJSON(c, &req) {
		return
	}
	status, reaction, err := h.reactionService.Toggle(id, userID, req.Emoji)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ToggleReactionResponse{Status: status}
	if reaction != nil {
		r := dto.ToReactionDTO(*reaction)
		resp.Reaction = &r
	}
	c.JSON(http.StatusOK, resp)
}

// GetReactionSummary returns the key result's reactions grouped by emoji
func (h *KeyResultHandler) GetReactionSummary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	summary, err := h.reactionService.Summary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateRecurringSchedule attaches a recurring schedule to the key result
func (h *KeyResultHandler) CreateRecurringSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateRecurringScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := h.recurringService.Create(services.CreateRecurringScheduleInput{
		KeyResultID:     id,
		Frequency:       models.Frequency(req.Frequency),
		NextDueDate:     req.NextDueDate,
		RotationEnabled: req.RotationEnabled,
		RotationUsers:   req.RotationUsers,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringScheduleDTO(*schedule))
}

// GetRecurringSchedule returns the key result's recurring schedule
func (h *KeyResultHandler) GetRecurringSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	schedule, err := h.recurringService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringScheduleDTO(*schedule))
}

// UpdateRecurringSchedule partially updates the key result's schedule
func (h *KeyResultHandler) UpdateRecurringSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRecurringScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	input := services.UpdateRecurringScheduleInput{
		NextDueDate:     req.NextDueDate,
		RotationEnabled: req.RotationEnabled,
		RotationUsers:   req.RotationUsers,
	}
	if req.Frequency != nil {
		frequency := models.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	schedule, err := h.recurringService.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringScheduleDTO(*schedule))
}

// DeleteRecurringSchedule removes the key result's schedule
func (h *KeyResultHandler) DeleteRecurringSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.recurringService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
