package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/services"
)

// RecurringHandler serves the recurring-schedule batch endpoints invoked by
// an external scheduler, plus the due-today report.
type RecurringHandler struct {
	service       *services.RecurringService
	streakService *services.StreakService
}

func NewRecurringHandler(service *services.RecurringService, streakService *services.StreakService) *RecurringHandler {
	return &RecurringHandler{service: service, streakService: streakService}
}

// List returns every recurring schedule. Scoping by group is not
// implemented; callers get the full set.
func (h *RecurringHandler) List(c *gin.Context) {
	schedules, err := h.service.All()
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.RecurringScheduleDTO, 0, len(schedules))
	for _, schedule := range schedules {
		items = append(items, dto.ToRecurringScheduleDTO(schedule))
	}
	c.JSON(http.StatusOK, gin.H{"schedules": items})
}

// DueToday lists schedules due as of now
func (h *RecurringHandler) DueToday(c *gin.Context) {
	items, err := h.service.DueToday()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Regenerate runs the regeneration batch job
func (h *RecurringHandler) Regenerate(c *gin.Context) {
	regenerated, rotated, err := h.service.RegenerateCompleted()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RegenerateResponse{Regenerated: regenerated, Rotated: rotated})
}

// ResetStaleStreaks runs the nightly streak-reset batch job
func (h *RecurringHandler) ResetStaleStreaks(c *gin.Context) {
	reset, err := h.streakService.ResetStaleStreaks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResetStaleResponse{Reset: reset})
}
