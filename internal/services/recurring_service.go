package services

import (
	"time"

	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
	"github.com/yukikurage/okr-tracker-api/internal/dto"
	"github.com/yukikurage/okr-tracker-api/internal/models"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
)

// CreateRecurringScheduleInput represents input for creating a schedule
type CreateRecurringScheduleInput struct {
	KeyResultID     uint64
	Frequency       models.Frequency
	NextDueDate     time.Time
	RotationEnabled bool
	RotationUsers   []uint64
}

// UpdateRecurringScheduleInput represents input for updating a schedule.
// Changing the frequency does not itself trigger regeneration.
type UpdateRecurringScheduleInput struct {
	Frequency       *models.Frequency
	NextDueDate     *time.Time
	RotationEnabled *bool
	RotationUsers   []uint64
}

// RecurringService drives the recurring schedule engine: schedule CRUD, the
// regeneration batch job and due-today reporting.
type RecurringService struct {
	recurringRepo repository.RecurringRepository
	keyResultRepo repository.KeyResultRepository
	userRepo      repository.UserRepository

	now func() time.Time
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo repository.RecurringRepository, keyResultRepo repository.KeyResultRepository, userRepo repository.UserRepository) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		keyResultRepo: keyResultRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (s *RecurringService) Create(input CreateRecurringScheduleInput) (*models.RecurringSchedule, error) {
	if !input.Frequency.Valid() {
		return nil, apperrors.Validation(
			"frequency must be one of: daily, weekly, monthly",
			"frequency", string(input.Frequency),
		)
	}
	schedule := &models.RecurringSchedule{
		KeyResultID:     input.KeyResultID,
		Frequency:       input.Frequency,
		NextDueDate:     input.NextDueDate,
		RotationEnabled: input.RotationEnabled,
		RotationUsers:   input.RotationUsers,
	}
	if err := s.recurringRepo.Create(schedule); err != nil {
		return nil, classify(err)
	}
	return schedule, nil
}

func (s *RecurringService) Get(keyResultID uint64) (*models.RecurringSchedule, error) {
	schedule, err := s.recurringRepo.FindByKeyResult(keyResultID)
	if err != nil {
		return nil, classify(err)
	}
	return schedule, nil
}

func (s *RecurringService) Update(keyResultID uint64, input UpdateRecurringScheduleInput) (*models.RecurringSchedule, error) {
	schedule, err := s.recurringRepo.FindByKeyResult(keyResultID)
	if err != nil {
		return nil, classify(err)
	}
	if input.Frequency != nil {
		if !input.Frequency.Valid() {
			return nil, apperrors.Validation(
				"frequency must be one of: daily, weekly, monthly",
				"frequency", string(*input.Frequency),
			)
		}
		schedule.Frequency = *input.Frequency
	}
	if input.NextDueDate != nil {
		schedule.NextDueDate = *input.NextDueDate
	}
	if input.RotationEnabled != nil {
		schedule.RotationEnabled = *input.RotationEnabled
	}
	if input.RotationUsers != nil {
		schedule.RotationUsers = input.RotationUsers
		if schedule.CurrentRotationIndex >= len(input.RotationUsers) {
			schedule.CurrentRotationIndex = 0
		}
	}
	if err := s.recurringRepo.Update(schedule); err != nil {
		return nil, classify(err)
	}
	return schedule, nil
}

func (s *RecurringService) Delete(keyResultID uint64) error {
	if err := s.recurringRepo.Delete(keyResultID); err != nil {
		return classify(err)
	}
	return nil
}

// RegenerateCompleted is the due-cadence batch job. For every past-due
// schedule whose key result is complete it resets the key result, sets the
// next due date one cadence offset from today, stamps last_generated_at, and
// rotates the assignee when rotation is on. Past-due schedules whose key
// result is still incomplete are left untouched.
func (s *RecurringService) RegenerateCompleted() (regenerated, rotated int, err error) {
	now := s.now()
	due, err := s.recurringRepo.FindDue(now)
	if err != nil {
		return 0, 0, classify(err)
	}
	for i := range due {
		schedule := &due[i]
		if schedule.KeyResult == nil || !schedule.KeyResult.IsComplete {
			continue
		}

		kr := schedule.KeyResult
		kr.IsComplete = false
		zero := 0.0
		kr.CurrentValue = &zero
		if err := s.keyResultRepo.Update(kr); err != nil {
			return regenerated, rotated, classify(err)
		}

		// The new due date is anchored on today, not the stored due date,
		// so an overdue schedule never regenerates straight into the past.
		schedule.NextDueDate = advanceDueDate(dateOnly(now), schedule.Frequency)
		generatedAt := now
		schedule.LastGeneratedAt = &generatedAt
		if schedule.RotationEnabled && len(schedule.RotationUsers) > 0 {
			schedule.CurrentRotationIndex = (schedule.CurrentRotationIndex + 1) % len(schedule.RotationUsers)
			rotated++
		}
		if err := s.recurringRepo.Update(schedule); err != nil {
			return regenerated, rotated, classify(err)
		}
		regenerated++
	}
	return regenerated, rotated, nil
}

// DueToday lists schedules due as of now, enriched with key result,
// objective and assignee context. Filtering by group ownership is not
// implemented; all due schedules are returned.
func (s *RecurringService) DueToday() ([]dto.DueTodayItemDTO, error) {
	due, err := s.recurringRepo.FindDue(s.now())
	if err != nil {
		return nil, classify(err)
	}
	items := make([]dto.DueTodayItemDTO, 0, len(due))
	for i := range due {
		schedule := &due[i]
		item := dto.DueTodayItemDTO{
			ScheduleID:  schedule.ID,
			KeyResultID: schedule.KeyResultID,
			Frequency:   schedule.Frequency,
			NextDueDate: schedule.NextDueDate,
		}
		if schedule.KeyResult != nil {
			item.KeyResultName = schedule.KeyResult.Name
			if schedule.KeyResult.Objective != nil {
				item.ObjectiveName = schedule.KeyResult.Objective.Name
			}
		}
		if assignee := schedule.CurrentAssignee(); assignee != 0 {
			item.AssigneeID = assignee
			if user, err := s.userRepo.FindByID(assignee); err == nil {
				item.AssigneeName = user.Name
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// All lists every schedule. Group scoping is not implemented; callers get
// the full set.
func (s *RecurringService) All() ([]models.RecurringSchedule, error) {
	schedules, err := s.recurringRepo.All()
	if err != nil {
		return nil, classify(err)
	}
	return schedules, nil
}

// advanceDueDate applies the cadence's fixed offset. Monthly is a flat 30
// days, not calendar-month aware.
func advanceDueDate(from time.Time, frequency models.Frequency) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return from.AddDate(0, 0, 30)
	}
	return from
}
