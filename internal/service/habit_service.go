package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
)

// HabitService manages a user's protocols.
type HabitService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error)
	// List returns protocols in display order. The first listing for a user
	// who never had protocols seeds the default set.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	Update(ctx context.Context, userID, habitID uuid.UUID, req *domain.UpdateHabitRequest) (*domain.Habit, error)
	Delete(ctx context.Context, userID, habitID uuid.UUID) error
	// ClearAll removes every protocol and log; defaults are not seeded again.
	ClearAll(ctx context.Context, userID uuid.UUID) error
}

type habitService struct {
	repo     repository.HabitRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewHabitService(repo repository.HabitRepository, userRepo repository.UserRepository) HabitService {
	return &habitService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *habitService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	archetype := req.Archetype
	if archetype == "" {
		archetype = domain.ArchetypeDiscipline
	}

	habit := &domain.Habit{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name),
		Archetype:     archetype,
		ScheduledTime: normalizeSchedule(req.ScheduledTime),
		AlarmsEnabled: req.AlarmsEnabled,
		IsActive:      true,
		IsStrict:      req.IsStrict,
	}
	if habit.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	habits, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProtocolsInitialized {
		if len(habits) == 0 {
			habits = domain.DefaultProtocolSet(userID, s.now().UTC())
			if err := s.repo.CreateBatch(ctx, habits); err != nil {
				return nil, fmt.Errorf("seed default protocols: %w", err)
			}
			logger.Info("Seeded default protocols", "user_id", userID, "count", len(habits))
		}
		if err := s.userRepo.MarkProtocolsInitialized(ctx, userID); err != nil {
			return nil, err
		}
	}

	domain.SortForDisplay(habits)
	return habits, nil
}

func (s *habitService) Update(ctx context.Context, userID, habitID uuid.UUID, req *domain.UpdateHabitRequest) (*domain.Habit, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	habit, err := s.repo.GetByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		habit.Name = name
	}
	if req.ClearSchedule {
		habit.ScheduledTime = nil
	} else if req.ScheduledTime != nil {
		habit.ScheduledTime = normalizeSchedule(req.ScheduledTime)
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}
	if req.AlarmsEnabled != nil {
		habit.AlarmsEnabled = *req.AlarmsEnabled
	}
	if req.IsStrict != nil {
		habit.IsStrict = *req.IsStrict
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, habitID)
}

func (s *habitService) ClearAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.ensureUser(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.MarkProtocolsInitialized(ctx, userID)
}

func (s *habitService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// normalizeSchedule maps an empty window to nil.
func normalizeSchedule(scheduled *string) *string {
	if scheduled == nil {
		return nil
	}
	v := strings.TrimSpace(*scheduled)
	if v == "" {
		return nil
	}
	return &v
}
