package service

import (
	"context"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
)

// ExportService dumps a user's full data set.
type ExportService interface {
	Export(ctx context.Context, userID uuid.UUID) (*domain.Export, error)
}

type exportService struct {
	snapshotLoader
}

func NewExportService(
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
) ExportService {
	return &exportService{
		snapshotLoader: snapshotLoader{
			userRepo:  userRepo,
			habitRepo: habitRepo,
			logRepo:   logRepo,
			now:       time.Now,
		},
	}
}

func (s *exportService) Export(ctx context.Context, userID uuid.UUID) (*domain.Export, error) {
	user, snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	export := &domain.Export{
		User:       user.ToResponse(),
		Habits:     snapshot.Habits,
		Logs:       snapshot.Logs,
		ExportedAt: s.now().UTC(),
	}
	if export.Habits == nil {
		export.Habits = []domain.Habit{}
	}
	if export.Logs == nil {
		export.Logs = []domain.HabitLog{}
	}
	return export, nil
}
