package service

import (
	"context"
	"time"

	"github.com/blaisecz/zenith/internal/analytics"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
)

// snapshotLoader fetches everything the analytics functions read for one user.
type snapshotLoader struct {
	userRepo  repository.UserRepository
	habitRepo repository.HabitRepository
	logRepo   repository.HabitLogRepository
	now       func() time.Time
}

func (l *snapshotLoader) load(ctx context.Context, userID uuid.UUID) (*domain.User, analytics.Snapshot, error) {
	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, analytics.Snapshot{}, err
	}

	habits, err := l.habitRepo.List(ctx, userID)
	if err != nil {
		return nil, analytics.Snapshot{}, err
	}

	logs, err := l.logRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, analytics.Snapshot{}, err
	}

	// Ties in rankings and best/worst keep the order the user sees.
	domain.SortForDisplay(habits)

	return user, analytics.Snapshot{Habits: habits, Logs: logs}, nil
}

// localNow is the current instant in the user's home timezone.
func (l *snapshotLoader) localNow(user *domain.User) time.Time {
	return l.now().In(user.Location())
}
