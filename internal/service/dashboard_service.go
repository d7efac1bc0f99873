package service

import (
	"context"
	"time"

	"github.com/blaisecz/zenith/internal/analytics"
	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DashboardService computes the derived views of a user's protocol history.
type DashboardService interface {
	// Dashboard computes every dashboard view as of now in the user's timezone.
	Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error)
	// Streak computes the current and longest streak of one protocol.
	Streak(ctx context.Context, userID, habitID uuid.UUID) (*domain.ProtocolStreak, error)
	// Level computes experience and rank from lifetime completions.
	Level(ctx context.Context, userID uuid.UUID) (*domain.Level, error)
}

type dashboardService struct {
	snapshotLoader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
) DashboardService {
	return &dashboardService{
		snapshotLoader: snapshotLoader{
			userRepo:  userRepo,
			habitRepo: habitRepo,
			logRepo:   logRepo,
			now:       time.Now,
		},
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error) {
	tracer := otel.Tracer("zenith-api/dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.Dashboard",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.localNow(user)
	span.SetAttributes(
		attribute.String("user.timezone", user.Location().String()),
		attribute.Int("snapshot.habits", len(snapshot.Habits)),
		attribute.Int("snapshot.logs", len(snapshot.Logs)),
	)

	dashboard := analytics.BuildDashboard(snapshot, now)

	span.SetAttributes(
		attribute.Float64("dashboard.daily_completion", dashboard.DailyCompletion),
		attribute.Int("dashboard.max_streak", dashboard.MaxStreak),
		attribute.String("dashboard.rank", dashboard.Level.Rank),
	)
	return &dashboard, nil
}

func (s *dashboardService) Streak(ctx context.Context, userID, habitID uuid.UUID) (*domain.ProtocolStreak, error) {
	tracer := otel.Tracer("zenith-api/dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.Streak",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("habit.id", habitID.String()),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	habit, err := s.habitRepo.GetByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := calendar.Today(s.localNow(user))
	streak := analytics.ComputeStreak(habit.ID, logs, today)
	span.SetAttributes(
		attribute.Int("streak.current", streak.Current),
		attribute.Int("streak.longest", streak.Longest),
	)

	return &domain.ProtocolStreak{
		HabitID: habit.ID,
		Name:    habit.Name,
		Streak:  streak,
	}, nil
}

func (s *dashboardService) Level(ctx context.Context, userID uuid.UUID) (*domain.Level, error) {
	tracer := otel.Tracer("zenith-api/dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.Level",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.logRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	level := analytics.ComputeLevel(analytics.TotalCompletions(logs))
	span.SetAttributes(attribute.Int("level.xp", level.XP))
	return &level, nil
}
