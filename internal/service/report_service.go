package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/zenith/internal/analytics"
	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReportService generates and stores monthly reports.
type ReportService interface {
	// Generate summarizes monthKey (YYYY-MM, empty for the current month in the
	// user's timezone) and stores the result. It returns nil without error when
	// there is nothing to report. Every call stores a new report.
	Generate(ctx context.Context, userID uuid.UUID, monthKey string) (*domain.MonthlyReport, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error)
}

type reportService struct {
	snapshotLoader
	repo repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(
	repo repository.ReportRepository,
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
) ReportService {
	return &reportService{
		snapshotLoader: snapshotLoader{
			userRepo:  userRepo,
			habitRepo: habitRepo,
			logRepo:   logRepo,
			now:       time.Now,
		},
		repo: repo,
	}
}

func (s *reportService) Generate(ctx context.Context, userID uuid.UUID, monthKey string) (*domain.MonthlyReport, error) {
	tracer := otel.Tracer("zenith-api/reports")
	ctx, span := tracer.Start(ctx, "ReportService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.localNow(user)
	month := calendar.CurrentMonth(now)
	if monthKey != "" {
		month, err = calendar.ParseMonth(monthKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	span.SetAttributes(attribute.String("report.month", month.String()))

	report := analytics.GenerateReport(snapshot.Habits, snapshot.Logs, month)
	if report == nil {
		span.SetAttributes(attribute.Bool("report.empty", true))
		return nil, nil
	}

	report.ID = uuid.New()
	report.UserID = userID
	report.CreatedAt = now.UTC()

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	logger.Info("Monthly report stored",
		"user_id", userID,
		"month", report.Month,
		"avg_completion_rate", report.AvgCompletionRate,
	)
	return report, nil
}

func (s *reportService) List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	reports, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []domain.MonthlyReport{}
	}
	return reports, nil
}
