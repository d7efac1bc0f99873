package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withURLParams attaches chi route params to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockHabitService is a mock implementation of HabitService
type MockHabitService struct {
	createFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error)
	listFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	updateFunc   func(ctx context.Context, userID, habitID uuid.UUID, req *domain.UpdateHabitRequest) (*domain.Habit, error)
	deleteFunc   func(ctx context.Context, userID, habitID uuid.UUID) error
	clearAllFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockHabitService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Habit{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		Archetype:     domain.ArchetypeDiscipline,
		ScheduledTime: req.ScheduledTime,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockHabitService) List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.Habit{}, nil
}

func (m *MockHabitService) Update(ctx context.Context, userID, habitID uuid.UUID, req *domain.UpdateHabitRequest) (*domain.Habit, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, habitID, req)
	}
	return &domain.Habit{ID: habitID, UserID: userID, Name: "updated", IsActive: true}, nil
}

func (m *MockHabitService) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, habitID)
	}
	return nil
}

func (m *MockHabitService) ClearAll(ctx context.Context, userID uuid.UUID) error {
	if m.clearAllFunc != nil {
		return m.clearAllFunc(ctx, userID)
	}
	return nil
}

// MockHabitLogService is a mock implementation of HabitLogService
type MockHabitLogService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertHabitLogRequest) (*domain.HabitLog, bool, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) (*domain.HabitLogListResponse, error)
}

func (m *MockHabitLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertHabitLogRequest) (*domain.HabitLog, bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	log := &domain.HabitLog{ID: uuid.New(), UserID: userID, HabitID: req.HabitID, Date: req.Date}
	log.Merge(req)
	return log, true, nil
}

func (m *MockHabitLogService) List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) (*domain.HabitLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.HabitLogListResponse{
		Data:       []domain.HabitLog{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	dashboardFunc func(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error)
	streakFunc    func(ctx context.Context, userID, habitID uuid.UUID) (*domain.ProtocolStreak, error)
	levelFunc     func(ctx context.Context, userID uuid.UUID) (*domain.Level, error)
}

func (m *MockDashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, userID)
	}
	return &domain.Dashboard{Date: "2024-01-10"}, nil
}

func (m *MockDashboardService) Streak(ctx context.Context, userID, habitID uuid.UUID) (*domain.ProtocolStreak, error) {
	if m.streakFunc != nil {
		return m.streakFunc(ctx, userID, habitID)
	}
	return &domain.ProtocolStreak{HabitID: habitID}, nil
}

func (m *MockDashboardService) Level(ctx context.Context, userID uuid.UUID) (*domain.Level, error) {
	if m.levelFunc != nil {
		return m.levelFunc(ctx, userID)
	}
	return &domain.Level{Rank: "Initiate", NextRank: "Operative"}, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, monthKey string) (*domain.MonthlyReport, error)
	listFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error)
}

func (m *MockReportService) Generate(ctx context.Context, userID uuid.UUID, monthKey string) (*domain.MonthlyReport, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, monthKey)
	}
	return nil, nil
}

func (m *MockReportService) List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.MonthlyReport{}, nil
}

// MockNarrativeService is a mock implementation of NarrativeService
type MockNarrativeService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
}

func (m *MockNarrativeService) Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.NarrativeResponse{Narrative: "STATUS: NOMINAL", GeneratedAt: time.Now()}, nil
}

func (m *MockNarrativeService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	exportFunc func(ctx context.Context, userID uuid.UUID) (*domain.Export, error)
}

func (m *MockExportService) Export(ctx context.Context, userID uuid.UUID) (*domain.Export, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, userID)
	}
	return &domain.Export{
		User:       domain.UserResponse{ID: userID, Timezone: "UTC"},
		Habits:     []domain.Habit{},
		Logs:       []domain.HabitLog{},
		ExportedAt: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}, nil
}
