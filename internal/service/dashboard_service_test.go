package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
)

type analyticsFixture struct {
	users  *MockUserRepository
	habits *MockHabitRepository
	logs   *MockHabitLogRepository
}

func newAnalyticsFixture() *analyticsFixture {
	users := NewMockUserRepository()
	logs := NewMockHabitLogRepository()
	return &analyticsFixture{
		users:  users,
		habits: NewMockHabitRepository(users, logs),
		logs:   logs,
	}
}

func (f *analyticsFixture) addHabit(userID uuid.UUID, name, scheduled string) *domain.Habit {
	h := &domain.Habit{ID: uuid.New(), UserID: userID, Name: name, IsActive: true, Archetype: domain.ArchetypeMental}
	if scheduled != "" {
		h.ScheduledTime = strPtr(scheduled)
	}
	_ = f.habits.Create(context.Background(), h)
	return h
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDashboardService_Dashboard_UsesUserTimezone(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("Asia/Tokyo")
	habit := f.addHabit(user.ID, "Workout", "")
	f.logs.add(user.ID, habit.ID, "2024-01-15", true)

	svc := NewDashboardService(f.users, f.habits, f.logs).(*dashboardService)
	// 2024-01-14 20:00 UTC is already 2024-01-15 05:00 in Tokyo
	svc.now = fixedClock(time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC))

	dashboard, err := svc.Dashboard(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Dashboard() unexpected error: %v", err)
	}
	if dashboard.Date != "2024-01-15" {
		t.Errorf("Date = %s, want 2024-01-15", dashboard.Date)
	}
	if dashboard.DailyCompletion != 100 {
		t.Errorf("DailyCompletion = %v, want 100", dashboard.DailyCompletion)
	}
	if dashboard.MaxStreak != 1 || dashboard.Level.XP != 10 {
		t.Errorf("unexpected streak/level: %d / %+v", dashboard.MaxStreak, dashboard.Level)
	}
}

func TestDashboardService_Dashboard_UnknownUser(t *testing.T) {
	f := newAnalyticsFixture()
	svc := NewDashboardService(f.users, f.habits, f.logs)
	if _, err := svc.Dashboard(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDashboardService_Streak(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("UTC")
	habit := f.addHabit(user.ID, "Reading", "21:00")
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"} {
		f.logs.add(user.ID, habit.ID, d, true)
	}

	svc := NewDashboardService(f.users, f.habits, f.logs).(*dashboardService)
	svc.now = fixedClock(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))

	streak, err := svc.Streak(context.Background(), user.ID, habit.ID)
	if err != nil {
		t.Fatalf("Streak() unexpected error: %v", err)
	}
	if streak.Current != 1 || streak.Longest != 3 || streak.Name != "Reading" {
		t.Errorf("unexpected streak: %+v", streak)
	}

	if _, err := svc.Streak(context.Background(), user.ID, uuid.New()); !errors.Is(err, domain.ErrProtocolNotFound) {
		t.Errorf("expected ErrProtocolNotFound, got %v", err)
	}
}

func TestDashboardService_Level(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("UTC")
	habit := f.addHabit(user.ID, "Workout", "")
	for d := 1; d <= 9; d++ {
		f.logs.add(user.ID, habit.ID, time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), d != 9)
	}

	svc := NewDashboardService(f.users, f.habits, f.logs)
	level, err := svc.Level(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Level() unexpected error: %v", err)
	}
	if level.XP != 80 || level.Rank != "Initiate" || level.NextRank != "Operative" {
		t.Errorf("unexpected level: %+v", level)
	}

	if _, err := svc.Level(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// addHabitCreatedAt stores a protocol with an explicit creation time so tests
// can insert rows in a different order than they were created.
func (f *analyticsFixture) addHabitCreatedAt(userID uuid.UUID, name, scheduled string, createdAt time.Time) *domain.Habit {
	h := &domain.Habit{ID: uuid.New(), UserID: userID, Name: name, IsActive: true, Archetype: domain.ArchetypeMental, CreatedAt: createdAt}
	if scheduled != "" {
		h.ScheduledTime = strPtr(scheduled)
	}
	_ = f.habits.Create(context.Background(), h)
	return h
}

func TestDashboardService_Dashboard_TiesFollowDisplayOrder(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("UTC")
	base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	// Inserted newest first; equal windows and equal streaks
	second := f.addHabitCreatedAt(user.ID, "Second", "21:00", base.Add(time.Hour))
	first := f.addHabitCreatedAt(user.ID, "First", "21:00", base)
	for _, h := range []*domain.Habit{second, first} {
		f.logs.add(user.ID, h.ID, "2024-01-09", true)
		f.logs.add(user.ID, h.ID, "2024-01-10", true)
	}

	svc := NewDashboardService(f.users, f.habits, f.logs).(*dashboardService)
	svc.now = fixedClock(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	for run := 0; run < 3; run++ {
		dashboard, err := svc.Dashboard(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("Dashboard() unexpected error: %v", err)
		}
		if len(dashboard.Streaks) != 2 || dashboard.Streaks[0].Name != "First" || dashboard.Streaks[1].Name != "Second" {
			t.Fatalf("streak ranking = %+v, want First then Second", dashboard.Streaks)
		}
		if dashboard.Upcoming == nil || dashboard.Upcoming.Name != "First" {
			t.Fatalf("Upcoming = %+v, want First", dashboard.Upcoming)
		}
	}
}
