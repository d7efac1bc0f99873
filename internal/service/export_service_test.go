package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
)

func TestExportService_Export(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("Europe/Prague")
	habit := f.addHabit(user.ID, "Workout", "08:00")
	f.logs.add(user.ID, habit.ID, "2024-01-01", true)
	f.logs.add(uuid.New(), habit.ID, "2024-01-01", true)

	svc := NewExportService(f.users, f.habits, f.logs).(*exportService)
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	export, err := svc.Export(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if export.User.ID != user.ID || export.User.Timezone != "Europe/Prague" {
		t.Errorf("unexpected user: %+v", export.User)
	}
	if len(export.Habits) != 1 || len(export.Logs) != 1 {
		t.Errorf("expected only the user's data, got %d habits %d logs", len(export.Habits), len(export.Logs))
	}
	if !export.ExportedAt.Equal(now) {
		t.Errorf("ExportedAt = %v, want %v", export.ExportedAt, now)
	}
}

func TestExportService_Export_EmptyCollections(t *testing.T) {
	f := newAnalyticsFixture()
	user := f.users.addUser("UTC")
	svc := NewExportService(f.users, f.habits, f.logs)

	export, err := svc.Export(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if export.Habits == nil || export.Logs == nil {
		t.Fatal("empty collections should serialize as [] not null")
	}

	if _, err := svc.Export(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
