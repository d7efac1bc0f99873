package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
)

func newHabitFixture() (*MockUserRepository, *MockHabitRepository, *MockHabitLogRepository, HabitService) {
	users := NewMockUserRepository()
	logs := NewMockHabitLogRepository()
	habits := NewMockHabitRepository(users, logs)
	return users, habits, logs, NewHabitService(habits, users)
}

func TestHabitService_Create(t *testing.T) {
	users, _, _, svc := newHabitFixture()
	user := users.addUser("UTC")

	tests := []struct {
		name          string
		req           *domain.CreateHabitRequest
		wantArchetype domain.Archetype
		wantSchedule  *string
		wantErr       error
	}{
		{
			name:          "defaults archetype to discipline",
			req:           &domain.CreateHabitRequest{Name: "Cold shower"},
			wantArchetype: domain.ArchetypeDiscipline,
		},
		{
			name:          "keeps schedule and archetype",
			req:           &domain.CreateHabitRequest{Name: "Run", Archetype: domain.ArchetypePhysical, ScheduledTime: strPtr("06:30")},
			wantArchetype: domain.ArchetypePhysical,
			wantSchedule:  strPtr("06:30"),
		},
		{
			name:          "blank schedule becomes unscheduled",
			req:           &domain.CreateHabitRequest{Name: "Journal", ScheduledTime: strPtr(" ")},
			wantArchetype: domain.ArchetypeDiscipline,
		},
		{
			name:    "whitespace name rejected",
			req:     &domain.CreateHabitRequest{Name: "   "},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habit, err := svc.Create(context.Background(), user.ID, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if !habit.IsActive || habit.AlarmsEnabled {
				t.Errorf("new protocol should be active with alarms off: %+v", habit)
			}
			if habit.Archetype != tt.wantArchetype {
				t.Errorf("Archetype = %s, want %s", habit.Archetype, tt.wantArchetype)
			}
			if (habit.ScheduledTime == nil) != (tt.wantSchedule == nil) ||
				(habit.ScheduledTime != nil && *habit.ScheduledTime != *tt.wantSchedule) {
				t.Errorf("ScheduledTime = %v, want %v", habit.ScheduledTime, tt.wantSchedule)
			}
		})
	}
}

func TestHabitService_Create_UnknownUser(t *testing.T) {
	_, _, _, svc := newHabitFixture()
	_, err := svc.Create(context.Background(), uuid.New(), &domain.CreateHabitRequest{Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHabitService_List_SeedsDefaultsOnce(t *testing.T) {
	users, habits, _, svc := newHabitFixture()
	user := users.addUser("UTC")
	ctx := context.Background()

	first, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(first) != len(domain.DefaultProtocols) {
		t.Fatalf("expected %d default protocols, got %d", len(domain.DefaultProtocols), len(first))
	}
	if !user.ProtocolsInitialized {
		t.Fatal("user should be marked initialized after seeding")
	}
	for i := 1; i < len(first); i++ {
		if *first[i-1].ScheduledTime > *first[i].ScheduledTime {
			t.Fatalf("protocols not in display order at %d", i)
		}
	}

	seen := make(map[time.Time]bool)
	for _, h := range habits.habits {
		if seen[h.CreatedAt] {
			t.Fatalf("seeded protocols share created_at %v", h.CreatedAt)
		}
		seen[h.CreatedAt] = true
	}

	second, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(second) != len(first) || len(habits.habits) != len(first) {
		t.Fatalf("defaults seeded twice: %d stored", len(habits.habits))
	}
}

func TestHabitService_List_NoSeedWhenUserHasProtocols(t *testing.T) {
	users, _, _, svc := newHabitFixture()
	user := users.addUser("UTC")
	ctx := context.Background()

	if _, err := svc.Create(ctx, user.ID, &domain.CreateHabitRequest{Name: "Mine"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	list, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Mine" {
		t.Fatalf("expected only the user's protocol, got %+v", list)
	}
	if !user.ProtocolsInitialized {
		t.Fatal("user should be marked initialized")
	}

	// Deleting the only protocol must not bring the defaults in later
	if err := svc.Delete(ctx, user.ID, list[0].ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	list, err = svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no protocols, got %d", len(list))
	}
}

func TestHabitService_ClearAll_DoesNotRespawnDefaults(t *testing.T) {
	users, _, logs, svc := newHabitFixture()
	user := users.addUser("UTC")
	ctx := context.Background()

	seeded, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	logs.add(user.ID, seeded[0].ID, "2024-01-01", true)

	if err := svc.ClearAll(ctx, user.ID); err != nil {
		t.Fatalf("ClearAll() unexpected error: %v", err)
	}
	if len(logs.logs) != 0 {
		t.Errorf("expected logs to be cleared, %d remain", len(logs.logs))
	}

	after, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("defaults respawned after clear: %d protocols", len(after))
	}
}

func TestHabitService_Update(t *testing.T) {
	users, _, _, svc := newHabitFixture()
	user := users.addUser("UTC")
	ctx := context.Background()

	habit, err := svc.Create(ctx, user.ID, &domain.CreateHabitRequest{Name: "Read", ScheduledTime: strPtr("21:00")})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, user.ID, habit.ID, &domain.UpdateHabitRequest{
		IsActive:      boolPtr(false),
		AlarmsEnabled: boolPtr(true),
		Name:          strPtr("Read fiction"),
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.IsActive || !updated.AlarmsEnabled || updated.Name != "Read fiction" {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.ScheduledTime == nil || *updated.ScheduledTime != "21:00" {
		t.Errorf("absent schedule should be kept, got %v", updated.ScheduledTime)
	}

	cleared, err := svc.Update(ctx, user.ID, habit.ID, &domain.UpdateHabitRequest{ClearSchedule: true})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if cleared.ScheduledTime != nil {
		t.Errorf("schedule should be cleared, got %v", *cleared.ScheduledTime)
	}

	if _, err := svc.Update(ctx, user.ID, habit.ID, &domain.UpdateHabitRequest{Name: strPtr("  ")}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank name, got %v", err)
	}

	other := users.addUser("UTC")
	if _, err := svc.Update(ctx, other.ID, habit.ID, &domain.UpdateHabitRequest{}); !errors.Is(err, domain.ErrProtocolNotFound) {
		t.Errorf("expected ErrProtocolNotFound for foreign protocol, got %v", err)
	}
}

func TestHabitService_Delete_RemovesLogs(t *testing.T) {
	users, _, logs, svc := newHabitFixture()
	user := users.addUser("UTC")
	ctx := context.Background()

	keep, _ := svc.Create(ctx, user.ID, &domain.CreateHabitRequest{Name: "Keep"})
	drop, _ := svc.Create(ctx, user.ID, &domain.CreateHabitRequest{Name: "Drop"})
	logs.add(user.ID, keep.ID, "2024-01-01", true)
	logs.add(user.ID, drop.ID, "2024-01-01", true)

	if err := svc.Delete(ctx, user.ID, drop.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if len(logs.logs) != 1 {
		t.Fatalf("expected 1 remaining log, got %d", len(logs.logs))
	}
	if err := svc.Delete(ctx, user.ID, drop.ID); !errors.Is(err, domain.ErrProtocolNotFound) {
		t.Fatalf("expected ErrProtocolNotFound on second delete, got %v", err)
	}
}
