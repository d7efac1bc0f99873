package domain

import (
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestSortForDisplay(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	habits := []Habit{
		{Name: "unscheduled-late", CreatedAt: base.Add(2 * time.Hour)},
		{Name: "evening", ScheduledTime: strPtr("21:00"), CreatedAt: base},
		{Name: "unscheduled-early", CreatedAt: base.Add(time.Hour)},
		{Name: "morning", ScheduledTime: strPtr("06:30"), CreatedAt: base.Add(3 * time.Hour)},
		{Name: "empty-schedule", ScheduledTime: strPtr(""), CreatedAt: base.Add(4 * time.Hour)},
	}

	SortForDisplay(habits)

	want := []string{"morning", "evening", "unscheduled-early", "unscheduled-late", "empty-schedule"}
	for i, h := range habits {
		if h.Name != want[i] {
			t.Fatalf("position %d: got %q, want %q (full order %v)", i, h.Name, want[i], names(habits))
		}
	}
}

func TestSortForDisplay_TiesIgnoreInputOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	third := uuid.MustParse("00000000-0000-0000-0000-000000000003")

	forward := []Habit{
		{ID: first, Name: "a", ScheduledTime: strPtr("07:00"), CreatedAt: base.Add(time.Hour)},
		{ID: second, Name: "b", ScheduledTime: strPtr("07:00"), CreatedAt: base},
		{ID: third, Name: "c", CreatedAt: base},
		{ID: first, Name: "d", CreatedAt: base},
	}
	reversed := make([]Habit, len(forward))
	for i, h := range forward {
		reversed[len(forward)-1-i] = h
	}

	SortForDisplay(forward)
	SortForDisplay(reversed)

	want := []string{"b", "a", "d", "c"}
	for i := range want {
		if forward[i].Name != want[i] || reversed[i].Name != want[i] {
			t.Fatalf("position %d: got %v and %v, want %v", i, names(forward), names(reversed), want)
		}
	}
}

func TestDefaultProtocolSet_DistinctCreatedAt(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	habits := DefaultProtocolSet(uuid.New(), at)
	if len(habits) != len(DefaultProtocols) {
		t.Fatalf("expected %d protocols, got %d", len(DefaultProtocols), len(habits))
	}
	for i := 1; i < len(habits); i++ {
		if !habits[i-1].CreatedAt.Before(habits[i].CreatedAt) {
			t.Fatalf("CreatedAt not strictly increasing at %d: %v", i, habits[i].CreatedAt)
		}
		if habits[i].Name != DefaultProtocols[i].Name {
			t.Errorf("position %d = %q, want %q", i, habits[i].Name, DefaultProtocols[i].Name)
		}
	}
}

func names(habits []Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.Name
	}
	return out
}

func TestHabitLog_Merge(t *testing.T) {
	energy := 4
	log := HabitLog{Completed: true, Note: strPtr("kept")}

	completed := false
	log.Merge(&UpsertHabitLogRequest{Completed: &completed})
	if log.Completed {
		t.Error("expected completed to be overwritten")
	}
	if log.Note == nil || *log.Note != "kept" {
		t.Error("expected note to survive a completion-only update")
	}

	log.Merge(&UpsertHabitLogRequest{Note: strPtr("new"), EnergyLevel: &energy})
	if *log.Note != "new" || log.EnergyLevel == nil || *log.EnergyLevel != 4 {
		t.Errorf("note/energy not merged: %+v", log)
	}
	if log.Completed {
		t.Error("note-only update must not touch completion")
	}
}

func TestUser_Location(t *testing.T) {
	tests := []struct {
		tz   string
		want string
	}{
		{"Europe/Prague", "Europe/Prague"},
		{"", "UTC"},
		{"Not/AZone", "UTC"},
	}
	for _, tt := range tests {
		u := User{ID: uuid.New(), Timezone: tt.tz}
		if got := u.Location().String(); got != tt.want {
			t.Errorf("Location(%q) = %s, want %s", tt.tz, got, tt.want)
		}
	}
}

func TestDefaultProtocols(t *testing.T) {
	userID := uuid.New()
	if len(DefaultProtocols) != 9 {
		t.Fatalf("expected 9 default protocols, got %d", len(DefaultProtocols))
	}
	for _, tmpl := range DefaultProtocols {
		h := tmpl.NewHabit(userID)
		if h.UserID != userID || !h.IsActive || h.AlarmsEnabled {
			t.Errorf("unexpected defaults for %q: %+v", tmpl.Name, h)
		}
		if !h.Scheduled() {
			t.Errorf("expected %q to be scheduled", tmpl.Name)
		}
	}
}
