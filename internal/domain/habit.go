package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Archetype is the skill category a protocol trains.
// @Description Protocol category used for grouping and display.
type Archetype string

const (
	ArchetypePhysical   Archetype = "PHYSICAL"
	ArchetypeMental     Archetype = "MENTAL"
	ArchetypeTechnical  Archetype = "TECHNICAL"
	ArchetypeSocial     Archetype = "SOCIAL"
	ArchetypeDiscipline Archetype = "DISCIPLINE"
)

// Habit is a recurring protocol tracked once per calendar day.
type Habit struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_habits_user" json:"user_id"`
	Name          string    `gorm:"type:varchar(120);not null" json:"name"`
	Archetype     Archetype `gorm:"type:varchar(16);not null" json:"archetype"`
	ScheduledTime *string   `gorm:"type:varchar(5)" json:"scheduled_time,omitempty"`
	AlarmsEnabled bool      `gorm:"not null" json:"alarms_enabled"`
	IsActive      bool      `gorm:"not null" json:"is_active"`
	IsStrict      bool      `gorm:"not null" json:"is_strict"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}

// Scheduled reports whether the protocol has a daily HH:MM window.
func (h *Habit) Scheduled() bool {
	return h.ScheduledTime != nil && *h.ScheduledTime != ""
}

// CreateHabitRequest is the request body for creating a protocol.
// @Description Request payload for creating a protocol.
type CreateHabitRequest struct {
	// Protocol name
	Name string `json:"name" validate:"required,max=120" example:"Morning routine"`
	// Skill archetype (defaults to DISCIPLINE)
	Archetype Archetype `json:"archetype,omitempty" validate:"omitempty,oneof=PHYSICAL MENTAL TECHNICAL SOCIAL DISCIPLINE" example:"DISCIPLINE" enums:"PHYSICAL,MENTAL,TECHNICAL,SOCIAL,DISCIPLINE"`
	// Optional daily window in 24h HH:MM
	ScheduledTime *string `json:"scheduled_time,omitempty" validate:"omitempty,hhmm" example:"07:00"`
	// Failure-intolerant flag (display only)
	IsStrict bool `json:"is_strict" example:"false"`
	// Raise a notification when the window opens
	AlarmsEnabled bool `json:"alarms_enabled" example:"false"`
}

// UpdateHabitRequest is the request body for updating a protocol. Absent fields are left unchanged.
// @Description Partial update of a protocol.
type UpdateHabitRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=120" example:"Evening reading"`
	ScheduledTime *string `json:"scheduled_time,omitempty" validate:"omitempty,hhmm" example:"21:00"`
	// Remove the scheduled window entirely
	ClearSchedule bool  `json:"clear_schedule,omitempty" example:"false"`
	IsActive      *bool `json:"is_active,omitempty" example:"true"`
	AlarmsEnabled *bool `json:"alarms_enabled,omitempty" example:"true"`
	IsStrict      *bool `json:"is_strict,omitempty" example:"false"`
}

// HabitListResponse is the response body for listing protocols.
// @Description Protocols in display order.
type HabitListResponse struct {
	Data []Habit `json:"data"`
}

// SortForDisplay orders protocols with a scheduled window first (earliest
// window first), then unscheduled ones by creation time. Remaining ties fall
// back to id so the order never depends on how storage returned the rows.
// Analytics that keep "first encountered" on ties read protocols in this order.
func SortForDisplay(habits []Habit) {
	sort.SliceStable(habits, func(i, j int) bool {
		return displayBefore(&habits[i], &habits[j])
	})
}

func displayBefore(a, b *Habit) bool {
	switch {
	case a.Scheduled() && b.Scheduled():
		if *a.ScheduledTime != *b.ScheduledTime {
			return *a.ScheduledTime < *b.ScheduledTime
		}
	case a.Scheduled():
		return true
	case b.Scheduled():
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

// ProtocolTemplate describes one protocol of the default set.
type ProtocolTemplate struct {
	Name          string
	ScheduledTime string
	IsStrict      bool
	Archetype     Archetype
}

// DefaultProtocols is offered to every user the first time they list protocols.
var DefaultProtocols = []ProtocolTemplate{
	{Name: "Wake up at 6 AM", ScheduledTime: "06:00", Archetype: ArchetypePhysical},
	{Name: "Morning routine", ScheduledTime: "07:00", Archetype: ArchetypeDiscipline},
	{Name: "Workout", ScheduledTime: "08:00", Archetype: ArchetypePhysical},
	{Name: "Studying / Deep Work", ScheduledTime: "09:00", Archetype: ArchetypeTechnical},
	{Name: "Meditation", ScheduledTime: "12:30", Archetype: ArchetypeMental},
	{Name: "Social Networking", ScheduledTime: "17:00", Archetype: ArchetypeSocial},
	{Name: "Reading", ScheduledTime: "21:00", Archetype: ArchetypeMental},
	{Name: "No Junk Content", ScheduledTime: "21:30", IsStrict: true, Archetype: ArchetypeDiscipline},
	{Name: "Sleep Protocol", ScheduledTime: "22:00", IsStrict: true, Archetype: ArchetypePhysical},
}

// DefaultProtocolSet builds the default protocols for a user. Each one is
// stamped a microsecond after the previous, the resolution Postgres keeps,
// so a single batch insert still records the template order.
func DefaultProtocolSet(userID uuid.UUID, at time.Time) []Habit {
	habits := make([]Habit, len(DefaultProtocols))
	for i, tmpl := range DefaultProtocols {
		habits[i] = tmpl.NewHabit(userID)
		habits[i].CreatedAt = at.Add(time.Duration(i) * time.Microsecond)
	}
	return habits
}

// NewHabit builds an active protocol from a template.
func (t ProtocolTemplate) NewHabit(userID uuid.UUID) Habit {
	scheduled := t.ScheduledTime
	return Habit{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          t.Name,
		Archetype:     t.Archetype,
		ScheduledTime: &scheduled,
		IsActive:      true,
		IsStrict:      t.IsStrict,
	}
}
