package domain

import (
	"time"

	"github.com/google/uuid"
)

// HabitLog is one day's completion record for one protocol. At most one log
// exists per (user, habit, date); writes for the same key update it in place.
type HabitLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_logs_key,priority:1" json:"user_id"`
	HabitID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_logs_key,priority:2" json:"habit_id"`
	// Calendar day in the owner's timezone (YYYY-MM-DD)
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_habit_logs_key,priority:3;index:idx_habit_logs_date,sort:desc" json:"date"`
	Completed   bool      `gorm:"not null" json:"completed"`
	Note        *string   `gorm:"type:text" json:"note,omitempty"`
	EnergyLevel *int      `gorm:"type:smallint" json:"energy_level,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Habit Habit `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HabitLog) TableName() string {
	return "habit_logs"
}

// UpsertHabitLogRequest is the request body for recording a protocol's day.
// @Description Create or update the log for (protocol, date). Absent fields keep their stored value.
type UpsertHabitLogRequest struct {
	// Protocol ID
	HabitID uuid.UUID `json:"habit_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Calendar day in the user's timezone
	Date string `json:"date" validate:"required,daykey" example:"2024-01-15"`
	// Completion flag (defaults to false for a new log)
	Completed *bool `json:"completed,omitempty" example:"true"`
	// Free-form note
	Note *string `json:"note,omitempty" validate:"omitempty,max=2000" example:"Felt sharp today"`
	// Self-reported energy 1-5
	EnergyLevel *int `json:"energy_level,omitempty" validate:"omitempty,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
}

// HabitLogFilter contains filter parameters for listing logs
type HabitLogFilter struct {
	HabitID *uuid.UUID
	From    string
	To      string
	Limit   int
	Cursor  string
}

// HabitLogListResponse is the response body for listing logs.
// @Description Paginated list of protocol logs, newest day first.
type HabitLogListResponse struct {
	Data       []HabitLog         `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// Merge applies the request's present fields onto l.
func (l *HabitLog) Merge(req *UpsertHabitLogRequest) {
	if req.Completed != nil {
		l.Completed = *req.Completed
	}
	if req.Note != nil {
		l.Note = req.Note
	}
	if req.EnergyLevel != nil {
		l.EnergyLevel = req.EnergyLevel
	}
}
