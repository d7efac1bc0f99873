package domain

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyReport is a persisted summary of one month of protocol logs.
// Reports are insert-only: generating the same month twice stores two reports.
// @Description Monthly performance summary.
type MonthlyReport struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_user_created" json:"user_id"`
	// Reported month (YYYY-MM)
	Month string `gorm:"type:varchar(7);not null" json:"month" example:"2024-01"`
	// Calendar days in the month
	TotalDays int `gorm:"not null" json:"total_days" example:"31"`
	// Days on which every protocol was logged and completed
	PerfectDaysCount int `gorm:"not null" json:"perfect_days_count" example:"4"`
	// Mean completion rate across protocols, rounded (0-100)
	AvgCompletionRate int `gorm:"not null" json:"avg_completion_rate" example:"62"`
	// Protocol with the highest completion rate
	BestHabit string `gorm:"type:varchar(120);not null" json:"best_habit" example:"Workout"`
	// Protocol with the lowest completion rate
	WorstHabit string `gorm:"type:varchar(120);not null" json:"worst_habit" example:"Reading"`
	// Longest streak achieved within the month
	LongestStreak int       `gorm:"not null" json:"longest_streak" example:"9"`
	CreatedAt     time.Time `gorm:"index:idx_reports_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MonthlyReport) TableName() string {
	return "monthly_reports"
}

// GenerateReportRequest is the request body for generating a monthly report.
// @Description Month to summarize; defaults to the current month in the user's timezone.
type GenerateReportRequest struct {
	Month string `json:"month,omitempty" validate:"omitempty,monthkey" example:"2024-01"`
}

// ReportListResponse is the response body for listing reports.
// @Description Stored monthly reports, newest first.
type ReportListResponse struct {
	Data []MonthlyReport `json:"data"`
}
