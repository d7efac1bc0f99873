package domain

import "github.com/google/uuid"

// Streak holds current and longest consecutive-completion runs.
// @Description Streak of consecutive completed days.
type Streak struct {
	// Run still alive today or yesterday
	Current int `json:"current" example:"4"`
	// Longest run ever recorded
	Longest int `json:"longest" example:"12"`
}

// Level is the gamified experience/rank derived from lifetime completions.
// @Description Experience and rank progress.
type Level struct {
	XP       int    `json:"xp" example:"730"`
	Rank     string `json:"rank" example:"Operative"`
	NextRank string `json:"next_rank" example:"Specialist"`
	// Percent of the way to the next rank (100 at max rank)
	Progress float64 `json:"progress" example:"23"`
}

// DayPoint is one day of the completion time series.
// @Description Daily completion for charts.
type DayPoint struct {
	Date string `json:"date" example:"2024-01-15"`
	// Completion percentage, rounded (0-100)
	Percentage int `json:"percentage" example:"67"`
	// Unscaled completion rate (0-1) for heat map intensity
	Rate float64 `json:"rate" example:"0.67"`
}

// ProtocolStreak is one entry of the streak ranking.
// @Description Streak for a single active protocol.
type ProtocolStreak struct {
	HabitID uuid.UUID `json:"habit_id"`
	Name    string    `json:"name" example:"Workout"`
	Streak
}

// ActivityEvent is one entry of the recent-activity feed.
// @Description A completed protocol log.
type ActivityEvent struct {
	ID      uuid.UUID `json:"id"`
	HabitID uuid.UUID `json:"habit_id"`
	// Protocol name, or UNKNOWN if the protocol no longer exists
	HabitName string `json:"habit_name" example:"Workout"`
	Text      string `json:"text" example:"PROTOCOL_EXECUTED: Workout"`
	Date      string `json:"date" example:"2024-01-15"`
	Status    string `json:"status" example:"SUCCESS"`
}

// UpcomingProtocol is the next scheduled protocol later today.
// @Description Next protocol window.
type UpcomingProtocol struct {
	HabitID       uuid.UUID `json:"habit_id"`
	Name          string    `json:"name" example:"Reading"`
	ScheduledTime string    `json:"scheduled_time" example:"21:00"`
	// Seconds until the window opens (0 if it opens this minute)
	SecondsUntil int64 `json:"seconds_until" example:"3600"`
}

// Dashboard is the derived dashboard view for one user.
// @Description Dashboard metrics computed from protocols and logs.
type Dashboard struct {
	Date string `json:"date" example:"2024-01-15"`
	// Completion percentage for today (0-100)
	DailyCompletion float64 `json:"daily_completion" example:"55.6"`
	ActiveProtocols int     `json:"active_protocols" example:"9"`
	// Last 14 days
	Series []DayPoint `json:"series"`
	// Last 28 days
	Heatmap []DayPoint       `json:"heatmap"`
	Streaks []ProtocolStreak `json:"streaks"`
	// Highest current streak among active protocols
	MaxStreak int `json:"max_streak" example:"6"`
	// Nil when no protocol window remains today (standby)
	Upcoming *UpcomingProtocol `json:"upcoming"`
	Recent   []ActivityEvent   `json:"recent"`
	Level    Level             `json:"level"`
}
