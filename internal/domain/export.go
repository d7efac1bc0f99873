package domain

import "time"

// Export is the user-initiated download of all of a user's data.
// @Description Full structural dump of user, protocols and logs.
type Export struct {
	User       UserResponse `json:"user"`
	Habits     []Habit      `json:"habits"`
	Logs       []HabitLog   `json:"logs"`
	ExportedAt time.Time    `json:"exported_at"`
}
