// Package analytics derives streaks, experience, dashboard views and monthly
// reports from snapshots of protocols and logs. Everything here is a pure
// function of its arguments: callers fetch the snapshot and inject "now".
package analytics

import (
	"sort"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
)

// dayEntry is a log reduced to what the streak walk needs.
type dayEntry struct {
	day       calendar.Day
	completed bool
}

// habitDays selects the logs of one habit, ordered oldest first.
// Logs whose date is not a valid day key are skipped.
func habitDays(habitID uuid.UUID, logs []domain.HabitLog) []dayEntry {
	var entries []dayEntry
	for _, log := range logs {
		if log.HabitID != habitID {
			continue
		}
		day, err := calendar.ParseDay(log.Date)
		if err != nil {
			continue
		}
		entries = append(entries, dayEntry{day: day, completed: log.Completed})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].day.Before(entries[j].day)
	})
	return entries
}

// walkStreak returns the run length at the end of entries and the longest run seen.
// A completion directly after the previous logged day extends the run, any other
// completion starts a new run of 1, and an explicit failure resets it to 0.
func walkStreak(entries []dayEntry) (running, longest int) {
	for i, e := range entries {
		switch {
		case !e.completed:
			running = 0
		case i > 0 && calendar.DaysBetween(entries[i-1].day, e.day) == 1:
			running++
		default:
			running = 1
		}
		longest = max(longest, running)
	}
	return running, longest
}

// ComputeStreak returns the current and longest streak for habitID.
// The current streak is only alive if the last log is dated today or yesterday.
func ComputeStreak(habitID uuid.UUID, logs []domain.HabitLog, today calendar.Day) domain.Streak {
	entries := habitDays(habitID, logs)
	if len(entries) == 0 {
		return domain.Streak{}
	}

	running, longest := walkStreak(entries)

	current := 0
	last := entries[len(entries)-1].day
	if last == today || last == today.AddDays(-1) {
		current = running
	}

	return domain.Streak{Current: current, Longest: longest}
}

// longestStreak is ComputeStreak without the liveness check.
func longestStreak(habitID uuid.UUID, logs []domain.HabitLog) int {
	_, longest := walkStreak(habitDays(habitID, logs))
	return longest
}
