package analytics

import (
	"math"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
)

// habitMonthStats is one protocol's performance within a month.
type habitMonthStats struct {
	name    string
	rate    float64
	longest int
}

// MonthLogs returns the logs dated within month.
func MonthLogs(logs []domain.HabitLog, month calendar.Month) []domain.HabitLog {
	var out []domain.HabitLog
	for _, log := range logs {
		day, err := calendar.ParseDay(log.Date)
		if err != nil || !month.Contains(day) {
			continue
		}
		out = append(out, log)
	}
	return out
}

// GenerateReport summarizes month. It returns nil when there are no protocols
// or no logs in the month. The returned report has no identity, owner or
// creation time; persisting it is the caller's job.
func GenerateReport(habits []domain.Habit, logs []domain.HabitLog, month calendar.Month) *domain.MonthlyReport {
	monthLogs := MonthLogs(logs, month)
	if len(habits) == 0 || len(monthLogs) == 0 {
		return nil
	}

	totalDays := calendar.DaysInMonth(month)

	stats := make([]habitMonthStats, len(habits))
	for i, h := range habits {
		completed := 0
		for _, log := range monthLogs {
			if log.HabitID == h.ID && log.Completed {
				completed++
			}
		}
		stats[i] = habitMonthStats{
			name:    h.Name,
			rate:    float64(completed) / float64(totalDays) * 100,
			longest: longestStreak(h.ID, monthLogs),
		}
	}

	best, worst := stats[0], stats[0]
	sum := 0.0
	maxStreak := 0
	for _, st := range stats {
		if st.rate > best.rate {
			best = st
		}
		if st.rate < worst.rate {
			worst = st
		}
		sum += st.rate
		maxStreak = max(maxStreak, st.longest)
	}

	return &domain.MonthlyReport{
		Month:             month.String(),
		TotalDays:         totalDays,
		PerfectDaysCount:  perfectDays(monthLogs, len(habits)),
		AvgCompletionRate: int(math.Round(sum / float64(len(stats)))),
		BestHabit:         best.name,
		WorstHabit:        worst.name,
		LongestStreak:     maxStreak,
	}
}

// perfectDays counts dates with at least habitCount logs, all of them completed.
// A day where some protocols were never logged is never perfect.
func perfectDays(logs []domain.HabitLog, habitCount int) int {
	type dayTally struct {
		logged  int
		allDone bool
	}
	tallies := make(map[string]*dayTally)
	for _, log := range logs {
		t, ok := tallies[log.Date]
		if !ok {
			t = &dayTally{allDone: true}
			tallies[log.Date] = t
		}
		t.logged++
		t.allDone = t.allDone && log.Completed
	}

	perfect := 0
	for _, t := range tallies {
		if t.logged >= habitCount && t.allDone {
			perfect++
		}
	}
	return perfect
}
