package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
)

const (
	// SeriesDays is the window of the dashboard bar chart.
	SeriesDays = 14
	// HeatmapDays is the window of the dashboard heat map.
	HeatmapDays = 28
	// RecentActivityLimit caps the recent-activity feed.
	RecentActivityLimit = 10

	// UnknownProtocol names activity whose protocol no longer exists.
	UnknownProtocol = "UNKNOWN"

	activityStatusSuccess = "SUCCESS"
	activityTextPrefix    = "PROTOCOL_EXECUTED: "
)

// Snapshot is an immutable view of one user's protocols and logs.
type Snapshot struct {
	Habits []domain.Habit
	Logs   []domain.HabitLog
}

// ActiveHabits returns the protocols currently being tracked, in snapshot order.
func (s Snapshot) ActiveHabits() []domain.Habit {
	var active []domain.Habit
	for _, h := range s.Habits {
		if h.IsActive {
			active = append(active, h)
		}
	}
	return active
}

// completionsByDate counts completed logs per day key.
func (s Snapshot) completionsByDate() map[string]int {
	counts := make(map[string]int)
	for _, log := range s.Logs {
		if log.Completed {
			counts[log.Date]++
		}
	}
	return counts
}

// completionRate is completed/active as a fraction, 0 when nothing is active.
func completionRate(completed, active int) float64 {
	if active == 0 {
		return 0
	}
	return float64(completed) / float64(active)
}

// DailyCompletionRate returns the percentage (0-100) of active protocols completed on day.
func DailyCompletionRate(s Snapshot, day calendar.Day) float64 {
	completed := s.completionsByDate()[day.String()]
	return completionRate(completed, len(s.ActiveHabits())) * 100
}

// TimeSeries returns one point per day for the n days ending with now's day, oldest first.
func TimeSeries(s Snapshot, now time.Time, n int) []domain.DayPoint {
	counts := s.completionsByDate()
	active := len(s.ActiveHabits())

	days := calendar.Range(now, n)
	points := make([]domain.DayPoint, len(days))
	for i, day := range days {
		key := day.String()
		rate := completionRate(counts[key], active)
		points[i] = domain.DayPoint{
			Date:       key,
			Percentage: int(math.Round(rate * 100)),
			Rate:       rate,
		}
	}
	return points
}

// StreakRanking computes the streak of every active protocol, highest current
// streak first. Ties keep snapshot order.
func StreakRanking(s Snapshot, today calendar.Day) []domain.ProtocolStreak {
	active := s.ActiveHabits()
	ranking := make([]domain.ProtocolStreak, len(active))
	for i, h := range active {
		ranking[i] = domain.ProtocolStreak{
			HabitID: h.ID,
			Name:    h.Name,
			Streak:  ComputeStreak(h.ID, s.Logs, today),
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Current > ranking[j].Current
	})
	return ranking
}

// UpcomingProtocol picks the active protocol with the earliest scheduled time
// that is not yet past now's wall clock. It returns nil when none remain today.
func UpcomingProtocol(s Snapshot, now time.Time) *domain.UpcomingProtocol {
	clock := calendar.Clock(now)

	var next *domain.Habit
	for i := range s.Habits {
		h := &s.Habits[i]
		if !h.IsActive || !h.Scheduled() || *h.ScheduledTime < clock {
			continue
		}
		if next == nil || *h.ScheduledTime < *next.ScheduledTime {
			next = h
		}
	}
	if next == nil {
		return nil
	}

	upcoming := &domain.UpcomingProtocol{
		HabitID:       next.ID,
		Name:          next.Name,
		ScheduledTime: *next.ScheduledTime,
	}
	if window, err := time.ParseInLocation(calendar.ClockLayout, *next.ScheduledTime, now.Location()); err == nil {
		y, m, d := now.Date()
		target := time.Date(y, m, d, window.Hour(), window.Minute(), 0, 0, now.Location())
		if diff := target.Sub(now); diff > 0 {
			upcoming.SecondsUntil = int64(diff / time.Second)
		}
	}
	return upcoming
}

// RecentActivity returns the most recent completed logs, newest day first,
// each resolved to its protocol's name.
func RecentActivity(s Snapshot) []domain.ActivityEvent {
	names := make(map[uuid.UUID]string, len(s.Habits))
	for _, h := range s.Habits {
		names[h.ID] = h.Name
	}

	type dated struct {
		day calendar.Day
		log domain.HabitLog
	}
	var completed []dated
	for _, log := range s.Logs {
		if !log.Completed {
			continue
		}
		day, err := calendar.ParseDay(log.Date)
		if err != nil {
			continue
		}
		completed = append(completed, dated{day: day, log: log})
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].day.After(completed[j].day)
	})
	if len(completed) > RecentActivityLimit {
		completed = completed[:RecentActivityLimit]
	}

	events := make([]domain.ActivityEvent, len(completed))
	for i, c := range completed {
		name, ok := names[c.log.HabitID]
		if !ok {
			name = UnknownProtocol
		}
		events[i] = domain.ActivityEvent{
			ID:        c.log.ID,
			HabitID:   c.log.HabitID,
			HabitName: name,
			Text:      activityTextPrefix + name,
			Date:      c.log.Date,
			Status:    activityStatusSuccess,
		}
	}
	return events
}

// BuildDashboard computes every dashboard view for now, which must already be
// expressed in the user's timezone.
func BuildDashboard(s Snapshot, now time.Time) domain.Dashboard {
	today := calendar.Today(now)
	streaks := StreakRanking(s, today)

	maxStreak := 0
	for _, st := range streaks {
		maxStreak = max(maxStreak, st.Current)
	}

	return domain.Dashboard{
		Date:            today.String(),
		DailyCompletion: DailyCompletionRate(s, today),
		ActiveProtocols: len(s.ActiveHabits()),
		Series:          TimeSeries(s, now, SeriesDays),
		Heatmap:         TimeSeries(s, now, HeatmapDays),
		Streaks:         streaks,
		MaxStreak:       maxStreak,
		Upcoming:        UpcomingProtocol(s, now),
		Recent:          RecentActivity(s),
		Level:           ComputeLevel(TotalCompletions(s.Logs)),
	}
}
