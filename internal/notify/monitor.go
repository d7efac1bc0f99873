// Package notify raises alarms when a protocol's scheduled window opens.
package notify

import (
	"context"
	"time"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/logger"
)

// DefaultInterval is how often the monitor scans for open windows.
const DefaultInterval = 10 * time.Second

// AlarmSource lists active, alarm-enabled, scheduled protocols with their
// owners loaded.
type AlarmSource interface {
	ListAlarmed(ctx context.Context) ([]domain.Habit, error)
}

// Monitor scans protocol windows at one-minute resolution. Each
// (protocol, day, minute) is signaled at most once, however many ticks land
// inside that minute.
type Monitor struct {
	source   AlarmSource
	signaler Signaler
	dedup    *DedupSet
	interval time.Duration
	now      func() time.Time
}

func NewMonitor(source AlarmSource, signaler Signaler, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		source:   source,
		signaler: signaler,
		dedup:    NewDedupSet(DefaultDedupCapacity),
		interval: interval,
		now:      time.Now,
	}
}

// Run ticks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	logger.Info("Notification monitor started", "interval", m.interval)
	for {
		if _, err := m.Tick(ctx, m.now()); err != nil && ctx.Err() == nil {
			logger.Warn("Notification scan failed", "error", err)
		}

		select {
		case <-ctx.Done():
			logger.Info("Notification monitor stopped")
			return
		case <-ticker.C:
		}
	}
}

// Tick signals every protocol whose window opens at now's minute in its
// owner's timezone and returns how many signals were raised.
func (m *Monitor) Tick(ctx context.Context, now time.Time) (int, error) {
	habits, err := m.source.ListAlarmed(ctx)
	if err != nil {
		return 0, err
	}

	raised := 0
	for i := range habits {
		h := &habits[i]
		if !h.IsActive || !h.AlarmsEnabled || !h.Scheduled() {
			continue
		}

		local := now.In(h.User.Location())
		clock := calendar.Clock(local)
		if *h.ScheduledTime != clock {
			continue
		}

		key := Key(h.ID, calendar.DayOf(local), clock)
		if !m.dedup.Mark(key) {
			continue
		}

		signal := Signal{
			Key:       key,
			UserID:    h.UserID,
			HabitID:   h.ID,
			HabitName: h.Name,
			Title:     AlertTitle,
			Body:      AlertBody(h.Name),
			At:        now,
		}
		// A failed delivery stays marked; the window is not retried
		if err := m.signaler.Signal(ctx, signal); err != nil {
			logger.Warn("Signal delivery failed", "key", key, "error", err)
			continue
		}
		raised++
	}

	return raised, nil
}
