package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 40

// Users are the demo accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Prague"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
}

// Run seeds the database with demo users, the default protocol set and
// sample logs. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Habit{}, &domain.HabitLog{}, &domain.MonthlyReport{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	for _, user := range Users {
		user.ProtocolsInitialized = true
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		habits, err := seedProtocols(db, user)
		if err != nil {
			return err
		}

		logs := PlanLogs(user, habits, now, seededDays, rng)
		if len(logs) == 0 {
			continue
		}
		// Existing (habit, date) logs win so reseeding keeps user edits
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&logs, 200).Error; err != nil {
			return fmt.Errorf("failed to create logs for %s: %w", user.ID, err)
		}
		logger.Info("Seeded user", "user_id", user.ID, "timezone", user.Timezone, "protocols", len(habits), "logs", len(logs))
	}

	logger.Info("Seed completed")
	return nil
}

func seedProtocols(db *gorm.DB, user domain.User) ([]domain.Habit, error) {
	habits := make([]domain.Habit, 0, len(domain.DefaultProtocols))
	for _, habit := range domain.DefaultProtocolSet(user.ID, time.Now().UTC()) {
		if err := db.Where("user_id = ? AND name = ?", user.ID, habit.Name).FirstOrCreate(&habit).Error; err != nil {
			return nil, fmt.Errorf("failed to create protocol %q: %w", habit.Name, err)
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

// PlanLogs builds sample logs for the last days days ending today in the
// user's timezone. Each protocol gets its own completion bias so the
// dashboard shows a spread of streaks.
func PlanLogs(user domain.User, habits []domain.Habit, now time.Time, days int, rng *rand.Rand) []domain.HabitLog {
	var logs []domain.HabitLog
	local := now.In(user.Location())

	for i, habit := range habits {
		bias := 0.5 + 0.45*float64(len(habits)-i)/float64(len(habits))
		for _, day := range calendar.Range(local, days) {
			// Leave some days unlogged
			if rng.Float64() < 0.15 {
				continue
			}
			log := domain.HabitLog{
				ID:        uuid.New(),
				UserID:    user.ID,
				HabitID:   habit.ID,
				Date:      day.String(),
				Completed: rng.Float64() < bias,
			}
			if rng.Float64() < 0.3 {
				energy := 1 + rng.Intn(5)
				log.EnergyLevel = &energy
			}
			logs = append(logs, log)
		}
	}
	return logs
}
