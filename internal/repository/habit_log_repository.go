package repository

import (
	"context"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitLogRepository interface {
	GetByKey(ctx context.Context, userID, habitID uuid.UUID, date string) (*domain.HabitLog, error)
	Insert(ctx context.Context, log *domain.HabitLog) (bool, error)
	Upsert(ctx context.Context, log *domain.HabitLog) error
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HabitLog, error)
	ListSince(ctx context.Context, userID uuid.UUID, from string) ([]domain.HabitLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) ([]domain.HabitLog, error)
}

type habitLogRepository struct {
	db *gorm.DB
}

func NewHabitLogRepository(db *gorm.DB) HabitLogRepository {
	return &habitLogRepository{db: db}
}

// GetByKey returns nil without error when no log exists for the key.
func (r *habitLogRepository) GetByKey(ctx context.Context, userID, habitID uuid.UUID, date string) (*domain.HabitLog, error) {
	var log domain.HabitLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, habitID, date).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// Insert stores a new log unless one already exists for (user, habit, date).
// It reports false, leaving the stored row untouched, when the key is taken.
func (r *habitLogRepository) Insert(ctx context.Context, log *domain.HabitLog) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(log)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Upsert inserts the log or, when (user, habit, date) already exists,
// overwrites its mutable fields in place.
func (r *habitLogRepository) Upsert(ctx context.Context, log *domain.HabitLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "habit_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "note", "energy_level", "updated_at"}),
		}).
		Create(log).Error
}

func (r *habitLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HabitLog, error) {
	var logs []domain.HabitLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// ListSince returns logs dated on or after from (YYYY-MM-DD), oldest first.
func (r *habitLogRepository) ListSince(ctx context.Context, userID uuid.UUID, from string) ([]domain.HabitLog, error) {
	var logs []domain.HabitLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func (r *habitLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) ([]domain.HabitLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC")

	if filter.HabitID != nil {
		query = query.Where("habit_id = ?", *filter.HabitID)
	}
	// Day keys sort lexically in calendar order
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		query = query.Where(
			"(date < ?) OR (date = ? AND id < ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.HabitLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}
