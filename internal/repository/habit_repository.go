package repository

import (
	"context"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) error
	CreateBatch(ctx context.Context, habits []domain.Habit) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
	ListAlarmed(ctx context.Context) ([]domain.Habit, error)
}

type habitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *habitRepository) CreateBatch(ctx context.Context, habits []domain.Habit) error {
	if len(habits) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&habits).Error
}

// GetByID only finds protocols owned by userID.
func (r *habitRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	var habit domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&habit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProtocolNotFound
		}
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&habits).Error
	return habits, err
}

func (r *habitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).
		Model(habit).
		Select("name", "archetype", "scheduled_time", "alarms_enabled", "is_active", "is_strict").
		Updates(habit).Error
}

// Delete removes the protocol together with its logs.
func (r *habitRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND habit_id = ?", userID, id).Delete(&domain.HabitLog{}).Error; err != nil {
			return err
		}
		result := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&domain.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrProtocolNotFound
		}
		return nil
	})
}

func (r *habitRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.HabitLog{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&domain.Habit{}).Error
	})
}

// ListAlarmed returns every active protocol with alarms on and a scheduled
// window, across all users, with the owner loaded for timezone lookup.
func (r *habitRepository) ListAlarmed(ctx context.Context) ([]domain.Habit, error) {
	var habits []domain.Habit
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ? AND alarms_enabled = ?", true, true).
		Where("scheduled_time IS NOT NULL AND scheduled_time <> ''").
		Find(&habits).Error
	return habits, err
}
