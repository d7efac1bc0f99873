package repository

import (
	"context"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.MonthlyReport) error
	List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.MonthlyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error) {
	var reports []domain.MonthlyReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
