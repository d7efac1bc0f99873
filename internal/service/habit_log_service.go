package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/blaisecz/zenith/pkg/pagination"
	"github.com/google/uuid"
)

type HabitLogService interface {
	// Upsert records the protocol's day, merging present fields into an
	// existing log. The bool is true when a new log was created.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertHabitLogRequest) (*domain.HabitLog, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) (*domain.HabitLogListResponse, error)
}

type habitLogService struct {
	repo      repository.HabitLogRepository
	habitRepo repository.HabitRepository
	userRepo  repository.UserRepository
}

func NewHabitLogService(repo repository.HabitLogRepository, habitRepo repository.HabitRepository, userRepo repository.UserRepository) HabitLogService {
	return &habitLogService{
		repo:      repo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

func (s *habitLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertHabitLogRequest) (*domain.HabitLog, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// Protocol must belong to the user
	if _, err := s.habitRepo.GetByID(ctx, userID, req.HabitID); err != nil {
		return nil, false, err
	}

	log, err := s.repo.GetByKey(ctx, userID, req.HabitID, req.Date)
	if err != nil {
		return nil, false, err
	}

	if log == nil {
		log = &domain.HabitLog{
			ID:      uuid.New(),
			UserID:  userID,
			HabitID: req.HabitID,
			Date:    req.Date,
		}
		log.Merge(req)

		inserted, err := s.repo.Insert(ctx, log)
		if err != nil {
			return nil, false, err
		}
		if inserted {
			return log, true, nil
		}

		// A concurrent first write for the same day got there first
		log, err = s.repo.GetByKey(ctx, userID, req.HabitID, req.Date)
		if err != nil {
			return nil, false, err
		}
		if log == nil {
			return nil, false, fmt.Errorf("habit log %s/%s missing after insert conflict", req.HabitID, req.Date)
		}
	}

	log.Merge(req)
	if err := s.repo.Upsert(ctx, log); err != nil {
		return nil, false, err
	}

	return log, false, nil
}

func (s *habitLogService) List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) (*domain.HabitLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit

	// Trim to actual limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.HabitLogListResponse{
		Data: logs,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	if response.Data == nil {
		response.Data = []domain.HabitLog{}
	}

	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
