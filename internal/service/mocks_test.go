package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) MarkProtocolsInitialized(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.ProtocolsInitialized = true
	return nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// addUser stores a user with the given timezone and returns it
func (m *MockUserRepository) addUser(timezone string) *domain.User {
	user := &domain.User{ID: uuid.New(), Timezone: timezone}
	m.users[user.ID] = user
	return user
}

// MockHabitRepository is a mock implementation of HabitRepository.
// Like the gorm repository it stamps CreatedAt on insert (one stamp per batch)
// and lists by created_at, then id. logRepo, when set, receives cascading deletes.
type MockHabitRepository struct {
	habits  []*domain.Habit
	users   *MockUserRepository
	logRepo *MockHabitLogRepository
	clock   time.Time
	err     error
}

// stamp advances the mock clock one second per insert statement.
func (m *MockHabitRepository) stamp() time.Time {
	if m.clock.IsZero() {
		m.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func NewMockHabitRepository(users *MockUserRepository, logRepo *MockHabitLogRepository) *MockHabitRepository {
	return &MockHabitRepository{users: users, logRepo: logRepo}
}

func (m *MockHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if m.err != nil {
		return m.err
	}
	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = m.stamp()
	}
	m.habits = append(m.habits, habit)
	return nil
}

func (m *MockHabitRepository) CreateBatch(ctx context.Context, habits []domain.Habit) error {
	if m.err != nil {
		return m.err
	}
	now := m.stamp()
	for i := range habits {
		if habits[i].CreatedAt.IsZero() {
			habits[i].CreatedAt = now
		}
		h := habits[i]
		m.habits = append(m.habits, &h)
	}
	return nil
}

func (m *MockHabitRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, h := range m.habits {
		if h.ID == id && h.UserID == userID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, domain.ErrProtocolNotFound
}

func (m *MockHabitRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			result = append(result, *h)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (m *MockHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if m.err != nil {
		return m.err
	}
	for i, h := range m.habits {
		if h.ID == habit.ID {
			copied := *habit
			m.habits[i] = &copied
			return nil
		}
	}
	return domain.ErrProtocolNotFound
}

func (m *MockHabitRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, h := range m.habits {
		if h.ID == id && h.UserID == userID {
			m.habits = append(m.habits[:i], m.habits[i+1:]...)
			if m.logRepo != nil {
				m.logRepo.deleteWhere(func(l *domain.HabitLog) bool { return l.HabitID == id })
			}
			return nil
		}
	}
	return domain.ErrProtocolNotFound
}

func (m *MockHabitRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	kept := m.habits[:0]
	for _, h := range m.habits {
		if h.UserID != userID {
			kept = append(kept, h)
		}
	}
	m.habits = kept
	if m.logRepo != nil {
		m.logRepo.deleteWhere(func(l *domain.HabitLog) bool { return l.UserID == userID })
	}
	return nil
}

func (m *MockHabitRepository) ListAlarmed(ctx context.Context) ([]domain.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Habit
	for _, h := range m.habits {
		if h.IsActive && h.AlarmsEnabled && h.Scheduled() {
			copied := *h
			if m.users != nil {
				if u, ok := m.users.users[h.UserID]; ok {
					copied.User = *u
				}
			}
			result = append(result, copied)
		}
	}
	return result, nil
}

func (m *MockHabitRepository) SetError(err error) {
	m.err = err
}

// MockHabitLogRepository is a map-backed mock keyed by (user, habit, date)
type MockHabitLogRepository struct {
	logs       map[string]*domain.HabitLog
	listResult []domain.HabitLog
	upserts    int
	// staleReads makes the next GetByKey calls miss, as a read racing a
	// concurrent insert would.
	staleReads int
	err        error
}

func NewMockHabitLogRepository() *MockHabitLogRepository {
	return &MockHabitLogRepository{
		logs: make(map[string]*domain.HabitLog),
	}
}

func logKey(userID, habitID uuid.UUID, date string) string {
	return userID.String() + ":" + habitID.String() + ":" + date
}

func (m *MockHabitLogRepository) GetByKey(ctx context.Context, userID, habitID uuid.UUID, date string) (*domain.HabitLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.staleReads > 0 {
		m.staleReads--
		return nil, nil
	}
	log, ok := m.logs[logKey(userID, habitID, date)]
	if !ok {
		return nil, nil
	}
	copied := *log
	return &copied, nil
}

func (m *MockHabitLogRepository) Insert(ctx context.Context, log *domain.HabitLog) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.upserts++
	key := logKey(log.UserID, log.HabitID, log.Date)
	if _, ok := m.logs[key]; ok {
		return false, nil
	}
	copied := *log
	m.logs[key] = &copied
	return true, nil
}

func (m *MockHabitLogRepository) Upsert(ctx context.Context, log *domain.HabitLog) error {
	if m.err != nil {
		return m.err
	}
	m.upserts++
	key := logKey(log.UserID, log.HabitID, log.Date)
	if existing, ok := m.logs[key]; ok {
		existing.Completed = log.Completed
		existing.Note = log.Note
		existing.EnergyLevel = log.EnergyLevel
		return nil
	}
	copied := *log
	m.logs[key] = &copied
	return nil
}

func (m *MockHabitLogRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HabitLog, error) {
	return m.ListSince(ctx, userID, "")
}

func (m *MockHabitLogRepository) ListSince(ctx context.Context, userID uuid.UUID, from string) ([]domain.HabitLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HabitLog
	for _, log := range m.logs {
		if log.UserID == userID && log.Date >= from {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (m *MockHabitLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HabitLogFilter) ([]domain.HabitLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.HabitLog, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	return m.ListAll(ctx, userID)
}

func (m *MockHabitLogRepository) SetError(err error) {
	m.err = err
}

// add stores a log directly, bypassing Upsert bookkeeping
func (m *MockHabitLogRepository) add(userID, habitID uuid.UUID, date string, completed bool) {
	m.logs[logKey(userID, habitID, date)] = &domain.HabitLog{
		ID:        uuid.New(),
		UserID:    userID,
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
	}
}

func (m *MockHabitLogRepository) deleteWhere(match func(*domain.HabitLog) bool) {
	for k, log := range m.logs {
		if match(log) {
			delete(m.logs, k)
		}
	}
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	reports []domain.MonthlyReport
	err     error
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.MonthlyReport) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, *report)
	return nil
}

func (m *MockReportRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.MonthlyReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MonthlyReport
	for i := len(m.reports) - 1; i >= 0; i-- {
		if m.reports[i].UserID == userID {
			result = append(result, m.reports[i])
		}
	}
	return result, nil
}

// mockNarrativeLLM returns a canned answer and records the context it saw
type mockNarrativeLLM struct {
	text  string
	err   error
	block bool
	seen  *domain.NarrativeContext
}

func (m *mockNarrativeLLM) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (string, error) {
	m.seen = narrativeCtx
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.text, m.err
}

// mockLangfuseClient records traces and scores
type mockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "trace-" + uuid.NewString(), nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
