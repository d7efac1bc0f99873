package service

import (
	"context"
	"time"

	"github.com/blaisecz/zenith/internal/analytics"
	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/langfuse"
	"github.com/blaisecz/zenith/internal/llm"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// NarrativeWindowDays is how far back the log projection reaches.
	NarrativeWindowDays = 30
	// DefaultNarrativeTimeout bounds a single text-generation call.
	DefaultNarrativeTimeout = 20 * time.Second

	// NarrativeLinkFailure is returned when the text generator fails.
	NarrativeLinkFailure = "COULD_NOT_ESTABLISH_NEURAL_LINK. PROCEED WITH RAW DISCIPLINE."
	// NarrativeEmpty is returned when the text generator answers with nothing.
	NarrativeEmpty = "SYSTEM_ERROR: ANALYTICS_OFFLINE_AWAITING_REBOOT"
)

// NarrativeService produces the advisory status report.
type NarrativeService interface {
	// Generate never fails because of the text generator; it falls back to a
	// fixed message instead. Errors are returned only for storage failures.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error)
	// Feedback attaches a user rating to a previously returned narrative.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
}

type narrativeService struct {
	snapshotLoader
	llmClient      llm.NarrativeLLM
	langfuseClient langfuse.Client
	timeout        time.Duration
}

// NewNarrativeService creates a new NarrativeService. llmClient may be nil.
func NewNarrativeService(
	llmClient llm.NarrativeLLM,
	langfuseClient langfuse.Client,
	timeout time.Duration,
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
) NarrativeService {
	if timeout <= 0 {
		timeout = DefaultNarrativeTimeout
	}
	return &narrativeService{
		snapshotLoader: snapshotLoader{
			userRepo:  userRepo,
			habitRepo: habitRepo,
			logRepo:   logRepo,
			now:       time.Now,
		},
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		timeout:        timeout,
	}
}

func (s *narrativeService) Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error) {
	tracer := otel.Tracer("zenith-api/narrative")
	ctx, span := tracer.Start(ctx, "NarrativeService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	domain.SortForDisplay(habits)

	today := calendar.Today(s.localNow(user))
	since := today.AddDays(-NarrativeWindowDays)
	logs, err := s.logRepo.ListSince(ctx, userID, since.String())
	if err != nil {
		return nil, err
	}

	narrativeCtx := ProjectNarrative(habits, logs, since)
	span.SetAttributes(
		attribute.Int("narrative.protocols", len(narrativeCtx.Protocols)),
		attribute.Int("narrative.entries", len(narrativeCtx.History)),
	)

	text, fallback := s.generate(ctx, narrativeCtx)
	span.SetAttributes(attribute.Bool("narrative.fallback", fallback))

	response := &domain.NarrativeResponse{
		Narrative:   text,
		Fallback:    fallback,
		GeneratedAt: s.now().UTC(),
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID := ""
		if sc := span.SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		id, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			ID:     traceID,
			UserID: userID.String(),
			Name:   "zenith-narrative",
			Input:  narrativeCtx,
			Output: text,
			Tags:   []string{"narrative"},
			Metadata: map[string]any{
				"fallback": fallback,
			},
		})
		if err != nil {
			logger.Warn("Failed to create narrative trace", "user_id", userID, "error", err)
		} else {
			response.TraceID = id
		}
	}

	return response, nil
}

// generate calls the text generator under a bounded timeout and maps every
// failure to a fixed message. The bool reports whether a fallback was used.
func (s *narrativeService) generate(ctx context.Context, narrativeCtx *domain.NarrativeContext) (string, bool) {
	if s.llmClient == nil {
		return NarrativeLinkFailure, true
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llmClient.GenerateNarrative(ctx, narrativeCtx)
	if err != nil {
		logger.Warn("Narrative generation failed", "error", err)
		return NarrativeLinkFailure, true
	}
	if text == "" {
		return NarrativeEmpty, true
	}
	return text, false
}

func (s *narrativeService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if s.langfuseClient == nil {
		return nil
	}
	// Scoring is best effort
	if err := s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		logger.Warn("Failed to record narrative feedback", "trace_id", req.TraceID, "error", err)
	}
	return nil
}

// ProjectNarrative reduces logs on or after since to the fields the text
// generator may see: protocol name, archetype, date, completion and energy.
func ProjectNarrative(habits []domain.Habit, logs []domain.HabitLog, since calendar.Day) *domain.NarrativeContext {
	byID := make(map[uuid.UUID]domain.Habit, len(habits))
	protocols := make([]domain.NarrativeProtocol, len(habits))
	for i, h := range habits {
		byID[h.ID] = h
		protocols[i] = domain.NarrativeProtocol{Name: h.Name, Archetype: h.Archetype}
	}

	history := make([]domain.NarrativeEntry, 0, len(logs))
	for _, log := range logs {
		day, err := calendar.ParseDay(log.Date)
		if err != nil || day.Before(since) {
			continue
		}
		entry := domain.NarrativeEntry{
			Habit:       analytics.UnknownProtocol,
			Date:        log.Date,
			Completed:   log.Completed,
			EnergyLevel: log.EnergyLevel,
		}
		if h, ok := byID[log.HabitID]; ok {
			entry.Habit = h.Name
			entry.Archetype = h.Archetype
		}
		history = append(history, entry)
	}

	return &domain.NarrativeContext{
		WindowDays: NarrativeWindowDays,
		Protocols:  protocols,
		History:    history,
	}
}
