package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blaisecz/zenith/internal/logger"
	"github.com/google/uuid"
)

const (
	AlertTitle = "MISSION_ALERT: Node Synchronization Required"

	// DefaultDisplayDuration is how long receivers should show an alert.
	DefaultDisplayDuration = 10 * time.Second
)

// Signal is one raised alarm for an open protocol window.
type Signal struct {
	Key       string
	UserID    uuid.UUID
	HabitID   uuid.UUID
	HabitName string
	Title     string
	Body      string
	At        time.Time
}

// AlertBody is the alert text for a protocol whose window just opened.
func AlertBody(habitName string) string {
	return fmt.Sprintf("Protocol [%s] window is currently OPEN. Execute mission now.", habitName)
}

// Signaler delivers signals somewhere a user will see them.
type Signaler interface {
	Signal(ctx context.Context, s Signal) error
}

// LogSignaler writes each signal as a structured log line.
type LogSignaler struct{}

func (LogSignaler) Signal(ctx context.Context, s Signal) error {
	logger.Info(s.Title,
		"protocol", s.HabitName,
		"habit_id", s.HabitID,
		"user_id", s.UserID,
		"body", s.Body,
	)
	return nil
}

// WebhookPayload is the JSON body posted by WebhookSignaler.
type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// WebhookSignaler posts each signal to a URL.
type WebhookSignaler struct {
	url      string
	duration time.Duration
	client   *http.Client
}

func NewWebhookSignaler(url string, client *http.Client) *WebhookSignaler {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &WebhookSignaler{url: url, duration: DefaultDisplayDuration, client: client}
}

func (w *WebhookSignaler) Signal(ctx context.Context, s Signal) error {
	payload := WebhookPayload{
		Text:       s.Title + "\n" + s.Body,
		DurationMs: uint32(w.duration.Milliseconds()),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("webhook failed with status %d: %s", res.StatusCode, string(body))
}

// MultiSignaler fans a signal out to every signaler, joining their errors.
type MultiSignaler []Signaler

func (m MultiSignaler) Signal(ctx context.Context, s Signal) error {
	var errs []error
	for _, signaler := range m {
		if err := signaler.Signal(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
