package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ciao-api/internal/metrics"
)

// ReminderKind distinguishes what a reminder is about
type ReminderKind string

const (
	ReminderAssignmentDue ReminderKind = "ASSIGNMENT_DUE"
	ReminderProjectDue    ReminderKind = "PROJECT_DUE"
)

// ReminderEvent represents a deadline reminder to be delivered
type ReminderEvent struct {
	Kind       ReminderKind `json:"kind"`
	UserID     uuid.UUID    `json:"userId"`
	ResourceID uuid.UUID    `json:"resourceId"`
	Title      string       `json:"title"`
	DueAt      string       `json:"dueAt"`
	OccurredAt string       `json:"occurredAt,omitempty"`
}

// BulkReminderRequest wraps a batch of reminder events
type BulkReminderRequest struct {
	Reminders []ReminderEvent `json:"reminders"`
}

// NotifierClient defines the interface for the reminder delivery service
type NotifierClient interface {
	SendReminder(ctx context.Context, event ReminderEvent) error
	SendBulkReminders(ctx context.Context, events []ReminderEvent) error
}

type notifierClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewNotifierClient creates a new notifier API client
func NewNotifierClient(baseURL string, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) NotifierClient {
	return &notifierClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// SendReminder delivers a single reminder.
// Delivery failures are logged and swallowed so the sweep keeps going.
func (c *notifierClient) SendReminder(ctx context.Context, event ReminderEvent) error {
	url := fmt.Sprintf("%s/api/internal/reminders", c.baseURL)

	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonBody, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to marshal reminder event",
			zap.Error(err),
			zap.String("kind", string(event.Kind)),
		)
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	return c.post(ctx, url, jsonBody, 1, string(event.Kind))
}

// SendBulkReminders delivers a batch of reminders in one request
func (c *notifierClient) SendBulkReminders(ctx context.Context, events []ReminderEvent) error {
	if len(events) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/api/internal/reminders/bulk", c.baseURL)

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range events {
		if events[i].OccurredAt == "" {
			events[i].OccurredAt = now
		}
	}

	jsonBody, err := json.Marshal(BulkReminderRequest{Reminders: events})
	if err != nil {
		c.logger.Error("Failed to marshal bulk reminder request",
			zap.Error(err),
			zap.Int("count", len(events)),
		)
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}

	return c.post(ctx, url, jsonBody, len(events), "bulk")
}

func (c *notifierClient) post(ctx context.Context, url string, body []byte, count int, kind string) error {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create reminder request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to send reminders",
			zap.Error(err),
			zap.String("kind", kind),
			zap.Int("count", count),
			zap.Duration("duration", duration),
		)
		// Graceful degradation: reminders must never break the caller
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("Reminders sent",
			zap.String("kind", kind),
			zap.Int("count", count),
			zap.Duration("duration", duration),
		)
		return nil
	}

	c.logger.Warn("Notifier returned non-success status",
		zap.Int("status_code", resp.StatusCode),
		zap.String("kind", kind),
		zap.Int("count", count),
		zap.Duration("duration", duration),
	)
	return nil
}

// NoOpNotifierClient is used when no notifier endpoint is configured
type NoOpNotifierClient struct{}

func NewNoOpNotifierClient() NotifierClient {
	return &NoOpNotifierClient{}
}

func (c *NoOpNotifierClient) SendReminder(ctx context.Context, event ReminderEvent) error {
	return nil
}

func (c *NoOpNotifierClient) SendBulkReminders(ctx context.Context, events []ReminderEvent) error {
	return nil
}
