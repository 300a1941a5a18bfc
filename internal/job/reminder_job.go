package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ciao-api/internal/client"
	"ciao-api/internal/metrics"
	"ciao-api/internal/repository"
)

// ReminderJob sweeps for assignments and projects whose deadline falls within
// the next day and dispatches reminder events to the notifier
type ReminderJob struct {
	assignmentRepo repository.AssignmentRepository
	projectRepo    repository.ProjectRepository
	notifier       client.NotifierClient
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewReminderJob creates a new ReminderJob instance
func NewReminderJob(
	assignmentRepo repository.AssignmentRepository,
	projectRepo repository.ProjectRepository,
	notifier client.NotifierClient,
	logger *zap.Logger,
	m *metrics.Metrics,
) *ReminderJob {
	return &ReminderJob{
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		notifier:       notifier,
		logger:         logger,
		metrics:        m,
	}
}

// Run collects incomplete work due in the window [now+24h, now+48h) and sends
// one bulk reminder batch. The window is a day wide so a daily schedule covers
// every deadline exactly once.
func (j *ReminderJob) Run() {
	ctx := context.Background()

	now := time.Now().UTC()
	from := now.Add(24 * time.Hour)
	to := now.Add(48 * time.Hour)

	j.logger.Info("Starting deadline reminder sweep",
		zap.Time("window_from", from),
		zap.Time("window_to", to),
	)

	var events []client.ReminderEvent

	assignments, err := j.assignmentRepo.FindDueBetween(ctx, from, to)
	if err != nil {
		j.logger.Error("Failed to query assignments due soon", zap.Error(err))
	} else {
		for _, a := range assignments {
			if a.DueDate == nil {
				continue
			}
			events = append(events, client.ReminderEvent{
				Kind:       client.ReminderAssignmentDue,
				UserID:     a.OwnerID,
				ResourceID: a.ID,
				Title:      a.Title,
				DueAt:      a.DueDate.UTC().Format(time.RFC3339),
				OccurredAt: now.Format(time.RFC3339),
			})
		}
	}

	projects, err := j.projectRepo.FindDueBetween(ctx, from, to)
	if err != nil {
		j.logger.Error("Failed to query projects ending soon", zap.Error(err))
	} else {
		for _, p := range projects {
			if p.EndDate == nil {
				continue
			}
			events = append(events, client.ReminderEvent{
				Kind:       client.ReminderProjectDue,
				UserID:     p.OwnerID,
				ResourceID: p.ID,
				Title:      p.Title,
				DueAt:      p.EndDate.UTC().Format(time.RFC3339),
				OccurredAt: now.Format(time.RFC3339),
			})
		}
	}

	if len(events) == 0 {
		j.logger.Info("No deadlines in the reminder window")
		return
	}

	if err := j.notifier.SendBulkReminders(ctx, events); err != nil {
		j.logger.Error("Failed to send reminder batch",
			zap.Int("count", len(events)),
			zap.Error(err),
		)
		return
	}

	if j.metrics != nil {
		j.metrics.IncrementRemindersSent(len(events))
	}

	j.logger.Info("Reminder sweep completed", zap.Int("sent", len(events)))
}
