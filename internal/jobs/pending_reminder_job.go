package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/timeutil"
)

// pendingReminderSchedule fires at the top of every hour.
const pendingReminderSchedule = "0 * * * *"

// PendingReminderJob nudges admins about orders still waiting for a courier.
// Reminders are only sent during working hours; outside them pending orders
// stay untouched until the next working morning.
type PendingReminderJob struct {
	handler   queries.GetPendingOrdersQueryHandler
	messenger ports.Messenger
	adminIDs  []kernel.UserID
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingReminderJob creates the hourly pending-orders reminder.
func NewPendingReminderJob(
	handler queries.GetPendingOrdersQueryHandler,
	messenger ports.Messenger,
	adminIDs []kernel.UserID,
	logger *slog.Logger,
) *PendingReminderJob {
	return &PendingReminderJob{
		handler:   handler,
		messenger: messenger,
		adminIDs:  adminIDs,
		cron:      cron.New(cron.WithLocation(timeutil.Zone)),
		logger:    logger.With("component", "pending_reminder_job"),
	}
}

// Start schedules the reminder.
func (j *PendingReminderJob) Start() error {
	_, err := j.cron.AddFunc(pendingReminderSchedule, func() {
		ctx := context.Background()
		if !timeutil.IsWorkingHours(timeutil.Now()) {
			return
		}

		if err := j.remind(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending reminder job started", "schedule", pendingReminderSchedule)
	return nil
}

// Stop stops the reminder job.
func (j *PendingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending reminder job stopped")
}

func (j *PendingReminderJob) remind(ctx context.Context) error {
	pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	text := RenderPendingReminder(pending)
	for _, adminID := range j.adminIDs {
		if err := j.messenger.Send(ctx, adminID, text); err != nil {
			j.logger.WarnContext(ctx, "Pending reminder not delivered", "admin_id", adminID, "error", err)
		}
	}

	return nil
}

// RenderPendingReminder formats the reminder message about unassigned orders.
func RenderPendingReminder(pending []queries.OrderResponse) string {
	text := fmt.Sprintf("%d order(s) still waiting for a courier:", len(pending))
	for _, o := range pending {
		text += fmt.Sprintf("\n#%d %s, %s, %s (created %s)", o.ID, o.ShopName, o.City, o.Address, o.CreatedAt)
	}
	return text
}
