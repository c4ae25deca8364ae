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

// dailyReportSchedule fires once a day at 21:00 Dushanbe time, right after
// the working day ends.
const dailyReportSchedule = "0 21 * * *"

// DailyReportJob sends the order counters summary to every admin once a day.
type DailyReportJob struct {
	handler   queries.GetDeliveryReportQueryHandler
	messenger ports.Messenger
	adminIDs  []kernel.UserID
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDailyReportJob creates the daily report job. The schedule is evaluated
// in the Dushanbe time zone.
func NewDailyReportJob(
	handler queries.GetDeliveryReportQueryHandler,
	messenger ports.Messenger,
	adminIDs []kernel.UserID,
	logger *slog.Logger,
) *DailyReportJob {
	return &DailyReportJob{
		handler:   handler,
		messenger: messenger,
		adminIDs:  adminIDs,
		cron:      cron.New(cron.WithLocation(timeutil.Zone)),
		logger:    logger.With("component", "daily_report_job"),
	}
}

// Start schedules the daily report.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(dailyReportSchedule, func() {
		ctx := context.Background()
		if err := j.send(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", dailyReportSchedule)
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

func (j *DailyReportJob) send(ctx context.Context) error {
	report, err := j.handler.Handle(ctx, queries.NewGetDeliveryReportQuery())
	if err != nil {
		return err
	}

	text := RenderReport(report)
	for _, adminID := range j.adminIDs {
		if err := j.messenger.Send(ctx, adminID, text); err != nil {
			j.logger.WarnContext(ctx, "Daily report not delivered", "admin_id", adminID, "error", err)
		}
	}

	return nil
}

// RenderReport formats the counters summary as the message sent to admins.
func RenderReport(report queries.GetDeliveryReportQueryResponse) string {
	return fmt.Sprintf(
		"Delivery report for %s\n"+
			"Total orders: %d\n"+
			"Pending: %d\n"+
			"Assigned: %d\n"+
			"Delivered: %d\n"+
			"Delivered today: %d\n"+
			"Delivered yesterday: %d",
		timeutil.Today(),
		report.TotalOrders,
		report.Pending,
		report.Assigned,
		report.Delivered,
		report.DeliveredToday,
		report.DeliveredYesterday,
	)
}
