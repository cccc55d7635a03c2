package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// SLAMonitorJob periodically counts complaints past their SLA deadline.
// The count is logged and published as a prometheus gauge so operations staff
// see SLA pressure without polling the API. The job never persists the
// overdue flag; the deadline check stays a read-time computation.
type SLAMonitorJob struct {
	handler  queries.GetOverdueComplaintsQueryHandler
	schedule string
	clock    func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSLAMonitorJob creates a job that reports overdue complaints on the given
// cron schedule (six-field expression with seconds).
func NewSLAMonitorJob(
	handler queries.GetOverdueComplaintsQueryHandler,
	schedule string,
	clock func() time.Time,
	logger *slog.Logger,
) *SLAMonitorJob {
	return &SLAMonitorJob{
		handler:  handler,
		schedule: schedule,
		clock:    clock,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sla_monitor_job"),
	}
}

// Start begins the SLA monitor on its configured schedule.
func (j *SLAMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueComplaintsQuery(j.clock())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "SLA monitor job failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "SLA monitor job failed", "error", handleErr)
			return
		}

		metrics.ComplaintsOverdue.Set(float64(len(overdue)))

		if len(overdue) > 0 {
			j.logger.WarnContext(ctx, "Complaints past SLA deadline", "count", len(overdue))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "SLA monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the SLA monitor job.
func (j *SLAMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "SLA monitor job stopped")
}
