package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SettlementReportJob periodically logs the platform settlement totals.
// It is read-only: the wallet credit itself happens synchronously when an
// order completes, this job only surfaces the running numbers.
type SettlementReportJob struct {
	handler queries.GetPlatformStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementReportJob creates a job that reports platform totals once a
// minute.
func NewSettlementReportJob(handler queries.GetPlatformStatsQueryHandler, logger *slog.Logger) *SettlementReportJob {
	return &SettlementReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "settlement_report_job"),
	}
}

// Start begins the settlement report job on its minute schedule.
func (j *SettlementReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetPlatformStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Settlement report",
			"total_orders", stats.TotalOrders,
			"completed_orders", stats.CompletedOrders,
			"commission_earned", stats.CommissionEarned,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement report job started (running every minute)")
	return nil
}

// Stop stops the settlement report job.
func (j *SettlementReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement report job stopped")
}
