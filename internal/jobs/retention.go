// Package jobs фоновые задачи сервиса по расписанию cron.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"csa-console/internal/config"
)

// ReportPruner удаляет старые отчёты о сохранениях.
type ReportPruner interface {
	DeleteReportsBefore(ctx context.Context, before time.Time) (int64, error)
}

// DraftSweeper забывает черновики брошенных сессий.
type DraftSweeper interface {
	Sweep(before time.Time) int
}

// Retention чистит отчёты старше keep и черновики без активности дольше idle.
type Retention struct {
	reports ReportPruner
	drafts  DraftSweeper
	keep    time.Duration
	idle    time.Duration
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// NewRetention reports может быть nil, если база не настроена.
func NewRetention(cfg config.Config, reports ReportPruner, drafts DraftSweeper, log *slog.Logger) *Retention {
	keep := cfg.ReportRetention
	if keep <= 0 {
		keep = 30 * 24 * time.Hour
	}
	idle := cfg.SessionIdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}
	return &Retention{
		reports: reports,
		drafts:  drafts,
		keep:    keep,
		idle:    idle,
		timeout: time.Minute,
		log:     log,
		now:     time.Now,
	}
}

// Run один проход очистки.
func (r *Retention) Run(ctx context.Context) {
	now := r.now().UTC()

	if r.drafts != nil {
		if n := r.drafts.Sweep(now.Add(-r.idle)); n > 0 {
			r.log.Info("retention job dropped idle drafts", slog.Int("count", n))
		}
	}

	if r.reports == nil {
		return
	}
	tickCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.reports.DeleteReportsBefore(tickCtx, now.Add(-r.keep))
	if err != nil {
		r.log.Error("retention job error", slog.Any("err", err))
		return
	}
	if n > 0 {
		r.log.Info("retention job deleted save reports", slog.Int64("count", n))
	}
}

// StartRetentionJob запускает Retention по расписанию cfg.RetentionSchedule
// и останавливает его вместе с ctx.
func StartRetentionJob(ctx context.Context, cfg config.Config, reports ReportPruner, drafts DraftSweeper, log *slog.Logger) (*cron.Cron, error) {
	job := NewRetention(cfg, reports, drafts, log)

	schedule := cfg.RetentionSchedule
	if schedule == "" {
		schedule = "@daily"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { job.Run(ctx) }); err != nil {
		return nil, fmt.Errorf("schedule retention job %q: %w", schedule, err)
	}
	c.Start()
	log.Info("retention job scheduled", slog.String("schedule", schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return c, nil
}
