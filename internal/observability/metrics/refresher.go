package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Counter supplies the current number of stored documents.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// GaugeRefresher periodically refreshes the articles_total gauge from the store.
type GaugeRefresher struct {
	counter  Counter
	logger   *slog.Logger
	schedule string
	cron     *cron.Cron
}

// NewGaugeRefresher creates a refresher running on the given cron schedule
// (e.g. "@every 1m"). An empty schedule defaults to once per minute.
func NewGaugeRefresher(counter Counter, logger *slog.Logger, schedule string) *GaugeRefresher {
	if schedule == "" {
		schedule = "@every 1m"
	}
	return &GaugeRefresher{
		counter:  counter,
		logger:   logger,
		schedule: schedule,
	}
}

// Start begins the periodic refresh and performs one immediate update.
// It returns an error if the schedule cannot be parsed.
func (g *GaugeRefresher) Start(ctx context.Context) error {
	g.refresh(ctx)

	c := cron.New()
	if _, err := c.AddFunc(g.schedule, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		g.refresh(refreshCtx)
	}); err != nil {
		return err
	}
	c.Start()
	g.cron = c
	return nil
}

// Stop halts the periodic refresh and waits for a running job to finish.
func (g *GaugeRefresher) Stop() {
	if g.cron != nil {
		<-g.cron.Stop().Done()
	}
}

func (g *GaugeRefresher) refresh(ctx context.Context) {
	count, err := g.counter.Count(ctx)
	if err != nil {
		// ストアが落ちていてもゲージ更新失敗はログのみ
		if g.logger != nil {
			g.logger.Warn("failed to refresh articles gauge", slog.Any("error", err))
		}
		return
	}
	UpdateArticlesTotal(count)
}
