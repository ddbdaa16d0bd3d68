package inbox

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"
)

func (w *implWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scheduler != nil {
		return ErrScheduled
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("inbox: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(w.cfg.Interval),
		gocron.NewTask(func() {
			if _, err := w.ScanOnce(ctx); err != nil && ctx.Err() == nil {
				w.l.Errorf(ctx, "inbox.Start: scan dir=%s err=%v", w.cfg.Dir, err)
			}
		}),
		gocron.WithName("inbox-scan"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("inbox: %w", err)
	}

	s.Start()
	w.scheduler = s
	w.l.Infof(ctx, "inbox.Start: dir=%s interval=%s list=%q", w.cfg.Dir, w.cfg.Interval, w.cfg.ListName)
	return nil
}

func (w *implWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.scheduler == nil {
		return nil
	}
	err := w.scheduler.Shutdown()
	w.scheduler = nil
	return err
}
