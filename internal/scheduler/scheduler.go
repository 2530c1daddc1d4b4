package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the reminder scan on a fixed interval, not aligned to the clock.
type Scheduler struct {
	reminderService contract.ReminderService
	interval        time.Duration
	cron            *cron.Cron
	job             cron.Job
	log             *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(reminderService contract.ReminderService, interval time.Duration, log *zap.Logger) *Scheduler {
	log = log.Named("scheduler")
	cl := cronLogger{log: log.Sugar()}

	s := &Scheduler{
		reminderService: reminderService,
		interval:        interval,
		log:             log,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.SkipIfStillRunning(cl)),
		),
	}
	s.job = cron.NewChain(cron.Recover(cl)).Then(cron.FuncJob(s.runScan))

	return s
}

// Start runs one scan right away and then every interval until Stop or ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.cron.Schedule(cron.Every(s.interval), s.job)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.job.Run()
	}()

	s.cron.Start()
	s.log.Info("scheduler started", zap.Duration("interval", s.interval))
}

// Stop cancels in-flight scans and waits for them to return.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()

	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runScan() {
	if s.ctx.Err() != nil {
		return
	}

	if _, err := s.reminderService.Scan(s.ctx); err != nil {
		s.log.Error("scan failed", zap.Error(err))
	}
}

// cronLogger adapts zap to cron.Logger. Cron's routine messages go to debug.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
