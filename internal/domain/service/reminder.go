package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/config"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type reminderService struct {
	dm        contract.DataManager
	messenger contract.Messenger
	targets   []string
	maxLag    time.Duration
	loc       *time.Location
	limiter   *rate.Limiter
	now       contract.Clock
	log       *zap.Logger
}

// newSendLimiter paces reminder sends to ratePerSec across all targets.
// Zero or less disables pacing.
func newSendLimiter(ratePerSec int) *rate.Limiter {
	if ratePerSec <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)
}

func newReminder(dm contract.DataManager, messenger contract.Messenger, cfg *config.Config, now contract.Clock, log *zap.Logger) *reminderService {
	return &reminderService{
		dm:        dm,
		messenger: messenger,
		targets:   cfg.NotifyTargets,
		maxLag:    cfg.MaxLag(),
		loc:       cfg.Location(),
		limiter:   newSendLimiter(cfg.SendRatePerSec),
		now:       now,
		log:       log.Named("reminder"),
	}
}

// Schedule persists a new pending reminder. It does not deduplicate: callers
// decide whether a clock-in deserves a reminder.
func (s *reminderService) Schedule(ctx context.Context, entry *entity.ScheduleEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.Notified = false
	if err := s.dm.Schedule().Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	s.log.Info("reminder scheduled",
		zap.Int64("entry_id", entry.ID),
		zap.String("recipient_id", entry.RecipientID),
		zap.String("civil_date", entry.CivilDate),
		zap.Time("notify_at", entry.NotifyAt),
	)
	return nil
}

// Scan reads the whole schedule, delivers every due entry and marks it processed.
// Concurrent scans are allowed and may deliver the same entry twice.
func (s *reminderService) Scan(ctx context.Context) (entity.ScanResult, error) {
	now := s.now()
	result := entity.ScanResult{
		ScanID:    uuid.NewString(),
		StartedAt: now,
	}
	log := s.log.With(zap.String("scan_id", result.ScanID))

	entries, err := s.dm.Schedule().List(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read schedule: %w", err)
	}
	result.Scanned = len(entries)

	due, invalid := s.selectDue(entries, now, log)
	result.Due = len(due)
	result.Invalid = invalid

	for _, entry := range due {
		s.dispatch(ctx, entry, now, &result, log)
	}

	if result.Due > 0 || result.Invalid > 0 {
		log.Info("scan finished",
			zap.Int("scanned", result.Scanned),
			zap.Int("due", result.Due),
			zap.Int("delivered", result.Delivered),
			zap.Int("expired", result.Expired),
			zap.Int("send_failures", result.SendFailures),
			zap.Int("mark_failures", result.MarkFailures),
			zap.Int("invalid", result.Invalid),
		)
	} else {
		log.Debug("scan finished", zap.Int("scanned", result.Scanned))
	}

	return result, nil
}

// selectDue keeps store order. Pending rows that fail validation are skipped.
func (s *reminderService) selectDue(entries []*entity.ScheduleEntry, now time.Time, log *zap.Logger) (due []*entity.ScheduleEntry, invalid int) {
	for _, entry := range entries {
		if entry.Notified {
			continue
		}

		if err := entry.Validate(); err != nil {
			invalid++
			log.Warn("skipping invalid schedule entry", zap.Int64("entry_id", entry.ID), zap.Error(err))
			continue
		}

		if entry.IsDue(now) {
			due = append(due, entry)
		}
	}
	return due, invalid
}

// dispatch delivers one due entry to every configured target, then marks it
// processed whatever the delivery outcome.
func (s *reminderService) dispatch(ctx context.Context, entry *entity.ScheduleEntry, now time.Time, result *entity.ScanResult, log *zap.Logger) {
	log = log.With(zap.Int64("entry_id", entry.ID), zap.String("recipient_id", entry.RecipientID))

	if lag := entry.Lag(now); lag > s.maxLag {
		result.Expired++
		log.Info("reminder expired, not sending", zap.Duration("lag", lag), zap.Duration("max_lag", s.maxLag))
	} else {
		text := reminderText(entry, s.loc)
		sent := 0
		for _, target := range s.targets {
			if err := s.limiter.Wait(ctx); err != nil {
				result.SendFailures++
				log.Error("reminder send cancelled", zap.String("target", target), zap.Error(err))
				continue
			}
			if err := s.messenger.Send(ctx, target, text); err != nil {
				result.SendFailures++
				log.Error("failed to send reminder", zap.String("target", target), zap.Error(err))
				continue
			}
			sent++
		}
		if sent > 0 {
			result.Delivered++
		}
		log.Info("reminder dispatched", zap.Int("sent", sent), zap.Int("targets", len(s.targets)))
	}

	if err := s.dm.Schedule().SetNotified(ctx, entry.ID, true); err != nil {
		result.MarkFailures++
		log.Error("failed to mark reminder as notified", zap.Error(err))
		return
	}
	entry.Notified = true
}
