package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/config"
	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/civildate"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
	"go.uber.org/zap"
)

var errMissingRecipient = errors.New("missing recipient id")

type attendanceService struct {
	dm               contract.DataManager
	reminder         contract.ReminderService
	work             time.Duration
	lead             time.Duration
	firstClockInOnly bool
	loc              *time.Location
	now              contract.Clock
	log              *zap.Logger
}

func newAttendance(dm contract.DataManager, reminder contract.ReminderService, cfg *config.Config, now contract.Clock, log *zap.Logger) *attendanceService {
	return &attendanceService{
		dm:               dm,
		reminder:         reminder,
		work:             cfg.WorkDuration(),
		lead:             cfg.LeadDuration(),
		firstClockInOnly: cfg.FirstClockInOnly,
		loc:              cfg.Location(),
		now:              now,
		log:              log.Named("attendance"),
	}
}

// ClockIn records a clock-in and schedules its reminder. Store failures are
// logged only: the caller always gets the computed times to confirm to the user.
func (s *attendanceService) ClockIn(ctx context.Context, recipientID string) (*entity.ClockIn, error) {
	if recipientID == "" {
		return nil, errMissingRecipient
	}

	now := s.now().In(s.loc)
	civilDate := civildate.Format(now, s.loc)
	startTime := now.Format(domain.TimeOfDayLayout)
	entry := entity.NewScheduleEntry(recipientID, civilDate, startTime, now, s.work, s.lead)

	out := &entity.ClockIn{
		RecipientID: recipientID,
		CivilDate:   civilDate,
		StartTime:   startTime,
		OffTime:     entry.OffAt.In(s.loc).Format(domain.TimeOfDayLayout),
	}

	record := &entity.AttendanceRecord{
		RecipientID: recipientID,
		CivilDate:   civilDate,
		StartTime:   startTime,
		OffTime:     out.OffTime,
	}

	log := s.log.With(zap.String("recipient_id", recipientID), zap.String("civil_date", civilDate))

	// Check and append in one transaction so that two clock-ins racing for
	// the same day serialize on the store.
	var firstOfDay bool
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		exists, err := hasRecordFor(ctx, tx.Attendance(), recipientID, civilDate)
		if err != nil {
			return err
		}
		firstOfDay = !exists
		return tx.Attendance().Append(ctx, record)
	})
	if err != nil {
		log.Error("failed to record clock-in", zap.Error(err))
		return out, nil
	}

	if s.firstClockInOnly && !firstOfDay {
		log.Info("already clocked in today, no new reminder")
		return out, nil
	}

	if err := s.reminder.Schedule(ctx, entry); err != nil {
		log.Error("failed to schedule reminder", zap.Error(err))
		return out, nil
	}

	out.Scheduled = true
	return out, nil
}

// Leave records a day off. A failed write is logged and the record is still returned.
func (s *attendanceService) Leave(ctx context.Context, recipientID string) (*entity.AttendanceRecord, error) {
	if recipientID == "" {
		return nil, errMissingRecipient
	}

	record := &entity.AttendanceRecord{
		RecipientID: recipientID,
		CivilDate:   civildate.Format(s.now(), s.loc),
		OffTime:     domain.LeaveMarker,
	}

	if err := s.dm.Attendance().Append(ctx, record); err != nil {
		s.log.Error("failed to record leave",
			zap.String("recipient_id", recipientID),
			zap.String("civil_date", record.CivilDate),
			zap.Error(err),
		)
	}

	return record, nil
}

// HasRecordFor reports whether the attendance history already holds a row for
// the recipient on the given civil date.
func (s *attendanceService) HasRecordFor(ctx context.Context, recipientID, civilDate string) (bool, error) {
	return hasRecordFor(ctx, s.dm.Attendance(), recipientID, civilDate)
}

func (s *attendanceService) TodayRecords(ctx context.Context, recipientID string) ([]*entity.AttendanceRecord, error) {
	records, err := s.dm.Attendance().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	today := civildate.Format(s.now(), s.loc)
	var out []*entity.AttendanceRecord
	for _, r := range records {
		if r.RecipientID == recipientID && civildate.SameDay(r.CivilDate, today) {
			out = append(out, r)
		}
	}
	return out, nil
}

func hasRecordFor(ctx context.Context, repo contract.AttendanceRepo, recipientID, civilDate string) (bool, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list attendance: %w", err)
	}

	want := civildate.Normalize(civilDate)
	for _, r := range records {
		if r.RecipientID == recipientID && civildate.Normalize(r.CivilDate) == want {
			return true, nil
		}
	}
	return false, nil
}
