package entity

import (
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain"
)

// ScheduleEntry is a pending (or processed) clock-out reminder.
type ScheduleEntry struct {
	ID          int64     `json:"id"` // row position in the schedule table
	RecipientID string    `json:"recipient_id"`
	CivilDate   string    `json:"civil_date"`
	StartTime   string    `json:"start_time"`
	OffAt       time.Time `json:"off_at"`
	NotifyAt    time.Time `json:"notify_at"`
	Notified    bool      `json:"notified"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewScheduleEntry derives the off and notify instants from a clock-in.
func NewScheduleEntry(recipientID, civilDate, startTime string, clockIn time.Time, work, lead time.Duration) *ScheduleEntry {
	offAt := clockIn.Add(work)
	return &ScheduleEntry{
		RecipientID: recipientID,
		CivilDate:   civilDate,
		StartTime:   startTime,
		OffAt:       offAt,
		NotifyAt:    offAt.Add(-lead),
		Notified:    false,
	}
}

func (e *ScheduleEntry) Validate() error {
	switch {
	case e.RecipientID == "":
		return fmt.Errorf("%w: empty recipient", domain.ErrInvalidEntry)
	case e.OffAt.IsZero():
		return fmt.Errorf("%w: missing off time", domain.ErrInvalidEntry)
	case e.NotifyAt.IsZero():
		return fmt.Errorf("%w: missing notify time", domain.ErrInvalidEntry)
	case e.NotifyAt.After(e.OffAt):
		return fmt.Errorf("%w: notify time %s is after off time %s", domain.ErrInvalidEntry,
			e.NotifyAt.Format(time.RFC3339), e.OffAt.Format(time.RFC3339))
	}
	return nil
}

// IsDue reports whether the entry is unprocessed and its notify time has elapsed.
func (e *ScheduleEntry) IsDue(now time.Time) bool {
	return !e.Notified && !e.NotifyAt.After(now)
}

// Lag is how far past the off time now is. Negative before the off time.
func (e *ScheduleEntry) Lag(now time.Time) time.Duration {
	return now.Sub(e.OffAt)
}
