package entity

import (
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain"
)

type AttendanceKind string

const (
	KindClockIn AttendanceKind = "clock_in"
	KindLeave   AttendanceKind = "leave"
)

// AttendanceRecord is one row of the attendance history.
type AttendanceRecord struct {
	ID          int64     `json:"id"`
	RecipientID string    `json:"recipient_id"`
	CivilDate   string    `json:"civil_date"`
	StartTime   string    `json:"start_time"` // empty for leave
	OffTime     string    `json:"off_time"`   // earliest leave time or domain.LeaveMarker
	CreatedAt   time.Time `json:"created_at"`
}

func (r *AttendanceRecord) Kind() AttendanceKind {
	if r.OffTime == domain.LeaveMarker {
		return KindLeave
	}
	return KindClockIn
}

// ClockIn is the outcome of a clock-in request, used to build the user reply.
type ClockIn struct {
	RecipientID string
	CivilDate   string
	StartTime   string
	OffTime     string
	Scheduled   bool // a reminder was created for this clock-in
}
