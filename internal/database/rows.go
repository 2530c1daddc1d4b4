package database

import (
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

// Schedule row cells, in column order.
const (
	schedColRecipientID = iota
	schedColCivilDate
	schedColStartTime
	schedColOffAt
	schedColNotifyAt
	schedColNotified
	scheduleColumnCount
)

// Attendance row cells, in column order.
const (
	attColRecipientID = iota
	attColCivilDate
	attColStartTime
	attColOffTime
	attendanceColumnCount
)

type scheduleRow [scheduleColumnCount]string

type attendanceRow [attendanceColumnCount]string

// instants are stored as RFC 3339 text with the civil offset kept for readability
const instantLayout = time.RFC3339

func encodeSchedule(e *entity.ScheduleEntry) scheduleRow {
	var row scheduleRow
	row[schedColRecipientID] = e.RecipientID
	row[schedColCivilDate] = e.CivilDate
	row[schedColStartTime] = e.StartTime
	row[schedColOffAt] = e.OffAt.Format(instantLayout)
	row[schedColNotifyAt] = e.NotifyAt.Format(instantLayout)
	row[schedColNotified] = encodeFlag(e.Notified)
	return row
}

// decodeSchedule never fails: unparseable instants are left zero so that
// (*entity.ScheduleEntry).Validate reports the row as invalid.
func decodeSchedule(id int64, row scheduleRow) *entity.ScheduleEntry {
	e := &entity.ScheduleEntry{
		ID:          id,
		RecipientID: row[schedColRecipientID],
		CivilDate:   row[schedColCivilDate],
		StartTime:   row[schedColStartTime],
		Notified:    decodeFlag(row[schedColNotified]),
	}
	if t, err := time.Parse(instantLayout, row[schedColOffAt]); err == nil {
		e.OffAt = t
	}
	if t, err := time.Parse(instantLayout, row[schedColNotifyAt]); err == nil {
		e.NotifyAt = t
	}
	return e
}

func encodeAttendance(r *entity.AttendanceRecord) attendanceRow {
	var row attendanceRow
	row[attColRecipientID] = r.RecipientID
	row[attColCivilDate] = r.CivilDate
	row[attColStartTime] = r.StartTime
	row[attColOffTime] = r.OffTime
	return row
}

func decodeAttendance(id int64, row attendanceRow) *entity.AttendanceRecord {
	return &entity.AttendanceRecord{
		ID:          id,
		RecipientID: row[attColRecipientID],
		CivilDate:   row[attColCivilDate],
		StartTime:   row[attColStartTime],
		OffTime:     row[attColOffTime],
	}
}

func encodeFlag(b bool) string {
	if b {
		return domain.FlagTrue
	}
	return domain.FlagFalse
}

// decodeFlag accepts the spellings a person might type into the cell by hand.
func decodeFlag(s string) bool {
	switch s {
	case domain.FlagTrue, "true", "True", "1":
		return true
	}
	return false
}
