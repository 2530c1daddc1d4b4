package contract

//go:generate mockgen -destination=../../../mocks/repo_mock.go -package=mocks . DataManager,ScheduleRepo,AttendanceRepo

import (
	"context"

	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Schedule() ScheduleRepo
	Attendance() AttendanceRepo
}

// ScheduleRepo defines the contract for the append-only reminder table
type ScheduleRepo interface {
	Append(ctx context.Context, entry *entity.ScheduleEntry) error
	// List returns every row in insertion order, processed ones included.
	List(ctx context.Context) ([]*entity.ScheduleEntry, error)
	// SetNotified updates only the notified cell of the row at id.
	SetNotified(ctx context.Context, id int64, notified bool) error
}

// AttendanceRepo defines the contract for the attendance history
type AttendanceRepo interface {
	Append(ctx context.Context, record *entity.AttendanceRecord) error
	List(ctx context.Context) ([]*entity.AttendanceRecord, error)
}
