package contract

//go:generate mockgen -destination=../../../mocks/service_mock.go -package=mocks . AttendanceService,ReminderService

import (
	"context"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, recipientID string) (*entity.ClockIn, error)
	Leave(ctx context.Context, recipientID string) (*entity.AttendanceRecord, error)
	HasRecordFor(ctx context.Context, recipientID, civilDate string) (bool, error)
	TodayRecords(ctx context.Context, recipientID string) ([]*entity.AttendanceRecord, error)
}

type ReminderService interface {
	Schedule(ctx context.Context, entry *entity.ScheduleEntry) error
	Scan(ctx context.Context) (entity.ScanResult, error)
}

// Clock returns the current wall-clock time.
type Clock func() time.Time
