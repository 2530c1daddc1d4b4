package service

import (
	"time"

	"github.com/diegoclair/clockin-bot/internal/config"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Attendance contract.AttendanceService
	Reminder   contract.ReminderService
}

func NewInstance(dm contract.DataManager, messenger contract.Messenger, cfg *config.Config, log *zap.Logger) *Instance {
	reminder := newReminder(dm, messenger, cfg, time.Now, log)

	return &Instance{
		Attendance: newAttendance(dm, reminder, cfg, time.Now, log),
		Reminder:   reminder,
	}
}
