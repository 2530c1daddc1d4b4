package service

import (
	"testing"
	"time"

	"github.com/diegoclair/clockin-bot/internal/config"
	"github.com/diegoclair/clockin-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockScheduleRepo   *mocks.MockScheduleRepo
	mockAttendanceRepo *mocks.MockAttendanceRepo
	mockMessenger      *mocks.MockMessenger
	mockReminder       *mocks.MockReminderService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	attendanceRepo := mocks.NewMockAttendanceRepo(ctrl)
	dm.EXPECT().Attendance().Return(attendanceRepo).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockScheduleRepo:   scheduleRepo,
		mockAttendanceRepo: attendanceRepo,
		mockMessenger:      mocks.NewMockMessenger(ctrl),
		mockReminder:       mocks.NewMockReminderService(ctrl),
	}

	return
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Timezone:         "Asia/Taipei",
		WorkHours:        8,
		LunchMinutes:     60,
		LeadMinutes:      15,
		ScanInterval:     time.Minute,
		MaxLagMinutes:    240,
		NotifyTargets:    []string{"slack:C1", "telegram:-100"},
		FirstClockInOnly: true,
	}
	require.NoError(t, cfg.Validate())

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
