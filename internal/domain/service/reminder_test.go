package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var taipei = time.FixedZone("UTC+8", 8*60*60)

func at(day, hour, min int) time.Time {
	return time.Date(2025, 10, day, hour, min, 0, 0, taipei)
}

// entryAt builds a pending entry for a 09:00 clock-in with the default 9h work day and 15m lead.
func entryAt(id int64, recipient string, day int) *entity.ScheduleEntry {
	e := entity.NewScheduleEntry(recipient, fmt.Sprintf("2025/10/%02d", day), "09:00", at(day, 9, 0), 9*time.Hour, 15*time.Minute)
	e.ID = id
	return e
}

func Test_reminderService_Schedule(t *testing.T) {
	type args struct {
		entry *entity.ScheduleEntry
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		wantErr   bool
		wantErrIs error
	}{
		{
			name: "Should append a pending entry",
			args: args{entry: entryAt(0, "U1", 3)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().
					Append(gomock.Any(), args.entry).
					DoAndReturn(func(_ context.Context, e *entity.ScheduleEntry) error {
						assert.False(t, e.Notified)
						e.ID = 7
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject an entry whose notify time is after the off time",
			args: args{entry: &entity.ScheduleEntry{
				RecipientID: "U1",
				OffAt:       at(3, 18, 0),
				NotifyAt:    at(3, 18, 30),
			}},
			wantErr:   true,
			wantErrIs: domain.ErrInvalidEntry,
		},
		{
			name: "Should return store errors",
			args: args{entry: entryAt(0, "U1", 3)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().Append(gomock.Any(), args.entry).Return(assert.AnError).Times(1)
			},
			wantErr:   true,
			wantErrIs: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			s := newReminder(m.mockDataManager, m.mockMessenger, newTestConfig(t), fixedClock(at(3, 9, 0)), zap.NewNop())
			err := s.Schedule(context.Background(), tt.args.entry)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_reminderService_Scan(t *testing.T) {
	type args struct {
		now     time.Time
		targets []string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		want      entity.ScanResult
		wantErr   bool
	}{
		{
			name: "Should do nothing before the notify time",
			args: args{now: at(3, 17, 44)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1},
		},
		{
			name: "Should deliver a due entry to every target and mark it",
			args: args{now: at(3, 17, 46)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
				gomock.InOrder(
					m.mockMessenger.EXPECT().Send(gomock.Any(), "slack:C1", gomock.Any()).Return(nil).Times(1),
					m.mockMessenger.EXPECT().Send(gomock.Any(), "telegram:-100", gomock.Any()).Return(nil).Times(1),
					m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1),
				)
			},
			want: entity.ScanResult{Scanned: 1, Due: 1, Delivered: 1},
		},
		{
			name: "Should skip entries already notified",
			args: args{now: at(3, 17, 50)},
			buildMock: func(m allMocks, args args) {
				e := entryAt(1, "U1", 3)
				e.Notified = true
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{e}, nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1},
		},
		{
			name: "Should mark a stale entry without sending",
			args: args{now: at(5, 10, 0)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1, Due: 1, Expired: 1},
		},
		{
			name: "Should still send at the lag ceiling",
			args: args{now: at(3, 22, 0)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
				m.mockMessenger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1, Due: 1, Delivered: 1},
		},
		{
			name: "Should deliver only the due entries in store order",
			args: args{now: at(3, 17, 46), targets: []string{"C1"}},
			buildMock: func(m allMocks, args args) {
				future := entity.NewScheduleEntry("U3", "2025/10/03", "10:00", at(3, 10, 0), 9*time.Hour, 15*time.Minute)
				future.ID = 3
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).
					Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3), entryAt(2, "U2", 3), future}, nil).Times(1)

				gomock.InOrder(
					m.mockMessenger.EXPECT().Send(gomock.Any(), "C1", gomock.Any()).
						DoAndReturn(func(_ context.Context, _, text string) error {
							assert.Contains(t, text, "U1")
							return nil
						}).Times(1),
					m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1),
					m.mockMessenger.EXPECT().Send(gomock.Any(), "C1", gomock.Any()).
						DoAndReturn(func(_ context.Context, _, text string) error {
							assert.Contains(t, text, "U2")
							return nil
						}).Times(1),
					m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(2), true).Return(nil).Times(1),
				)
			},
			want: entity.ScanResult{Scanned: 3, Due: 2, Delivered: 2},
		},
		{
			name: "Should mark the entry even when a target fails",
			args: args{now: at(3, 17, 46)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
				m.mockMessenger.EXPECT().Send(gomock.Any(), "slack:C1", gomock.Any()).Return(assert.AnError).Times(1)
				m.mockMessenger.EXPECT().Send(gomock.Any(), "telegram:-100", gomock.Any()).Return(nil).Times(1)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1, Due: 1, Delivered: 1, SendFailures: 1},
		},
		{
			name: "Should mark the entry even when every target fails",
			args: args{now: at(3, 17, 46)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
				m.mockMessenger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1, Due: 1, SendFailures: 2},
		},
		{
			name: "Should keep going when marking fails",
			args: args{now: at(3, 17, 46), targets: []string{"C1"}},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).
					Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3), entryAt(2, "U2", 3)}, nil).Times(1)
				m.mockMessenger.EXPECT().Send(gomock.Any(), "C1", gomock.Any()).Return(nil).Times(2)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(assert.AnError).Times(1)
				m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(2), true).Return(nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 2, Due: 2, Delivered: 2, MarkFailures: 1},
		},
		{
			name: "Should skip invalid rows",
			args: args{now: at(3, 17, 46)},
			buildMock: func(m allMocks, args args) {
				broken := &entity.ScheduleEntry{ID: 1, RecipientID: "U1", CivilDate: "2025/10/03"}
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{broken}, nil).Times(1)
			},
			want: entity.ScanResult{Scanned: 1, Invalid: 1},
		},
		{
			name: "Should return an error when the schedule cannot be read",
			args: args{now: at(3, 17, 46)},
			buildMock: func(m allMocks, args args) {
				m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			cfg := newTestConfig(t)
			if tt.args.targets != nil {
				cfg.NotifyTargets = tt.args.targets
			}

			s := newReminder(m.mockDataManager, m.mockMessenger, cfg, fixedClock(tt.args.now), zap.NewNop())
			got, err := s.Scan(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, got.ScanID)
			assert.Equal(t, tt.args.now, got.StartedAt)
			got.ScanID = ""
			got.StartedAt = time.Time{}
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_reminderService_Scan_Repeated(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	entry := entryAt(1, "U1", 3)
	m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entry}, nil).Times(2)
	m.mockMessenger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)

	now := at(3, 17, 46)
	s := newReminder(m.mockDataManager, m.mockMessenger, newTestConfig(t), func() time.Time { return now }, zap.NewNop())

	first, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Delivered)

	now = at(3, 17, 50)
	second, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Due)
	assert.Equal(t, 0, second.Delivered)
}

func Test_reminderService_Scan_Concurrent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// each scan reads its own copy of the row, as two store reads would
	m.mockScheduleRepo.EXPECT().List(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*entity.ScheduleEntry, error) {
			return []*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil
		}).Times(2)
	m.mockMessenger.EXPECT().Send(gomock.Any(), "slack:C1", gomock.Any()).Return(nil).Times(2)
	m.mockMessenger.EXPECT().Send(gomock.Any(), "telegram:-100", gomock.Any()).Return(nil).Times(2)
	m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(2)

	s := newReminder(m.mockDataManager, m.mockMessenger, newTestConfig(t), fixedClock(at(3, 17, 46)), zap.NewNop())

	var wg sync.WaitGroup
	results := make([]entity.ScanResult, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.Scan(context.Background())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, 1, results[i].Delivered)
		assert.Equal(t, 0, results[i].MarkFailures)
	}
	assert.NotEqual(t, results[0].ScanID, results[1].ScanID)
}

func Test_reminderService_Scan_PacedSendCancelled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().List(gomock.Any()).Return([]*entity.ScheduleEntry{entryAt(1, "U1", 3)}, nil).Times(1)
	m.mockMessenger.EXPECT().Send(gomock.Any(), "slack:C1", gomock.Any()).Return(nil).Times(1)
	m.mockScheduleRepo.EXPECT().SetNotified(gomock.Any(), int64(1), true).Return(nil).Times(1)

	cfg := newTestConfig(t)
	cfg.SendRatePerSec = 1

	// one token per second: the second target cannot be reached before the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	s := newReminder(m.mockDataManager, m.mockMessenger, cfg, fixedClock(at(3, 17, 46)), zap.NewNop())
	got, err := s.Scan(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Delivered)
	assert.Equal(t, 1, got.SendFailures)
}

func Test_newSendLimiter(t *testing.T) {
	unlimited := newSendLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, unlimited.Allow())
	}

	paced := newSendLimiter(2)
	assert.True(t, paced.Allow())
	assert.True(t, paced.Allow())
	assert.False(t, paced.Allow())
}

func Test_reminderText(t *testing.T) {
	entry := entryAt(1, "U1", 3)

	text := reminderText(entry, taipei)

	assert.True(t, strings.Contains(text, "U1"))
	assert.Contains(t, text, "Friday, October 3, 2025")
	assert.Contains(t, text, "Clocked in: 09:00")
	assert.Contains(t, text, "Earliest clock-out: 18:00")
}
