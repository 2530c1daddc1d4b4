package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/clockin-bot/internal/domain"
	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepo_AppendAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAttendanceRepo(db.conn)
	ctx := context.Background()

	clockIn := &entity.AttendanceRecord{
		RecipientID: "U1",
		CivilDate:   "2025/08/12",
		StartTime:   "09:00",
		OffTime:     "18:00",
	}
	leave := &entity.AttendanceRecord{
		RecipientID: "U2",
		CivilDate:   "2025/08/12",
		OffTime:     domain.LeaveMarker,
	}

	require.NoError(t, repo.Append(ctx, clockIn))
	require.NoError(t, repo.Append(ctx, leave))
	assert.NotZero(t, clockIn.ID)
	assert.NotZero(t, leave.ID)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "U1", records[0].RecipientID)
	assert.Equal(t, "09:00", records[0].StartTime)
	assert.Equal(t, "18:00", records[0].OffTime)
	assert.Equal(t, entity.KindClockIn, records[0].Kind())

	assert.Equal(t, "U2", records[1].RecipientID)
	assert.Empty(t, records[1].StartTime)
	assert.Equal(t, entity.KindLeave, records[1].Kind())
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	record := func(id string) *entity.AttendanceRecord {
		return &entity.AttendanceRecord{RecipientID: id, CivilDate: "2025/08/12", StartTime: "09:00", OffTime: "18:00"}
	}

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.Attendance().Append(ctx, record("U1"))
	})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Attendance().Append(ctx, record("U2")); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	records, err := dm.Attendance().List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "Rolled back append should not be visible")
	assert.Equal(t, "U1", records[0].RecipientID)
}
