package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

type attendanceRepo struct {
	db dbConn
}

func newAttendanceRepo(db dbConn) contract.AttendanceRepo {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Append(ctx context.Context, record *entity.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (recipient_id, civil_date, start_time, off_time)
		VALUES (?, ?, ?, ?)
	`

	row := encodeAttendance(record)
	result, err := r.db.ExecContext(ctx, query,
		row[attColRecipientID],
		row[attColCivilDate],
		row[attColStartTime],
		row[attColOffTime],
	)
	if err != nil {
		return fmt.Errorf("failed to append attendance record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *attendanceRepo) List(ctx context.Context) ([]*entity.AttendanceRecord, error) {
	query := `
		SELECT id, recipient_id, civil_date, start_time, off_time, created_at
		FROM attendance_records
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []*entity.AttendanceRecord
	for rows.Next() {
		var (
			id        int64
			row       attendanceRow
			createdAt time.Time
		)
		err := rows.Scan(
			&id,
			&row[attColRecipientID],
			&row[attColCivilDate],
			&row[attColStartTime],
			&row[attColOffTime],
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		decoded := decodeAttendance(id, row)
		decoded.CreatedAt = createdAt
		records = append(records, decoded)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
