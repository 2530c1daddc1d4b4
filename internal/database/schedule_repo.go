package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/clockin-bot/internal/domain/contract"
	"github.com/diegoclair/clockin-bot/internal/domain/entity"
)

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Append(ctx context.Context, entry *entity.ScheduleEntry) error {
	query := `
		INSERT INTO schedule_entries (recipient_id, civil_date, start_time, off_at, notify_at, notified)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	row := encodeSchedule(entry)
	result, err := r.db.ExecContext(ctx, query,
		row[schedColRecipientID],
		row[schedColCivilDate],
		row[schedColStartTime],
		row[schedColOffAt],
		row[schedColNotifyAt],
		row[schedColNotified],
	)
	if err != nil {
		return fmt.Errorf("failed to append schedule entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

func (r *scheduleRepo) List(ctx context.Context) ([]*entity.ScheduleEntry, error) {
	query := `
		SELECT id, recipient_id, civil_date, start_time, off_at, notify_at, notified, created_at
		FROM schedule_entries
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ScheduleEntry
	for rows.Next() {
		var (
			id        int64
			row       scheduleRow
			createdAt time.Time
		)
		err := rows.Scan(
			&id,
			&row[schedColRecipientID],
			&row[schedColCivilDate],
			&row[schedColStartTime],
			&row[schedColOffAt],
			&row[schedColNotifyAt],
			&row[schedColNotified],
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}

		decoded := decodeSchedule(id, row)
		decoded.CreatedAt = createdAt
		entries = append(entries, decoded)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule entries: %w", err)
	}

	return entries, nil
}

func (r *scheduleRepo) SetNotified(ctx context.Context, id int64, notified bool) error {
	query := `UPDATE schedule_entries SET notified = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, encodeFlag(notified), id)
	if err != nil {
		return fmt.Errorf("failed to update notified flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("schedule entry %d not found", id)
	}

	return nil
}
