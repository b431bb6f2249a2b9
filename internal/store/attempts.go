package store

import (
	"context"
	"fmt"
	"time"
)

type attemptRepo struct {
	store *Store
}

// AttemptRepo returns the attempt history repository backed by this store.
func (s *Store) AttemptRepo() AttemptRepo {
	return &attemptRepo{store: s}
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO attempts
		  (id, student_name, student_class, mode, subject, score, total, percentage, band, duration_secs, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.ID, data.StudentName, data.StudentClass, data.Mode, data.Subject,
		data.Score, data.Total, data.Percentage, data.Band, data.DurationSecs,
		data.FinishedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptData, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, student_name, student_class, mode, subject, score, total, percentage, band, duration_secs, finished_at
		FROM attempts
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptData
	for rows.Next() {
		var a AttemptData
		var finishedAt int64
		if err := rows.Scan(
			&a.ID, &a.StudentName, &a.StudentClass, &a.Mode, &a.Subject,
			&a.Score, &a.Total, &a.Percentage, &a.Band, &a.DurationSecs, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.FinishedAt = time.Unix(finishedAt, 0)
		out = append(out, a)
	}
	return out, rows.Err()
}
