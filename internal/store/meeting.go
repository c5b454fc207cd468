package store

import (
	"context"
	"fmt"

	"meeting-scheduler/internal/model"
)

func (s *Store) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	// id breaks ties between equal scheduled_at values
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, scheduled_at, created_at
		 FROM meetings
		 ORDER BY scheduled_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	out := []model.Meeting{}
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.ScheduledAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return out, nil
}

// CreateMeeting inserts one row and returns it as stored. scheduled_at is
// passed as text so postgres does the parsing.
func (s *Store) CreateMeeting(ctx context.Context, in model.NewMeeting) (*model.Meeting, error) {
	m := &model.Meeting{}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO meetings (name, email, scheduled_at)
		 VALUES ($1, $2, CAST($3::text AS timestamp))
		 RETURNING id, name, email, scheduled_at, created_at`,
		in.Name, in.Email, in.ScheduledAt,
	).Scan(&m.ID, &m.Name, &m.Email, &m.ScheduledAt, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}
	return m, nil
}
