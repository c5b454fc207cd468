// Package handlertest provides an in-memory MeetingStore for tests.
package handlertest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"meeting-scheduler/internal/model"
)

// layouts approximates what postgres accepts for a timestamp literal.
var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var ErrDown = errors.New("connection refused")

type Store struct {
	mu     sync.Mutex
	rows   []model.Meeting
	nextID int64

	// Err, when set, is returned by every call.
	Err error
	Now func() time.Time
}

func New() *Store {
	return &Store{nextID: 1, Now: time.Now}
}

func (s *Store) ListMeetings(_ context.Context) ([]model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Meeting, len(s.rows))
	copy(out, s.rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, nil
}

func (s *Store) CreateMeeting(_ context.Context, in model.NewMeeting) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	at, err := parse(in.ScheduledAt)
	if err != nil {
		return nil, err
	}
	now := s.Now().UTC()
	m := model.Meeting{
		ID:          s.nextID,
		Name:        in.Name,
		Email:       in.Email,
		ScheduledAt: at,
		CreatedAt:   &now,
	}
	s.nextID++
	s.rows = append(s.rows, m)
	return &m, nil
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Err
}

// Len is the number of stored rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func parse(v string) (time.Time, error) {
	for _, l := range layouts {
		if t, err := time.Parse(l, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid input syntax for type timestamp: %q", v)
}
