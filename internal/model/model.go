package model

import "time"

// Meeting is one row of the meetings table. Email is nil when the caller
// gave none; CreatedAt is nil only for rows inserted outside this service
// with an explicit NULL.
type Meeting struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       *string    `json:"email"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	CreatedAt   *time.Time `json:"created_at"`
}

// NewMeeting is what the caller supplies on creation. ScheduledAt stays a
// string so the database's timestamp parser decides what is acceptable.
type NewMeeting struct {
	Name        string
	Email       *string
	ScheduledAt string
}
