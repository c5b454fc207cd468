package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin/binding"

	"meeting-scheduler/internal/model"
)

// ValidationError is a client input problem, reported as 400 / InvalidArgument.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// MsgRequired is the body of every rejected create request.
const MsgRequired = "name and scheduled_at required"

// ErrRequired is the only validation failure a create request can produce.
var ErrRequired error = &ValidationError{msg: MsgRequired}

// CreateMeetingRequest is the body of POST /api/meetings. Only presence is
// checked; scheduled_at is left for the database to parse.
type CreateMeetingRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email"`
	ScheduledAt string  `json:"scheduled_at" binding:"required"`
}

func (r CreateMeetingRequest) Validate() error {
	if err := binding.Validator.ValidateStruct(r); err != nil {
		return ErrRequired
	}
	return nil
}

// NewMeeting maps the request to a store insert. An empty email is stored as null.
func (r CreateMeetingRequest) NewMeeting() model.NewMeeting {
	email := r.Email
	if email != nil && *email == "" {
		email = nil
	}
	return model.NewMeeting{Name: r.Name, Email: email, ScheduledAt: r.ScheduledAt}
}

// createMeetingBody is the untyped JSON shape of a create request. Fields may
// hold any JSON value; request converts them to text.
type createMeetingBody struct {
	Name        json.RawMessage `json:"name"`
	Email       json.RawMessage `json:"email"`
	ScheduledAt json.RawMessage `json:"scheduled_at"`
}

func (b createMeetingBody) request() CreateMeetingRequest {
	req := CreateMeetingRequest{Name: text(b.Name), ScheduledAt: text(b.ScheduledAt)}
	if email := text(b.Email); email != "" {
		req.Email = &email
	}
	return req
}

// text renders a JSON value as the string the store receives. Absent, null,
// false, zero and "" all render as "", which counts as missing.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', 'f':
		return ""
	case 't':
		return "true"
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return string(raw)
	}
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
