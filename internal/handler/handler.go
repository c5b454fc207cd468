package handler

import (
	"context"
	"log/slog"

	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/model"
)

// MeetingStore is the persistence the handlers need. *store.Store satisfies it.
type MeetingStore interface {
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	CreateMeeting(ctx context.Context, in model.NewMeeting) (*model.Meeting, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	store   MeetingStore
	contact config.Contact
	log     *slog.Logger
}

func New(st MeetingStore, contact config.Contact, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{store: st, contact: contact, log: log}
}
