package rpc_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/handler/handlertest"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/rpc"
)

var contact = config.Contact{Name: "Your Name", Title: "t", Email: "e", Bio: "b"}

func setup(t *testing.T, rl *middleware.RateLimiter) (*rpc.Client, *handlertest.Store) {
	t.Helper()
	st := handlertest.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := rpc.NewServer(rpc.NewMeetingServer(st, contact, log), rl)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return rpc.NewClient(conn), st
}

func code(err error) codes.Code {
	s, _ := status.FromError(err)
	return s.Code()
}

func TestGetContact(t *testing.T) {
	c, _ := setup(t, nil)

	got, err := c.GetContact(context.Background())
	if err != nil {
		t.Fatalf("get contact: %v", err)
	}
	if *got != contact {
		t.Errorf("contact: got %+v", got)
	}
}

func TestCreateAndList(t *testing.T) {
	c, _ := setup(t, nil)
	ctx := context.Background()

	email := "a@b.com"
	cr, err := c.CreateMeeting(ctx, &handler.CreateMeetingRequest{Name: "Alice", Email: &email, ScheduledAt: "2025-06-01T10:00:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cr.Meeting == nil || cr.Meeting.ID == 0 || cr.Meeting.Name != "Alice" {
		t.Fatalf("unexpected meeting: %+v", cr.Meeting)
	}

	if _, err := c.CreateMeeting(ctx, &handler.CreateMeetingRequest{Name: "Early", ScheduledAt: "2024-01-01T00:00:00"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	lr, err := c.ListMeetings(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lr.Meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(lr.Meetings))
	}
	if lr.Meetings[0].Name != "Early" || lr.Meetings[1].Name != "Alice" {
		t.Errorf("order: %s, %s", lr.Meetings[0].Name, lr.Meetings[1].Name)
	}
	if lr.Meetings[0].Email != nil {
		t.Error("email should stay null")
	}
}

func TestCreateValidation(t *testing.T) {
	c, st := setup(t, nil)

	tests := []struct {
		name string
		req  *handler.CreateMeetingRequest
	}{
		{"missing name", &handler.CreateMeetingRequest{ScheduledAt: "2025-06-01T10:00:00"}},
		{"missing scheduled_at", &handler.CreateMeetingRequest{Name: "A"}},
		{"empty", &handler.CreateMeetingRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateMeeting(context.Background(), tt.req)
			if code(err) != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %v", err)
			}
			if s, _ := status.FromError(err); s.Message() != handler.MsgRequired {
				t.Errorf("message: got %q", s.Message())
			}
		})
	}
	if st.Len() != 0 {
		t.Error("rejected requests inserted rows")
	}
}

func TestStoreFailure(t *testing.T) {
	c, st := setup(t, nil)
	st.Err = handlertest.ErrDown

	if _, err := c.ListMeetings(context.Background()); code(err) != codes.Internal {
		t.Errorf("list: expected Internal, got %v", err)
	}
	_, err := c.CreateMeeting(context.Background(), &handler.CreateMeetingRequest{Name: "A", ScheduledAt: "2025-06-01T10:00:00"})
	if code(err) != codes.Internal {
		t.Errorf("create: expected Internal, got %v", err)
	}
}

func TestCreateRateLimited(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	defer rl.Close()
	c, _ := setup(t, rl)
	ctx := context.Background()
	req := &handler.CreateMeetingRequest{Name: "A", ScheduledAt: "2025-06-01T10:00:00"}

	if _, err := c.CreateMeeting(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := c.CreateMeeting(ctx, req); code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}
	if _, err := c.ListMeetings(ctx); err != nil {
		t.Errorf("list should not be limited: %v", err)
	}
}
