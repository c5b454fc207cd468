package rpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/model"
)

const (
	serviceName = "meetings.v1.MeetingService"

	MethodGetContact    = "/" + serviceName + "/GetContact"
	MethodListMeetings  = "/" + serviceName + "/ListMeetings"
	MethodCreateMeeting = "/" + serviceName + "/CreateMeeting"
)

type GetContactRequest struct{}

type ListMeetingsRequest struct{}

type ListMeetingsResponse struct {
	Meetings []model.Meeting `json:"meetings"`
}

type CreateMeetingResponse struct {
	Meeting *model.Meeting `json:"meeting"`
}

// MeetingServer exposes the HTTP API's three operations over gRPC.
type MeetingServer struct {
	store   handler.MeetingStore
	contact config.Contact
	log     *slog.Logger
}

func NewMeetingServer(st handler.MeetingStore, contact config.Contact, log *slog.Logger) *MeetingServer {
	if log == nil {
		log = slog.Default()
	}
	return &MeetingServer{store: st, contact: contact, log: log}
}

func (s *MeetingServer) GetContact(ctx context.Context, _ *GetContactRequest) (*config.Contact, error) {
	c := s.contact
	return &c, nil
}

func (s *MeetingServer) ListMeetings(ctx context.Context, _ *ListMeetingsRequest) (*ListMeetingsResponse, error) {
	ms, err := s.store.ListMeetings(ctx)
	if err != nil {
		s.log.Error("rpc list meetings", "err", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &ListMeetingsResponse{Meetings: ms}, nil
}

func (s *MeetingServer) CreateMeeting(ctx context.Context, req *handler.CreateMeetingRequest) (*CreateMeetingResponse, error) {
	if err := req.Validate(); err != nil {
		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			return nil, status.Error(codes.InvalidArgument, ve.Error())
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	m, err := s.store.CreateMeeting(ctx, req.NewMeeting())
	if err != nil {
		s.log.Error("rpc create meeting", "err", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &CreateMeetingResponse{Meeting: m}, nil
}

// NewServer builds a grpc.Server with the meeting service registered. rl may
// be nil.
func NewServer(ms *MeetingServer, rl *middleware.RateLimiter) *grpc.Server {
	icpts := []grpc.UnaryServerInterceptor{logUnary(ms.log)}
	if rl != nil {
		icpts = append(icpts, middleware.UnaryRateLimit(rl, MethodCreateMeeting))
	}
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(icpts...))
	srv.RegisterService(&serviceDesc, ms)
	return srv
}

func logUnary(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		resp, err := next(ctx, req)
		log.Info("grpc request", "method", info.FullMethod, "code", status.Code(err).String())
		return resp, err
	}
}

type meetingService interface {
	GetContact(context.Context, *GetContactRequest) (*config.Contact, error)
	ListMeetings(context.Context, *ListMeetingsRequest) (*ListMeetingsResponse, error)
	CreateMeeting(context.Context, *handler.CreateMeetingRequest) (*CreateMeetingResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*meetingService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetContact", Handler: unary(MethodGetContact, meetingService.GetContact)},
		{MethodName: "ListMeetings", Handler: unary(MethodListMeetings, meetingService.ListMeetings)},
		{MethodName: "CreateMeeting", Handler: unary(MethodCreateMeeting, meetingService.CreateMeeting)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meetings/v1/meetings.proto",
}

// unary adapts a typed method to the grpc.MethodDesc handler shape.
func unary[Req, Resp any](fullMethod string, fn func(meetingService, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, icpt grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if icpt == nil {
			return fn(srv.(meetingService), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		h := func(ctx context.Context, req any) (any, error) {
			return fn(srv.(meetingService), ctx, req.(*Req))
		}
		return icpt(ctx, in, info, h)
	}
}
