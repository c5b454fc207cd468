package rpc

import (
	"context"

	"google.golang.org/grpc"

	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/handler"
)

// Client calls MeetingService over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *Client) GetContact(ctx context.Context, opts ...grpc.CallOption) (*config.Contact, error) {
	out := new(config.Contact)
	if err := c.invoke(ctx, MethodGetContact, &GetContactRequest{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMeetings(ctx context.Context, opts ...grpc.CallOption) (*ListMeetingsResponse, error) {
	out := new(ListMeetingsResponse)
	if err := c.invoke(ctx, MethodListMeetings, &ListMeetingsRequest{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMeeting(ctx context.Context, in *handler.CreateMeetingRequest, opts ...grpc.CallOption) (*CreateMeetingResponse, error) {
	out := new(CreateMeetingResponse)
	if err := c.invoke(ctx, MethodCreateMeeting, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
