package browse

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.BrowseService"

// Full method names.
const (
	OpenViewMethod        = "/" + ServiceName + "/OpenView"
	UpdateViewMethod      = "/" + ServiceName + "/UpdateView"
	LoadMoreMethod        = "/" + ServiceName + "/LoadMore"
	GetViewMethod         = "/" + ServiceName + "/GetView"
	CloseViewMethod       = "/" + ServiceName + "/CloseView"
	ListCollectionsMethod = "/" + ServiceName + "/ListCollections"
)

// BrowseServiceServer is the server API. Requests and replies are
// google.protobuf.Struct documents with the same shape as the JSON API.
type BrowseServiceServer interface {
	OpenView(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateView(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LoadMore(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetView(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CloseView(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCollections(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBrowseServiceServer registers srv on s.
func RegisterBrowseServiceServer(s grpc.ServiceRegistrar, srv BrowseServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler(
	method string,
	call func(BrowseServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BrowseServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BrowseServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the browse service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BrowseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenView", Handler: unaryHandler(OpenViewMethod, BrowseServiceServer.OpenView)},
		{MethodName: "UpdateView", Handler: unaryHandler(UpdateViewMethod, BrowseServiceServer.UpdateView)},
		{MethodName: "LoadMore", Handler: unaryHandler(LoadMoreMethod, BrowseServiceServer.LoadMore)},
		{MethodName: "GetView", Handler: unaryHandler(GetViewMethod, BrowseServiceServer.GetView)},
		{MethodName: "CloseView", Handler: unaryHandler(CloseViewMethod, BrowseServiceServer.CloseView)},
		{MethodName: "ListCollections", Handler: unaryHandler(ListCollectionsMethod, BrowseServiceServer.ListCollections)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/browse.proto",
}

// Client calls the browse service over conn.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a browse service client.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OpenView(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, OpenViewMethod, in, opts...)
}

func (c *Client) UpdateView(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpdateViewMethod, in, opts...)
}

func (c *Client) LoadMore(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, LoadMoreMethod, in, opts...)
}

func (c *Client) GetView(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetViewMethod, in, opts...)
}

func (c *Client) CloseView(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CloseViewMethod, in, opts...)
}

func (c *Client) ListCollections(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCollectionsMethod, in, opts...)
}
