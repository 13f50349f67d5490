package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	PendingUpdate(ctx context.Context, in *QueryPendingUpdateRequest, opts ...grpc.CallOption) (*QueryPendingUpdateResponse, error)
	Blacklist(ctx context.Context, in *QueryBlacklistRequest, opts ...grpc.CallOption) (*QueryBlacklistResponse, error)
	IsBlacklisted(ctx context.Context, in *QueryIsBlacklistedRequest, opts ...grpc.CallOption) (*QueryIsBlacklistedResponse, error)
	QuoteTrade(ctx context.Context, in *QueryQuoteTradeRequest, opts ...grpc.CallOption) (*QueryQuoteTradeResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/Pools", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PendingUpdate(ctx context.Context, in *QueryPendingUpdateRequest, opts ...grpc.CallOption) (*QueryPendingUpdateResponse, error) {
	out := new(QueryPendingUpdateResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/PendingUpdate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Blacklist(ctx context.Context, in *QueryBlacklistRequest, opts ...grpc.CallOption) (*QueryBlacklistResponse, error) {
	out := new(QueryBlacklistResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/Blacklist", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) IsBlacklisted(ctx context.Context, in *QueryIsBlacklistedRequest, opts ...grpc.CallOption) (*QueryIsBlacklistedResponse, error) {
	out := new(QueryIsBlacklistedResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/IsBlacklisted", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteTrade(ctx context.Context, in *QueryQuoteTradeRequest, opts ...grpc.CallOption) (*QueryQuoteTradeResponse, error) {
	out := new(QueryQuoteTradeResponse)
	err := c.cc.Invoke(ctx, "/rheos.poolguard.v1.Query/QuoteTrade", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
