package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	PendingUpdate(context.Context, *QueryPendingUpdateRequest) (*QueryPendingUpdateResponse, error)
	Blacklist(context.Context, *QueryBlacklistRequest) (*QueryBlacklistResponse, error)
	IsBlacklisted(context.Context, *QueryIsBlacklistedRequest) (*QueryIsBlacklistedResponse, error)
	QuoteTrade(context.Context, *QueryQuoteTradeRequest) (*QueryQuoteTradeResponse, error)
}

// QueryPoolRequest asks for one pool by id
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse carries the full pool state
type QueryPoolResponse struct {
	Pool PoolState `json:"pool"`
}

// QueryPoolsRequest asks for all pools with pagination
type QueryPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPoolsResponse carries a page of pools
type QueryPoolsResponse struct {
	Pools      []PoolState         `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryPendingUpdateRequest asks for the staged parameter update of a pool
type QueryPendingUpdateRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPendingUpdateResponse carries the staged update, nil when none
type QueryPendingUpdateResponse struct {
	PendingUpdate *PendingUpdate `json:"pending_update,omitempty"`
}

// QueryBlacklistRequest asks for the banned traders of a pool
type QueryBlacklistRequest struct {
	PoolId     uint64             `json:"pool_id"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryBlacklistResponse carries a page of banned trader addresses
type QueryBlacklistResponse struct {
	Traders    []string            `json:"traders"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryIsBlacklistedRequest asks whether one trader is banned from a pool
type QueryIsBlacklistedRequest struct {
	PoolId uint64 `json:"pool_id"`
	Trader string `json:"trader"`
}

// QueryIsBlacklistedResponse answers the membership check
type QueryIsBlacklistedResponse struct {
	Blacklisted bool `json:"blacklisted"`
}

// QueryQuoteTradeRequest asks for the fee and output of a hypothetical trade
// without executing it
type QueryQuoteTradeRequest struct {
	PoolId   uint64   `json:"pool_id"`
	AmountIn math.Int `json:"amount_in"`
}

// QueryQuoteTradeResponse carries the quoted trade outcome
type QueryQuoteTradeResponse struct {
	AmountOut      math.Int `json:"amount_out"`
	FeeAmount      math.Int `json:"fee_amount"`
	FeeMode        FeeMode  `json:"fee_mode"`
	PriceImpactBps uint64   `json:"price_impact_bps"`
}
