package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the poolguard QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Pool returns a specific pool by ID
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	state, err := qs.Keeper.GetPoolState(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}

	return &types.QueryPoolResponse{Pool: state}, nil
}

// Pools returns all pools with pagination
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	all := qs.Keeper.GetAllPoolStates(goCtx)
	page, pageRes := paginateSlice(all, normalizePagination(req.Pagination))

	return &types.QueryPoolsResponse{Pools: page, Pagination: pageRes}, nil
}

// PendingUpdate returns the staged parameter update of a pool, nil when none
func (qs queryServer) PendingUpdate(goCtx context.Context, req *types.QueryPendingUpdateRequest) (*types.QueryPendingUpdateResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	state, err := qs.Keeper.GetPoolState(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}

	return &types.QueryPendingUpdateResponse{PendingUpdate: state.PendingUpdate}, nil
}

// Blacklist returns the banned traders of a pool
func (qs queryServer) Blacklist(goCtx context.Context, req *types.QueryBlacklistRequest) (*types.QueryBlacklistResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	if !qs.Keeper.HasPoolState(goCtx, req.PoolId) {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}

	traders := qs.Keeper.GetBlacklistedTraders(goCtx, req.PoolId)
	page, pageRes := paginateSlice(traders, normalizePagination(req.Pagination))

	return &types.QueryBlacklistResponse{Traders: page, Pagination: pageRes}, nil
}

// IsBlacklisted answers whether one trader is banned from a pool
func (qs queryServer) IsBlacklisted(goCtx context.Context, req *types.QueryIsBlacklistedRequest) (*types.QueryIsBlacklistedResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	trader, err := sdk.AccAddressFromBech32(req.Trader)
	if err != nil {
		return nil, types.ErrInvalidTrader.Wrapf("%v", err)
	}
	if !qs.Keeper.HasPoolState(goCtx, req.PoolId) {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}

	return &types.QueryIsBlacklistedResponse{
		Blacklisted: qs.Keeper.IsBlacklisted(goCtx, req.PoolId, trader),
	}, nil
}

// QuoteTrade prices a hypothetical trade without executing it
func (qs queryServer) QuoteTrade(goCtx context.Context, req *types.QueryQuoteTradeRequest) (*types.QueryQuoteTradeResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	result, err := qs.Keeper.QuoteTrade(goCtx, req.PoolId, req.AmountIn)
	if err != nil {
		return nil, err
	}

	return &types.QueryQuoteTradeResponse{
		AmountOut:      result.AmountOut,
		FeeAmount:      result.FeeAmount,
		FeeMode:        result.FeeMode,
		PriceImpactBps: result.PriceImpactBps,
	}, nil
}

// normalizePagination enforces sane defaults and caps on page requests
func normalizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}
	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}
	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}
	return p
}

// paginateSlice applies offset/limit pagination to an in-memory slice
func paginateSlice[T any](items []T, p *query.PageRequest) ([]T, *query.PageResponse) {
	total := uint64(len(items))
	pageRes := &query.PageResponse{Total: total}

	offset := p.Offset
	if offset >= total {
		return nil, pageRes
	}

	end := offset + p.Limit
	if end > total {
		end = total
	}
	if end < total {
		pageRes.NextKey = sdk.Uint64ToBigEndian(end)
	}
	return items[offset:end], pageRes
}
