package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// InitGenesis initializes the poolguard store from genesis state
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	for _, pool := range gs.Pools {
		if err := k.SetPoolState(ctx, pool); err != nil {
			return fmt.Errorf("init genesis: pool %d: %w", pool.PoolId, err)
		}
	}
	for _, entry := range gs.Blacklist {
		trader, err := sdk.AccAddressFromBech32(entry.Trader)
		if err != nil {
			return fmt.Errorf("init genesis: blacklist entry for pool %d: %w", entry.PoolId, err)
		}
		k.setBlacklisted(ctx, entry.PoolId, trader)
	}
	k.SetNextPoolID(ctx, gs.NextPoolId)
	return nil
}

// ExportGenesis exports the poolguard store into genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	pools := k.GetAllPoolStates(ctx)

	var blacklist []types.BlacklistEntry
	for _, pool := range pools {
		for _, trader := range k.GetBlacklistedTraders(ctx, pool.PoolId) {
			blacklist = append(blacklist, types.BlacklistEntry{
				PoolId: pool.PoolId,
				Trader: trader,
			})
		}
	}

	return &types.GenesisState{
		Pools:      pools,
		Blacklist:  blacklist,
		NextPoolId: k.GetNextPoolID(ctx),
	}
}
