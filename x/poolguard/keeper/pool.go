package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// GetPoolState retrieves a pool state record by ID
func (k Keeper) GetPoolState(ctx context.Context, poolID uint64) (types.PoolState, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolStateKey(poolID))
	if bz == nil {
		return types.PoolState{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var state types.PoolState
	// Use encoding/json for non-protobuf types
	if err := json.Unmarshal(bz, &state); err != nil {
		return types.PoolState{}, types.ErrInvalidState.Wrapf("pool %d: %v", poolID, err)
	}
	return state, nil
}

// SetPoolState saves a pool state record
func (k Keeper) SetPoolState(ctx context.Context, state types.PoolState) error {
	store := k.getStore(ctx)
	// Use encoding/json for non-protobuf types
	bz, err := json.Marshal(&state)
	if err != nil {
		return types.ErrInvalidState.Wrapf("pool %d: %v", state.PoolId, err)
	}
	store.Set(types.PoolStateKey(state.PoolId), bz)
	return nil
}

// HasPoolState reports whether a pool exists
func (k Keeper) HasPoolState(ctx context.Context, poolID uint64) bool {
	return k.getStore(ctx).Has(types.PoolStateKey(poolID))
}

// GetAllPoolStates returns every pool state record in key order
func (k Keeper) GetAllPoolStates(ctx context.Context) []types.PoolState {
	store := prefix.NewStore(k.getStore(ctx), types.PoolStateKeyPrefix)

	var pools []types.PoolState
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var state types.PoolState
		if err := json.Unmarshal(iterator.Value(), &state); err != nil {
			continue
		}
		pools = append(pools, state)
	}
	return pools
}

// GetNextPoolID returns the next pool ID without consuming it
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPoolID stores the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	store.Set(types.PoolCountKey, sdk.Uint64ToBigEndian(id))
}

// consumeNextPoolID returns the next pool ID and advances the counter
func (k Keeper) consumeNextPoolID(ctx context.Context) uint64 {
	id := k.GetNextPoolID(ctx)
	k.SetNextPoolID(ctx, id+1)
	return id
}
