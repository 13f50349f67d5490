package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// IsBlacklisted reports whether trader is banned from the pool
func (k Keeper) IsBlacklisted(ctx context.Context, poolID uint64, trader sdk.AccAddress) bool {
	return k.getStore(ctx).Has(types.BlacklistKey(poolID, trader))
}

// setBlacklisted marks trader as banned without touching the pool counter
func (k Keeper) setBlacklisted(ctx context.Context, poolID uint64, trader sdk.AccAddress) {
	k.getStore(ctx).Set(types.BlacklistKey(poolID, trader), []byte{0x01})
}

// clearBlacklisted removes the membership marker
func (k Keeper) clearBlacklisted(ctx context.Context, poolID uint64, trader sdk.AccAddress) {
	k.getStore(ctx).Delete(types.BlacklistKey(poolID, trader))
}

// GetBlacklistedTraders returns the banned trader addresses of a pool
func (k Keeper) GetBlacklistedTraders(ctx context.Context, poolID uint64) []string {
	store := prefix.NewStore(k.getStore(ctx), types.BlacklistPoolPrefix(poolID))

	var traders []string
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		traders = append(traders, sdk.AccAddress(iterator.Key()).String())
	}
	return traders
}

// BlacklistTrader bans one trader from the pool
func (k Keeper) BlacklistTrader(ctx context.Context, poolID uint64, admin, trader sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if !state.Protection.BlacklistEnabled {
		return types.ErrInvalidParameter.Wrapf("pool %d has the blacklist disabled", poolID)
	}
	if state.Admin == trader.String() || state.EmergencyAdmin == trader.String() {
		return types.ErrInvalidTrader.Wrap("cannot blacklist a pool admin")
	}
	if k.IsBlacklisted(ctx, poolID, trader) {
		return types.ErrTraderAlreadyBlacklisted.Wrapf("%s", trader)
	}
	if state.BlacklistSize >= types.MaxBlacklistSize {
		return types.ErrBlacklistFull.Wrapf("pool %d holds %d entries", poolID, state.BlacklistSize)
	}

	k.setBlacklisted(ctx, poolID, trader)
	state.BlacklistSize++
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTraderBlacklisted,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		),
	)
	return nil
}

// RemoveFromBlacklist lifts the ban on one trader
func (k Keeper) RemoveFromBlacklist(ctx context.Context, poolID uint64, admin, trader sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if !k.IsBlacklisted(ctx, poolID, trader) {
		return types.ErrTraderNotBlacklisted.Wrapf("%s", trader)
	}

	k.clearBlacklisted(ctx, poolID, trader)
	if state.BlacklistSize > 0 {
		state.BlacklistSize--
	}
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTraderUnblacklisted,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		),
	)
	return nil
}

// BatchBlacklistTraders bans several traders in one call. Traders already
// banned are skipped rather than failing the batch. Returns how many entries
// were added.
func (k Keeper) BatchBlacklistTraders(ctx context.Context, poolID uint64, admin sdk.AccAddress, traders []sdk.AccAddress) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if len(traders) > types.BatchBlacklistMaxSize {
		return 0, types.ErrBatchTooLarge.Wrapf("%d traders, maximum %d", len(traders), types.BatchBlacklistMaxSize)
	}

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return 0, err
	}
	if !state.Protection.BlacklistEnabled {
		return 0, types.ErrInvalidParameter.Wrapf("pool %d has the blacklist disabled", poolID)
	}

	var added uint64
	for _, trader := range traders {
		if state.Admin == trader.String() || state.EmergencyAdmin == trader.String() {
			return 0, types.ErrInvalidTrader.Wrap("cannot blacklist a pool admin")
		}
		if k.IsBlacklisted(ctx, poolID, trader) {
			continue
		}
		if state.BlacklistSize >= types.MaxBlacklistSize {
			return 0, types.ErrBlacklistFull.Wrapf("pool %d holds %d entries", poolID, state.BlacklistSize)
		}
		k.setBlacklisted(ctx, poolID, trader)
		state.BlacklistSize++
		added++
	}

	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBatchBlacklistDone,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", added)),
		),
	)
	return added, nil
}

// BatchUnblacklistTraders lifts several bans in one call. Traders that were
// not banned are skipped. Returns how many entries were removed.
func (k Keeper) BatchUnblacklistTraders(ctx context.Context, poolID uint64, admin sdk.AccAddress, traders []sdk.AccAddress) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if len(traders) > types.BatchBlacklistMaxSize {
		return 0, types.ErrBatchTooLarge.Wrapf("%d traders, maximum %d", len(traders), types.BatchBlacklistMaxSize)
	}

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return 0, err
	}

	var removed uint64
	for _, trader := range traders {
		if !k.IsBlacklisted(ctx, poolID, trader) {
			continue
		}
		k.clearBlacklisted(ctx, poolID, trader)
		if state.BlacklistSize > 0 {
			state.BlacklistSize--
		}
		removed++
	}

	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBatchUnblacklistDone,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", removed)),
		),
	)
	return removed, nil
}
