package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// ComputeTradeFee quotes the fee for amountIn against the pool's fee policy
// at blockTime. Early-trade pricing wins inside the launch window, then the
// volume tier schedule, then the default rate, then the minimum rate when no
// default is set. The result is floored at MinimumFee so dust trades cannot
// round the fee to zero.
func ComputeTradeFee(state types.PoolState, amountIn math.Int, blockTime int64) (math.Int, types.FeeMode, error) {
	feeBps := state.DefaultFeeBps
	mode := types.FeeModeNone

	if state.PoolStartTime > 0 && state.Trade.EarlyTradeFeeBps > 0 {
		elapsed := blockTime - state.PoolStartTime
		if elapsed >= 0 && elapsed <= int64(state.Trade.EarlyTradeWindowSeconds) {
			feeBps = state.Trade.EarlyTradeFeeBps
			mode = types.FeeModeEarlyTrade
		}
	}

	if mode == types.FeeModeNone {
		if tier := types.SelectFeeTier(state.FeeTiers, state.Volume.CurrentVolume); tier != nil {
			feeBps = tier.FeeBps
			mode = types.FeeModeVolumeBased
		}
	}

	// A zero default rate means unset, not free. Trades always pay at least
	// the minimum rate so the fee floor below can never be skipped.
	if feeBps == 0 {
		feeBps = types.MinimumFeeBps
	}
	if feeBps > types.MaximumFeeBps && mode != types.FeeModeEarlyTrade {
		return math.Int{}, mode, types.ErrFeeTooHigh.Wrapf("%d bps above maximum %d", feeBps, types.MaximumFeeBps)
	}

	fee, err := SafeMulDiv(amountIn, math.NewIntFromUint64(feeBps), math.NewIntFromUint64(types.BpsDenominator))
	if err != nil {
		return math.Int{}, mode, err
	}

	minimumFee := math.NewIntFromUint64(types.MinimumFee)
	if fee.LT(minimumFee) {
		fee = minimumFee
	}
	if fee.GTE(amountIn) {
		return math.Int{}, mode, types.ErrFeeTooHigh.Wrapf("fee %s consumes the whole trade of %s", fee, amountIn)
	}

	return fee, mode, nil
}

// WithdrawFees moves the accumulated fees from the module account to the
// admin and zeroes the pool's fee accumulator.
func (k Keeper) WithdrawFees(ctx context.Context, poolID uint64, admin sdk.AccAddress) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	var amount math.Int
	err := k.WithReentrancyGuard(ctx, poolID, "withdraw_fees", func() error {
		state, err := k.GetPoolState(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.requireAdmin(state, admin); err != nil {
			return err
		}
		if state.TotalFeesCollected.IsZero() {
			return types.ErrNoFeesAvailable.Wrapf("pool %d", poolID)
		}

		amount = state.TotalFeesCollected
		state.TotalFeesCollected = math.ZeroInt()
		state.LastUpdate = sdkCtx.BlockTime().Unix()
		state.InstructionCounter++

		// Commit state changes and the payout together so a failed bank
		// transfer cannot leave the accumulator zeroed.
		cacheCtx, writeFn := sdkCtx.CacheContext()
		if err := k.SetPoolState(cacheCtx, state); err != nil {
			return err
		}
		coins := sdk.NewCoins(sdk.NewCoin(state.TokenDenom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, admin, coins); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("fee payout: %v", err)
		}
		writeFn()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeFeesWithdrawn,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return amount, nil
}

// LockFeeTiers freezes the tier schedule. Unlocking requires the parameter
// update timelock so traders get notice before fees can move again.
func (k Keeper) LockFeeTiers(ctx context.Context, poolID uint64, admin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if state.FeeTiersLocked {
		return types.ErrFeeTiersLocked.Wrapf("pool %d", poolID)
	}

	state.FeeTiersLocked = true
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeTiersLocked,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
		),
	)
	return nil
}

// ScheduleFeeTiersUnlock stages an unlock behind the parameter timelock.
// Returns the time at which the unlock becomes applicable.
func (k Keeper) ScheduleFeeTiersUnlock(ctx context.Context, poolID uint64, admin sdk.AccAddress) (int64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return 0, err
	}
	if !state.FeeTiersLocked {
		return 0, types.ErrFeeTiersNotLocked.Wrapf("pool %d", poolID)
	}

	// Like ScheduleParameterUpdate, this replaces any pending update.
	now := sdkCtx.BlockTime().Unix()
	applicable := now + types.ParameterUpdateTimelock
	state.PendingUpdate = &types.PendingUpdate{
		ScheduledTime: now,
		FeeSettings: &types.FeeSettingsUpdate{
			FeeTiers:       state.FeeTiers,
			FeeTiersLocked: false,
		},
	}
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeTiersUnlockScheduled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyScheduledTime, fmt.Sprintf("%d", applicable)),
		),
	)
	return applicable, nil
}

// requireAdmin checks that actor is the pool's operational admin
func (k Keeper) requireAdmin(state types.PoolState, actor sdk.AccAddress) error {
	if state.Admin != actor.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the pool admin", actor)
	}
	return nil
}

// requireEmergencyAdmin checks that actor is the pool's emergency admin
func (k Keeper) requireEmergencyAdmin(state types.PoolState, actor sdk.AccAddress) error {
	if state.EmergencyAdmin != actor.String() {
		return types.ErrInvalidEmergencyAdmin.Wrapf("%s is not the emergency admin", actor)
	}
	return nil
}
