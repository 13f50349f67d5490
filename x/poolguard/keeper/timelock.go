package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// ScheduleParameterUpdate stages a parameter change behind the 24 hour update
// timelock. Only one update can be pending per pool; scheduling while one is
// pending replaces it wholesale and restarts the timelock. Returns the time
// at which the update becomes applicable.
func (k Keeper) ScheduleParameterUpdate(ctx context.Context, poolID uint64, admin sdk.AccAddress, update types.PendingUpdate) (int64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return 0, err
	}

	// A locked tier schedule can only be changed by an update that also
	// unlocks it.
	if update.FeeSettings != nil && state.FeeTiersLocked && update.FeeSettings.FeeTiersLocked {
		return 0, types.ErrFeeTiersLocked.Wrapf("pool %d", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	applicable := now + types.ParameterUpdateTimelock
	update.ScheduledTime = now
	state.PendingUpdate = &update
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParameterUpdateScheduled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyScheduledTime, fmt.Sprintf("%d", applicable)),
		),
	)
	return applicable, nil
}

// CancelParameterUpdate discards the staged update before it is applied
func (k Keeper) CancelParameterUpdate(ctx context.Context, poolID uint64, admin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if state.PendingUpdate == nil {
		return types.ErrNoPendingUpdate.Wrapf("pool %d", poolID)
	}

	state.PendingUpdate = nil
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParameterUpdateCancelled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
		),
	)
	return nil
}

// ApplyParameterUpdate commits the staged update once its timelock expired.
// Every bundle is re-validated against the current state before anything is
// written; a bundle that no longer validates fails the whole apply and leaves
// the pending update in place. Returns the new pool version.
func (k Keeper) ApplyParameterUpdate(ctx context.Context, poolID uint64, admin sdk.AccAddress) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return 0, err
	}
	if state.PendingUpdate == nil {
		return 0, types.ErrNoPendingUpdate.Wrapf("pool %d", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	pending := state.PendingUpdate
	applicable := pending.ScheduledTime + types.ParameterUpdateTimelock
	if now < applicable {
		return 0, types.ErrTimelockNotExpired.Wrapf(
			"pool %d: applicable in %d seconds", poolID, applicable-now,
		)
	}

	if pending.TradeSettings != nil {
		u := pending.TradeSettings
		if err := types.ValidateTradeSettingsUpdate(*u); err != nil {
			return 0, err
		}
		state.Trade.MaxSizeBps = u.MaxTradeSizeBps
		state.Trade.MinSize = u.MinTradeSize
		state.Trade.CooldownSeconds = u.CooldownSeconds
		state.Trade.EarlyTradeFeeBps = u.EarlyTradeFeeBps
		state.Trade.EarlyTradeWindowSeconds = u.EarlyTradeWindowSeconds

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeTradeSettingsUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		))
	}

	if pending.ProtectionSettings != nil {
		u := pending.ProtectionSettings
		if err := types.ValidateProtectionSettingsUpdate(*u); err != nil {
			return 0, err
		}
		state.Volume.DailyLimit = u.MaxDailyVolume
		state.Protection.MaxPriceImpactBps = u.MaxPriceImpactBps
		state.CircuitBreaker.Threshold = u.CircuitBreakerThreshold
		state.CircuitBreaker.Window = u.CircuitBreakerWindow
		state.CircuitBreaker.Cooldown = u.CircuitBreakerCooldown
		state.RateLimit.WindowSeconds = u.RateLimitWindow
		state.RateLimit.MaxCalls = u.RateLimitMax

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeProtectionUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		))
	}

	if pending.FeeSettings != nil {
		u := pending.FeeSettings
		if err := types.ValidateFeeTiers(u.FeeTiers); err != nil {
			return 0, err
		}
		state.FeeTiers = u.FeeTiers
		state.FeeTiersLocked = u.FeeTiersLocked

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeFeeSettingsUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		))
	}

	if pending.StateSettings != nil {
		state.IsPaused = pending.StateSettings.IsPaused

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeStateSettingsUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		))
	}

	// The combined result must still be a coherent pool before committing.
	state.PendingUpdate = nil
	state.Version++
	state.LastUpdate = now
	state.InstructionCounter++
	if err := state.Validate(); err != nil {
		return 0, err
	}
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParametersUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyNewValue, fmt.Sprintf("%d", state.Version)),
		),
	)
	return state.Version, nil
}
