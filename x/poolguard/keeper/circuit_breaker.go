package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// checkCircuitBreaker admits one trade against the breaker threshold. The
// candidate volume is what the window would hold with this trade included; a
// candidate above the threshold trips the breaker and rejects the trade.
// While the cooldown from the last trigger is still running the trade is
// rejected without re-arming the trigger time.
//
// Because the rejection fails the whole tx, the LastTrigger written here
// rolls back with it; the trip is re-derived from volume on each attempt
// rather than read back from state. A persisted LastTrigger can only come
// from genesis or a manually seeded state, which the cooldown branches
// still honor.
func (k Keeper) checkCircuitBreaker(ctx sdk.Context, state *types.PoolState, amountIn math.Int) error {
	now := ctx.BlockTime().Unix()
	cb := &state.CircuitBreaker

	if cb.LastTrigger > 0 && now-cb.LastTrigger < int64(cb.Cooldown) {
		return types.ErrCircuitBreakerCooldown.Wrapf(
			"pool %d: cooling down for %d more seconds",
			state.PoolId, int64(cb.Cooldown)-(now-cb.LastTrigger),
		)
	}

	candidate, err := SafeAdd(state.Volume.CurrentVolume, amountIn)
	if err != nil {
		return err
	}
	if candidate.GT(cb.Threshold) {
		cb.LastTrigger = now

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCircuitBreakerTrip,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", state.PoolId)),
				sdk.NewAttribute(types.AttributeKeyVolume, candidate.String()),
				sdk.NewAttribute(types.AttributeKeyThreshold, cb.Threshold.String()),
				sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
			),
		)
		return types.ErrCircuitBreakerTriggered.Wrapf(
			"pool %d: volume %s would exceed threshold %s",
			state.PoolId, candidate, cb.Threshold,
		)
	}

	return nil
}

// ResetCircuitBreaker clears the trigger and the tracked volume once the
// cooldown has fully elapsed.
func (k Keeper) ResetCircuitBreaker(ctx sdk.Context, poolID uint64, admin sdk.AccAddress) error {
	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}

	now := ctx.BlockTime().Unix()
	cb := &state.CircuitBreaker
	if cb.LastTrigger > 0 && now-cb.LastTrigger < int64(cb.Cooldown) {
		return types.ErrCircuitBreakerCooldown.Wrapf(
			"pool %d: cannot reset for %d more seconds",
			poolID, int64(cb.Cooldown)-(now-cb.LastTrigger),
		)
	}

	cb.LastTrigger = 0
	state.Volume.CurrentVolume = math.ZeroInt()
	state.Volume.LastReset = now
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCircuitBreakerReset,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)
	return nil
}
