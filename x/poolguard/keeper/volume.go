package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// applyVolumeDecay ages the tracked volume by whole elapsed hours. Each hour
// compounds a DecayRatePerHour percent reduction; after VolumeDecayFullHours
// the counter zeroes outright. LastReset advances only by the hours actually
// applied, so the remainder keeps accruing and repeated calls within the same
// hour are no-ops.
func (k Keeper) applyVolumeDecay(ctx sdk.Context, state *types.PoolState) error {
	now := ctx.BlockTime().Unix()
	v := &state.Volume

	if v.LastReset == 0 {
		v.LastReset = now
		return nil
	}

	elapsed := now - v.LastReset
	if elapsed < types.SecondsPerHour {
		return nil
	}

	hours := elapsed / types.SecondsPerHour
	before := v.CurrentVolume

	if hours >= types.VolumeDecayFullHours {
		v.CurrentVolume = math.ZeroInt()
		v.LastReset = now
	} else {
		keep := math.NewIntFromUint64(100 - v.DecayRatePerHour)
		hundred := math.NewInt(100)
		decayed := v.CurrentVolume
		for i := int64(0); i < hours; i++ {
			var err error
			decayed, err = SafeMulDiv(decayed, keep, hundred)
			if err != nil {
				return err
			}
		}
		v.CurrentVolume = decayed
		v.LastReset += hours * types.SecondsPerHour
	}

	if !v.CurrentVolume.Equal(before) {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeVolumeDecayed,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", state.PoolId)),
				sdk.NewAttribute(types.AttributeKeyOldValue, before.String()),
				sdk.NewAttribute(types.AttributeKeyNewValue, v.CurrentVolume.String()),
				sdk.NewAttribute(types.AttributeKeyHoursPassed, fmt.Sprintf("%d", hours)),
			),
		)
	}
	return nil
}

// checkDailyVolume rejects a trade that would push the decayed volume past
// the daily cap, then records the trade's volume.
func (k Keeper) checkDailyVolume(state *types.PoolState, amountIn math.Int) error {
	v := &state.Volume

	next, err := SafeAdd(v.CurrentVolume, amountIn)
	if err != nil {
		return err
	}
	if next.GT(v.DailyLimit) {
		return types.ErrDailyVolumeLimitExceeded.Wrapf(
			"pool %d: volume %s plus trade %s exceeds daily limit %s",
			state.PoolId, v.CurrentVolume, amountIn, v.DailyLimit,
		)
	}

	v.CurrentVolume = next
	return nil
}
