package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// checkRateLimit admits one trade against the pool's fixed-window limiter and
// mutates the in-memory counters. The caller persists the state afterwards,
// so a rejected transaction rolls the count back automatically.
func (k Keeper) checkRateLimit(ctx sdk.Context, state *types.PoolState) error {
	now := ctx.BlockTime().Unix()
	rl := &state.RateLimit

	if now-rl.LastReset >= int64(rl.WindowSeconds) {
		rl.Count = 0
		rl.LastReset = now

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRateLimitReset,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", state.PoolId)),
				sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
			),
		)
	}

	if rl.Count >= rl.MaxCalls {
		return types.ErrRateLimitExceeded.Wrapf(
			"pool %d: %d calls in the current %ds window, maximum %d",
			state.PoolId, rl.Count, rl.WindowSeconds, rl.MaxCalls,
		)
	}

	rl.Count++
	return nil
}
