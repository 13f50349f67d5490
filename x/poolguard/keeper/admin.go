package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// UpdateAdmin rotates the pool's operational admin. Rotations are throttled
// by AdminUpdateCooldown so a compromised key cannot be flipped back and
// forth within a single day.
func (k Keeper) UpdateAdmin(ctx context.Context, poolID uint64, admin, newAdmin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if newAdmin.String() == state.Admin {
		return types.ErrInvalidNewAdmin.Wrap("new admin must differ from current admin")
	}
	if newAdmin.String() == state.EmergencyAdmin {
		return types.ErrInvalidNewAdmin.Wrap("new admin must differ from emergency admin")
	}
	if k.IsBlacklisted(ctx, poolID, newAdmin) {
		return types.ErrInvalidNewAdmin.Wrap("new admin is blacklisted")
	}

	now := sdkCtx.BlockTime().Unix()
	if state.LastAdminUpdate > 0 && now-state.LastAdminUpdate < types.AdminUpdateCooldown {
		return types.ErrAdminCooldown.Wrapf(
			"pool %d: next rotation possible in %d seconds",
			poolID, types.AdminUpdateCooldown-(now-state.LastAdminUpdate),
		)
	}

	oldAdmin := state.Admin
	state.Admin = newAdmin.String()
	state.LastAdminUpdate = now
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAdminUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyOldAdmin, oldAdmin),
			sdk.NewAttribute(types.AttributeKeyNewAdmin, newAdmin.String()),
		),
	)
	return nil
}
