package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// TogglePause flips the admin pause flag. Unlike the emergency path this is
// immediate, but it only covers the admin's own flag; an emergency pause
// stays in force until the emergency admin resumes. Returns the flag after
// the toggle.
func (k Keeper) TogglePause(ctx context.Context, poolID uint64, admin sdk.AccAddress) (bool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return false, err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return false, err
	}

	state.IsPaused = !state.IsPaused
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return false, err
	}

	eventType := types.EventTypePoolResumed
	if state.IsPaused {
		eventType = types.EventTypePoolPaused
	}
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
		),
	)
	return state.IsPaused, nil
}

// FinalizePool permanently disables the emergency path. Irreversible.
func (k Keeper) FinalizePool(ctx context.Context, poolID uint64, admin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(state, admin); err != nil {
		return err
	}
	if state.IsFinalized {
		return types.ErrPoolFinalized.Wrapf("pool %d", poolID)
	}
	if state.IsEmergencyPaused {
		return types.ErrEmergencyPaused.Wrapf("pool %d: resume before finalizing", poolID)
	}

	state.IsFinalized = true
	state.EmergencyActionScheduledTime = 0
	state.LastUpdate = sdkCtx.BlockTime().Unix()
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolFinalized,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
		),
	)
	return nil
}

// ScheduleEmergencyPause starts the one hour emergency timelock. Returns the
// time at which the pause becomes applicable.
func (k Keeper) ScheduleEmergencyPause(ctx context.Context, poolID uint64, emergencyAdmin sdk.AccAddress) (int64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireEmergencyAdmin(state, emergencyAdmin); err != nil {
		return 0, err
	}
	if state.IsFinalized {
		return 0, types.ErrPoolFinalized.Wrapf("pool %d", poolID)
	}
	if state.IsEmergencyPaused {
		return 0, types.ErrEmergencyPaused.Wrapf("pool %d", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	applicable := now + types.EmergencyTimelockSeconds
	state.EmergencyActionScheduledTime = now
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyPauseScheduled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, emergencyAdmin.String()),
			sdk.NewAttribute(types.AttributeKeyScheduledTime, fmt.Sprintf("%d", applicable)),
		),
	)
	return applicable, nil
}

// ApplyEmergencyPause executes the scheduled pause after its timelock
func (k Keeper) ApplyEmergencyPause(ctx context.Context, poolID uint64, emergencyAdmin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireEmergencyAdmin(state, emergencyAdmin); err != nil {
		return err
	}
	if state.IsFinalized {
		return types.ErrPoolFinalized.Wrapf("pool %d", poolID)
	}
	if state.IsEmergencyPaused {
		return types.ErrEmergencyPaused.Wrapf("pool %d", poolID)
	}
	if state.EmergencyActionScheduledTime == 0 {
		return types.ErrNoPendingUpdate.Wrapf("pool %d: no emergency pause scheduled", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	applicable := state.EmergencyActionScheduledTime + types.EmergencyTimelockSeconds
	if now < applicable {
		return types.ErrTimelockNotExpired.Wrapf(
			"pool %d: applicable in %d seconds", poolID, applicable-now,
		)
	}

	state.IsEmergencyPaused = true
	state.EmergencyActionScheduledTime = 0
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyPaused,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, emergencyAdmin.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)
	return nil
}

// ScheduleEmergencyResume starts the one hour timelock to lift an emergency
// pause. Returns the time at which the resume becomes applicable.
func (k Keeper) ScheduleEmergencyResume(ctx context.Context, poolID uint64, emergencyAdmin sdk.AccAddress) (int64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return 0, err
	}
	if err := k.requireEmergencyAdmin(state, emergencyAdmin); err != nil {
		return 0, err
	}
	if !state.IsEmergencyPaused {
		return 0, types.ErrPoolNotPaused.Wrapf("pool %d is not emergency paused", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	applicable := now + types.EmergencyTimelockSeconds
	state.EmergencyActionScheduledTime = now
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyResumeScheduled,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, emergencyAdmin.String()),
			sdk.NewAttribute(types.AttributeKeyScheduledTime, fmt.Sprintf("%d", applicable)),
		),
	)
	return applicable, nil
}

// ApplyEmergencyResume lifts the emergency pause after its timelock
func (k Keeper) ApplyEmergencyResume(ctx context.Context, poolID uint64, emergencyAdmin sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return err
	}
	if err := k.requireEmergencyAdmin(state, emergencyAdmin); err != nil {
		return err
	}
	if !state.IsEmergencyPaused {
		return types.ErrPoolNotPaused.Wrapf("pool %d is not emergency paused", poolID)
	}
	if state.EmergencyActionScheduledTime == 0 {
		return types.ErrNoPendingUpdate.Wrapf("pool %d: no emergency resume scheduled", poolID)
	}

	now := sdkCtx.BlockTime().Unix()
	applicable := state.EmergencyActionScheduledTime + types.EmergencyTimelockSeconds
	if now < applicable {
		return types.ErrTimelockNotExpired.Wrapf(
			"pool %d: applicable in %d seconds", poolID, applicable-now,
		)
	}

	state.IsEmergencyPaused = false
	state.EmergencyActionScheduledTime = 0
	state.LastUpdate = now
	state.InstructionCounter++
	if err := k.SetPoolState(ctx, state); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyResumed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, emergencyAdmin.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", now)),
		),
	)
	return nil
}
