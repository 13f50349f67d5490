package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func tradeUpdate() *types.TradeSettingsUpdate {
	return &types.TradeSettingsUpdate{
		MaxTradeSizeBps: 2000,
		MinTradeSize:    math.NewInt(100),
		CooldownSeconds: 30,
	}
}

func TestScheduleParameterUpdate(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	applicable, err := k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+types.ParameterUpdateTimelock, applicable)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.NotNil(t, state.PendingUpdate)
	require.Equal(t, ctx.BlockTime().Unix(), state.PendingUpdate.ScheduledTime)
}

func TestScheduleParameterUpdateOverwritesPending(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	_, err := k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)

	// A second schedule replaces the pending slot wholesale and restarts
	// the timelock
	later := ctx.WithBlockTime(ctx.BlockTime().Add(time.Hour))
	replacement := &types.ProtectionSettingsUpdate{
		MaxDailyVolume:          math.NewInt(500_000),
		MaxPriceImpactBps:       200,
		CircuitBreakerThreshold: math.NewInt(400_000),
		CircuitBreakerWindow:    7200,
		CircuitBreakerCooldown:  1800,
		RateLimitWindow:         120,
		RateLimitMax:            5,
	}
	applicable, err := k.ScheduleParameterUpdate(later, poolID, testAdmin, types.PendingUpdate{
		ProtectionSettings: replacement,
	})
	require.NoError(t, err)
	require.Equal(t, later.BlockTime().Unix()+types.ParameterUpdateTimelock, applicable)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.NotNil(t, state.PendingUpdate)
	require.Nil(t, state.PendingUpdate.TradeSettings)
	require.Equal(t, replacement, state.PendingUpdate.ProtectionSettings)
	require.Equal(t, later.BlockTime().Unix(), state.PendingUpdate.ScheduledTime)
}

func TestScheduleParameterUpdateLockedTiers(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.NoError(t, k.LockFeeTiers(ctx, poolID, testAdmin))

	// Changing tiers while keeping them locked is refused
	_, err := k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		FeeSettings: &types.FeeSettingsUpdate{
			FeeTiers:       []types.FeeTier{{VolumeThreshold: math.NewInt(1_000), FeeBps: 50}},
			FeeTiersLocked: true,
		},
	})
	require.ErrorIs(t, err, types.ErrFeeTiersLocked)

	// An update that also unlocks them is allowed
	_, err = k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		FeeSettings: &types.FeeSettingsUpdate{
			FeeTiers:       []types.FeeTier{{VolumeThreshold: math.NewInt(1_000), FeeBps: 50}},
			FeeTiersLocked: false,
		},
	})
	require.NoError(t, err)
}

func TestCancelParameterUpdate(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.ErrorIs(t, k.CancelParameterUpdate(ctx, poolID, testAdmin), types.ErrNoPendingUpdate)

	_, err := k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)

	require.NoError(t, k.CancelParameterUpdate(ctx, poolID, testAdmin))

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Nil(t, state.PendingUpdate)
}

func TestApplyParameterUpdateHonorsTimelock(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	_, err := k.ApplyParameterUpdate(ctx, poolID, testAdmin)
	require.ErrorIs(t, err, types.ErrNoPendingUpdate)

	_, err = k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)

	// Too early, even one second before the deadline
	early := ctx.WithBlockTime(ctx.BlockTime().Add(24*time.Hour - time.Second))
	_, err = k.ApplyParameterUpdate(early, poolID, testAdmin)
	require.ErrorIs(t, err, types.ErrTimelockNotExpired)

	ready := ctx.WithBlockTime(ctx.BlockTime().Add(24 * time.Hour))
	version, err := k.ApplyParameterUpdate(ready, poolID, testAdmin)
	require.NoError(t, err)
	require.Equal(t, uint64(2), version)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Nil(t, state.PendingUpdate)
	require.Equal(t, uint64(2000), state.Trade.MaxSizeBps)
	require.Equal(t, math.NewInt(100), state.Trade.MinSize)
	require.Equal(t, uint64(30), state.Trade.CooldownSeconds)
}

func TestApplyParameterUpdateAllBundles(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	newTiers := []types.FeeTier{
		{VolumeThreshold: math.NewInt(5_000), FeeBps: 80},
		{VolumeThreshold: math.NewInt(50_000), FeeBps: 40},
	}
	_, err := k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
		ProtectionSettings: &types.ProtectionSettingsUpdate{
			MaxDailyVolume:          math.NewInt(500_000),
			MaxPriceImpactBps:       200,
			CircuitBreakerThreshold: math.NewInt(400_000),
			CircuitBreakerWindow:    7200,
			CircuitBreakerCooldown:  1800,
			RateLimitWindow:         120,
			RateLimitMax:            5,
		},
		FeeSettings: &types.FeeSettingsUpdate{FeeTiers: newTiers},
		StateSettings: &types.StateSettingsUpdate{IsPaused: true},
	})
	require.NoError(t, err)

	ready := ctx.WithBlockTime(ctx.BlockTime().Add(24 * time.Hour))
	_, err = k.ApplyParameterUpdate(ready, poolID, testAdmin)
	require.NoError(t, err)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), state.Volume.DailyLimit)
	require.Equal(t, uint64(200), state.Protection.MaxPriceImpactBps)
	require.Equal(t, math.NewInt(400_000), state.CircuitBreaker.Threshold)
	require.Equal(t, uint64(7200), state.CircuitBreaker.Window)
	require.Equal(t, uint64(1800), state.CircuitBreaker.Cooldown)
	require.Equal(t, uint64(120), state.RateLimit.WindowSeconds)
	require.Equal(t, uint64(5), state.RateLimit.MaxCalls)
	require.Equal(t, newTiers, state.FeeTiers)
	require.True(t, state.IsPaused)
}

func TestApplyParameterUpdateRequiresAdmin(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	_, err := k.ScheduleParameterUpdate(ctx, poolID, testOutsider, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = k.ScheduleParameterUpdate(ctx, poolID, testAdmin, types.PendingUpdate{
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)

	ready := ctx.WithBlockTime(ctx.BlockTime().Add(24 * time.Hour))
	_, err = k.ApplyParameterUpdate(ready, poolID, testOutsider)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestFeeTierUnlockFlow(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.NoError(t, k.LockFeeTiers(ctx, poolID, testAdmin))
	_, err := k.ScheduleFeeTiersUnlock(ctx, poolID, testAdmin)
	require.NoError(t, err)

	ready := ctx.WithBlockTime(ctx.BlockTime().Add(24 * time.Hour))
	_, err = k.ApplyParameterUpdate(ready, poolID, testAdmin)
	require.NoError(t, err)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.False(t, state.FeeTiersLocked)
}
