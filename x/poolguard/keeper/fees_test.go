package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func feePolicyState(startTime int64) types.PoolState {
	return types.PoolState{
		PoolId:        1,
		PoolStartTime: startTime,
		Trade: types.TradeSettings{
			EarlyTradeFeeBps:        500,
			EarlyTradeWindowSeconds: 120,
		},
		Volume: types.VolumeSettings{
			CurrentVolume: math.ZeroInt(),
		},
		FeeTiers: []types.FeeTier{
			{VolumeThreshold: math.NewInt(10_000), FeeBps: 100},
			{VolumeThreshold: math.NewInt(100_000), FeeBps: 50},
		},
		DefaultFeeBps: 30,
	}
}

func TestComputeTradeFee(t *testing.T) {
	const start = int64(1_700_000_000)

	tests := []struct {
		name      string
		mutate    func(*types.PoolState)
		blockTime int64
		amountIn  int64
		wantFee   int64
		wantMode  types.FeeMode
	}{
		{
			name:      "early window charges the flat launch rate",
			blockTime: start + 60,
			amountIn:  10_000,
			wantFee:   500,
			wantMode:  types.FeeModeEarlyTrade,
		},
		{
			name:      "window boundary still charges the launch rate",
			blockTime: start + 120,
			amountIn:  10_000,
			wantFee:   500,
			wantMode:  types.FeeModeEarlyTrade,
		},
		{
			name:      "first second past the window falls through to the tiers",
			blockTime: start + 121,
			amountIn:  10_000,
			wantFee:   100,
			wantMode:  types.FeeModeVolumeBased,
		},
		{
			name: "second tier once volume passes the first threshold",
			mutate: func(s *types.PoolState) {
				s.Volume.CurrentVolume = math.NewInt(50_000)
			},
			blockTime: start + 3600,
			amountIn:  10_000,
			wantFee:   50,
			wantMode:  types.FeeModeVolumeBased,
		},
		{
			name: "default rate once volume passes every tier",
			mutate: func(s *types.PoolState) {
				s.Volume.CurrentVolume = math.NewInt(200_000)
			},
			blockTime: start + 3600,
			amountIn:  10_000,
			wantFee:   30,
			wantMode:  types.FeeModeNone,
		},
		{
			name: "unset default rate falls back to the minimum rate",
			mutate: func(s *types.PoolState) {
				s.FeeTiers = nil
				s.DefaultFeeBps = 0
				s.Trade.EarlyTradeFeeBps = 0
			},
			blockTime: start + 3600,
			amountIn:  10_000,
			wantFee:   1,
			wantMode:  types.FeeModeNone,
		},
		{
			name: "dust trade pays the absolute floor",
			mutate: func(s *types.PoolState) {
				s.FeeTiers = nil
				s.DefaultFeeBps = 1
			},
			blockTime: start + 3600,
			amountIn:  100,
			wantFee:   1,
			wantMode:  types.FeeModeNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := feePolicyState(start)
			if tc.mutate != nil {
				tc.mutate(&state)
			}

			fee, mode, err := keeper.ComputeTradeFee(state, math.NewInt(tc.amountIn), tc.blockTime)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.wantFee), fee)
			require.Equal(t, tc.wantMode, mode)
		})
	}
}

func TestComputeTradeFeeConsumingWholeTrade(t *testing.T) {
	state := feePolicyState(1_700_000_000)
	state.FeeTiers = nil
	state.Trade.EarlyTradeFeeBps = 0
	state.DefaultFeeBps = 30

	// The floored fee of 1 would consume the entire 1-unit trade
	_, _, err := keeper.ComputeTradeFee(state, math.NewInt(1), 1_700_003_600)
	require.ErrorIs(t, err, types.ErrFeeTooHigh)
}

func TestWithdrawFees(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)

	before := bank.GetBalance(ctx, testAdmin, testDenom).Amount

	amount, err := k.WithdrawFees(ctx, poolID, testAdmin)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30), amount)

	after := bank.GetBalance(ctx, testAdmin, testDenom).Amount
	require.Equal(t, before.Add(math.NewInt(30)), after)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.True(t, state.TotalFeesCollected.IsZero())

	// Nothing left to withdraw
	_, err = k.WithdrawFees(ctx, poolID, testAdmin)
	require.ErrorIs(t, err, types.ErrNoFeesAvailable)
}

func TestWithdrawFeesRequiresAdmin(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	_, err := k.WithdrawFees(ctx, poolID, testOutsider)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestLockFeeTiers(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.NoError(t, k.LockFeeTiers(ctx, poolID, testAdmin))

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.True(t, state.FeeTiersLocked)

	// Locking twice is an error
	require.ErrorIs(t, k.LockFeeTiers(ctx, poolID, testAdmin), types.ErrFeeTiersLocked)
}

func TestScheduleFeeTiersUnlock(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	// Nothing to unlock yet
	_, err := k.ScheduleFeeTiersUnlock(ctx, poolID, testAdmin)
	require.ErrorIs(t, err, types.ErrFeeTiersNotLocked)

	require.NoError(t, k.LockFeeTiers(ctx, poolID, testAdmin))

	applicable, err := k.ScheduleFeeTiersUnlock(ctx, poolID, testAdmin)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+types.ParameterUpdateTimelock, applicable)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.NotNil(t, state.PendingUpdate)
	require.NotNil(t, state.PendingUpdate.FeeSettings)
	require.False(t, state.PendingUpdate.FeeSettings.FeeTiersLocked)
}
