package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func TestInitializePool(t *testing.T) {
	k, ctx, _ := keepertest.PoolguardKeeper(t)

	poolID, err := k.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)
	require.Equal(t, uint64(1), poolID)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.True(t, state.IsInitialized)
	require.False(t, state.IsPaused)
	require.Equal(t, testAdmin.String(), state.Admin)
	require.Equal(t, testEmergency.String(), state.EmergencyAdmin)
	require.Equal(t, uint64(1), state.Version)
	require.True(t, state.TotalLiquidity.IsZero())
	require.Zero(t, state.PoolStartTime)

	// IDs are sequential
	secondID, err := k.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)
	require.Equal(t, uint64(2), secondID)
}

func TestAddLiquidityStampsStartTime(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	poolID, err := k.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)
	keepertest.FundTrader(bank, testAdmin, testDenom, math.NewInt(5_000_000))

	total, err := k.AddLiquidity(ctx, poolID, testAdmin, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), total)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix(), state.PoolStartTime)

	// A later deposit must not move the start time
	later := ctx.WithBlockTime(ctx.BlockTime().Add(time.Hour))
	total, err = k.AddLiquidity(later, poolID, testAdmin, math.NewInt(500_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), total)

	state, err = k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix(), state.PoolStartTime)
}

func TestAddLiquidityRejectsNonAdmin(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	poolID, err := k.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)
	keepertest.FundTrader(bank, testOutsider, testDenom, math.NewInt(1_000_000))

	_, err = k.AddLiquidity(ctx, poolID, testOutsider, math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRemoveLiquidity(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	total, err := k.RemoveLiquidity(ctx, poolID, testAdmin, math.NewInt(300_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(700_000), total)

	// Cannot withdraw more than the pool holds
	_, err = k.RemoveLiquidity(ctx, poolID, testAdmin, math.NewInt(800_000))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestExecuteTradeHappyPath(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	result, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.NewInt(9_000))
	require.NoError(t, err)

	// 0.3% of 10,000 is 30
	require.Equal(t, math.NewInt(30), result.FeeAmount)
	require.Equal(t, math.NewInt(9_970), result.AmountOut)
	require.Equal(t, types.FeeModeNone, result.FeeMode)
	require.Equal(t, uint64(100), result.PriceImpactBps)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30), state.TotalFeesCollected)
	require.Equal(t, math.NewInt(10_000), state.Volume.CurrentVolume)
	require.Equal(t, ctx.BlockTime().Unix(), state.Trade.LastTradeTime)

	// The trader paid exactly the fee
	balance := bank.GetBalance(ctx, testTrader, testDenom)
	require.Equal(t, math.NewInt(99_970), balance.Amount)
}

func TestExecuteTradeRequiresLiquidity(t *testing.T) {
	k, ctx, _ := keepertest.PoolguardKeeper(t)

	poolID, err := k.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolNotStarted)
}

func TestExecuteTradeSizeBounds(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(1_000_000))

	// Below the minimum trade size of 10
	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(5), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTradeTooSmall)

	// Above 10% of the 1,000,000 pool
	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(200_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTradeTooLarge)
}

func TestExecuteTradeWhilePaused(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	paused, err := k.TogglePause(ctx, poolID, testAdmin)
	require.NoError(t, err)
	require.True(t, paused)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolPaused)

	paused, err = k.TogglePause(ctx, poolID, testAdmin)
	require.NoError(t, err)
	require.False(t, paused)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestExecuteTradeSnipeProtection(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.Protection.SnipeProtectionSeconds = 300
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// Inside the launch window
	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrSnipeProtection)

	// The window has fully elapsed
	later := ctx.WithBlockTime(ctx.BlockTime().Add(300 * time.Second))
	_, err = k.ExecuteTrade(later, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestExecuteTradeCooldown(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.Trade.CooldownSeconds = 60
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTradeCooldown)

	later := ctx.WithBlockTime(ctx.BlockTime().Add(time.Minute))
	_, err = k.ExecuteTrade(later, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestExecuteTradePriceImpact(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.Trade.MaxSizeBps = 10000
	msg.Protection.MaxPriceImpactBps = 50
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// 10,000 against 1,000,000 is 100 bps of impact, above the 50 bps cap
	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPriceImpactTooHigh)

	// 1,000 is 10 bps and passes
	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(1_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestExecuteTradeSlippage(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// Output of 9,970 cannot satisfy a minimum of 9,980
	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.NewInt(9_980))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing was recorded for the rejected trade
	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.True(t, state.Volume.CurrentVolume.IsZero())
	require.True(t, state.TotalFeesCollected.IsZero())
}

func TestExecuteTradeDailyVolumeLimit(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.Volume.DailyLimit = math.NewInt(15_000)
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDailyVolumeLimitExceeded)
}

func TestExecuteTradeBlacklistedTrader(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testTrader))

	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTraderBlacklisted)

	require.NoError(t, k.RemoveFromBlacklist(ctx, poolID, testAdmin, testTrader))

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestExecuteTradeFeeFloor(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.DefaultFeeBps = 1
	msg.Trade.MinSize = math.NewInt(1)
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// 1 bps of 100 rounds to zero; the floor charges 1 anyway
	result, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1), result.FeeAmount)
	require.Equal(t, math.NewInt(99), result.AmountOut)
}

func TestExecuteTradeEarlyWindowFee(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	msg := defaultInitMsg(testAdmin, testEmergency)
	msg.Trade.EarlyTradeFeeBps = 500
	msg.Trade.EarlyTradeWindowSeconds = 120
	poolID := setupActivePool(t, k, ctx, bank, msg)
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// Inside the launch window the flat 5% rate applies
	result, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, types.FeeModeEarlyTrade, result.FeeMode)
	require.Equal(t, math.NewInt(500), result.FeeAmount)

	// After the window the pool falls back to the default rate
	later := ctx.WithBlockTime(ctx.BlockTime().Add(121 * time.Second))
	result, err = k.ExecuteTrade(later, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, types.FeeModeNone, result.FeeMode)
	require.Equal(t, math.NewInt(30), result.FeeAmount)
}

func TestExecuteTradeReleasesReentrancyLock(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))

	// Rejected and successful trades must both leave the lock released
	_, err := k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(5), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTradeTooSmall)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)

	_, err = k.ExecuteTrade(ctx, poolID, testTrader, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestQuoteTradeDoesNotMutate(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	result, err := k.QuoteTrade(ctx, poolID, math.NewInt(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30), result.FeeAmount)
	require.Equal(t, math.NewInt(9_970), result.AmountOut)
	require.Equal(t, uint64(100), result.PriceImpactBps)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.True(t, state.Volume.CurrentVolume.IsZero())
	require.True(t, state.TotalFeesCollected.IsZero())
}
