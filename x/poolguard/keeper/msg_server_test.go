package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func TestMsgServerPoolLifecycle(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	initRes, err := ms.InitializePool(ctx, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, err)
	require.Equal(t, uint64(1), initRes.PoolId)

	keepertest.FundTrader(bank, testAdmin, testDenom, math.NewInt(10_000_000))
	addRes, err := ms.AddLiquidity(ctx, &types.MsgAddLiquidity{
		Admin:  testAdmin.String(),
		PoolId: initRes.PoolId,
		Amount: math.NewInt(1_000_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), addRes.TotalLiquidity)

	keepertest.FundTrader(bank, testTrader, testDenom, math.NewInt(100_000))
	tradeRes, err := ms.ExecuteTrade(ctx, &types.MsgExecuteTrade{
		Trader:           testTrader.String(),
		PoolId:           initRes.PoolId,
		AmountIn:         math.NewInt(10_000),
		MinimumAmountOut: math.NewInt(9_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_970), tradeRes.AmountOut)
	require.Equal(t, math.NewInt(30), tradeRes.FeeAmount)

	withdrawRes, err := ms.WithdrawFees(ctx, &types.MsgWithdrawFees{
		Admin:  testAdmin.String(),
		PoolId: initRes.PoolId,
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30), withdrawRes.Amount)
}

func TestMsgServerRejectsInvalidMessages(t *testing.T) {
	k, ctx, _ := keepertest.PoolguardKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	// Malformed admin address fails stateless validation
	_, err := ms.AddLiquidity(ctx, &types.MsgAddLiquidity{
		Admin:  "not-an-address",
		PoolId: 1,
		Amount: math.NewInt(1_000),
	})
	require.Error(t, err)

	// Admin equal to emergency admin is refused at initialization
	bad := defaultInitMsg(testAdmin, testEmergency)
	bad.EmergencyAdmin = bad.Admin
	_, err = ms.InitializePool(ctx, bad)
	require.ErrorIs(t, err, types.ErrInvalidEmergencyAdmin)
}

func TestMsgServerTimelockFlow(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	scheduleRes, err := ms.ScheduleParameterUpdate(ctx, &types.MsgScheduleParameterUpdate{
		Admin:         testAdmin.String(),
		PoolId:        poolID,
		TradeSettings: tradeUpdate(),
	})
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+types.ParameterUpdateTimelock, scheduleRes.ApplicableTime)

	ready := ctx.WithBlockTime(ctx.BlockTime().Add(24 * time.Hour))
	applyRes, err := ms.ApplyParameterUpdate(ready, &types.MsgApplyParameterUpdate{
		Admin:  testAdmin.String(),
		PoolId: poolID,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), applyRes.Version)
}

func TestMsgServerBatchBlacklist(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	res, err := ms.BatchBlacklistTraders(ctx, &types.MsgBatchBlacklistTraders{
		Admin:   testAdmin.String(),
		PoolId:  poolID,
		Traders: []string{testTrader.String(), testOutsider.String()},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.Added)

	unRes, err := ms.BatchUnblacklistTraders(ctx, &types.MsgBatchUnblacklistTraders{
		Admin:   testAdmin.String(),
		PoolId:  poolID,
		Traders: []string{testTrader.String()},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), unRes.Removed)
	require.False(t, k.IsBlacklisted(ctx, poolID, testTrader))
	require.True(t, k.IsBlacklisted(ctx, poolID, testOutsider))
}
