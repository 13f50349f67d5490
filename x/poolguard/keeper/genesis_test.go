package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)

	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testTrader))

	keepertest.FundTrader(bank, testOutsider, testDenom, math.NewInt(100_000))
	_, err := k.ExecuteTrade(ctx, poolID, testOutsider, math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Blacklist, 1)
	require.Equal(t, uint64(2), exported.NextPoolId)
	require.NoError(t, exported.Validate())

	// Import into a fresh keeper and compare observable state
	k2, ctx2, _ := keepertest.PoolguardKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	state, err := k2.GetPoolState(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, exported.Pools[0], state)
	require.True(t, k2.IsBlacklisted(ctx2, poolID, testTrader))
	require.Equal(t, uint64(2), k2.GetNextPoolID(ctx2))
}

func TestDefaultGenesis(t *testing.T) {
	k, ctx, _ := keepertest.PoolguardKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.Empty(t, exported.Pools)
	require.Empty(t, exported.Blacklist)
	require.Equal(t, uint64(1), exported.NextPoolId)
}
