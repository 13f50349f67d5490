package keeper_test

import (
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func TestBlacklistTrader(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.False(t, k.IsBlacklisted(ctx, poolID, testTrader))

	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testTrader))
	require.True(t, k.IsBlacklisted(ctx, poolID, testTrader))

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), state.BlacklistSize)

	// Banning twice is an error
	err = k.BlacklistTrader(ctx, poolID, testAdmin, testTrader)
	require.ErrorIs(t, err, types.ErrTraderAlreadyBlacklisted)
}

func TestBlacklistRejectsAdmins(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	err := k.BlacklistTrader(ctx, poolID, testAdmin, testAdmin)
	require.Error(t, err)

	err = k.BlacklistTrader(ctx, poolID, testAdmin, testEmergency)
	require.Error(t, err)
}

func TestBlacklistRequiresAdmin(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	err := k.BlacklistTrader(ctx, poolID, testOutsider, testTrader)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRemoveFromBlacklist(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	// Not banned yet
	err := k.RemoveFromBlacklist(ctx, poolID, testAdmin, testTrader)
	require.ErrorIs(t, err, types.ErrTraderNotBlacklisted)

	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testTrader))
	require.NoError(t, k.RemoveFromBlacklist(ctx, poolID, testAdmin, testTrader))
	require.False(t, k.IsBlacklisted(ctx, poolID, testTrader))

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Zero(t, state.BlacklistSize)
}

func TestBatchBlacklistSkipsDuplicates(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	traders := make([]sdk.AccAddress, 5)
	for i := range traders {
		traders[i] = testAddr(fmt.Sprintf("batch-trader-%d", i))
	}

	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, traders[0]))

	added, err := k.BatchBlacklistTraders(ctx, poolID, testAdmin, traders)
	require.NoError(t, err)
	require.Equal(t, uint64(4), added)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, uint64(5), state.BlacklistSize)

	for _, trader := range traders {
		require.True(t, k.IsBlacklisted(ctx, poolID, trader))
	}
}

func TestBatchUnblacklistSkipsUnknown(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	banned := testAddr("banned-trader")
	unknown := testAddr("unknown-trader")
	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, banned))

	removed, err := k.BatchUnblacklistTraders(ctx, poolID, testAdmin, []sdk.AccAddress{banned, unknown})
	require.NoError(t, err)
	require.Equal(t, uint64(1), removed)

	state, err := k.GetPoolState(ctx, poolID)
	require.NoError(t, err)
	require.Zero(t, state.BlacklistSize)
}

func TestGetBlacklistedTraders(t *testing.T) {
	k, ctx, bank := keepertest.PoolguardKeeper(t)
	poolID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))

	require.Empty(t, k.GetBlacklistedTraders(ctx, poolID))

	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testTrader))
	require.NoError(t, k.BlacklistTrader(ctx, poolID, testAdmin, testOutsider))

	traders := k.GetBlacklistedTraders(ctx, poolID)
	require.Len(t, traders, 2)
	require.Contains(t, traders, testTrader.String())
	require.Contains(t, traders, testOutsider.String())

	// Entries are scoped per pool
	otherID := setupActivePool(t, k, ctx, bank, defaultInitMsg(testAdmin, testEmergency))
	require.Empty(t, k.GetBlacklistedTraders(ctx, otherID))
}
