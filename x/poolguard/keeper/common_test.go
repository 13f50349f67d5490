package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/rheos/hoe-dex-protection/testutil/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

const testDenom = "uguard"

// testAddr builds a deterministic 20-byte account address from a seed.
func testAddr(seed string) sdk.AccAddress {
	buf := make([]byte, 20)
	copy(buf, seed)
	return sdk.AccAddress(buf)
}

var (
	testAdmin     = testAddr("admin")
	testEmergency = testAddr("emergency")
	testTrader    = testAddr("trader")
	testOutsider  = testAddr("outsider")
)

// defaultInitMsg returns a pool configuration that passes every validator:
// 0.3% default fee, 10% max trade size, generous breaker and volume limits.
func defaultInitMsg(admin, emergencyAdmin sdk.AccAddress) *types.MsgInitializePool {
	return &types.MsgInitializePool{
		Admin:          admin.String(),
		EmergencyAdmin: emergencyAdmin.String(),
		TokenDenom:     testDenom,
		TokenDecimals:  6,
		Trade: types.TradeSettings{
			MaxSizeBps: 1000,
			MinSize:    math.NewInt(10),
		},
		Protection: types.ProtectionSettings{
			MaxPriceImpactBps: 1000,
			BlacklistEnabled:  true,
			MinLiquidity:      math.ZeroInt(),
		},
		CircuitBreaker: types.CircuitBreakerSettings{
			Threshold: math.NewInt(1_000_000_000_000),
			Window:    86400,
			Cooldown:  3600,
		},
		RateLimit: types.RateLimitSettings{
			WindowSeconds: 60,
			MaxCalls:      10,
		},
		Volume: types.VolumeSettings{
			DailyLimit:       math.NewInt(1_000_000_000_000),
			DecayRatePerHour: 10,
		},
		DefaultFeeBps: 30,
	}
}

// setupActivePool initializes a pool and funds it with 1,000,000 units of
// liquidity so the trade path is open.
func setupActivePool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *keepertest.MockBankKeeper, msg *types.MsgInitializePool) uint64 {
	t.Helper()

	poolID, err := k.InitializePool(ctx, msg)
	require.NoError(t, err)

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	require.NoError(t, err)
	keepertest.FundTrader(bank, admin, testDenom, math.NewInt(10_000_000))

	_, err = k.AddLiquidity(ctx, poolID, admin, math.NewInt(1_000_000))
	require.NoError(t, err)

	return poolID
}
