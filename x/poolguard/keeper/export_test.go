package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// CheckRateLimitForTest exposes the fixed-window limiter for white-box tests.
func CheckRateLimitForTest(k *Keeper, ctx sdk.Context, state *types.PoolState) error {
	return k.checkRateLimit(ctx, state)
}

// ApplyVolumeDecayForTest exposes the hourly decay pass for white-box tests.
func ApplyVolumeDecayForTest(k *Keeper, ctx sdk.Context, state *types.PoolState) error {
	return k.applyVolumeDecay(ctx, state)
}

// CheckCircuitBreakerForTest exposes the breaker admission check for white-box tests.
func CheckCircuitBreakerForTest(k *Keeper, ctx sdk.Context, state *types.PoolState, amountIn math.Int) error {
	return k.checkCircuitBreaker(ctx, state, amountIn)
}

// CheckDailyVolumeForTest exposes the daily cap check for white-box tests.
func CheckDailyVolumeForTest(k *Keeper, state *types.PoolState, amountIn math.Int) error {
	return k.checkDailyVolume(state, amountIn)
}

// PriceImpactBpsForTest exposes the impact estimate for white-box tests.
func PriceImpactBpsForTest(amountIn, totalLiquidity math.Int) (uint64, error) {
	return priceImpactBps(amountIn, totalLiquidity)
}

// AcquireReentrancyLockForTest exposes lock acquisition so tests can simulate
// a lock held by an outer call.
func AcquireReentrancyLockForTest(k *Keeper, ctx sdk.Context, poolID uint64, operation string) error {
	return k.acquireReentrancyLock(ctx, poolID, operation)
}
