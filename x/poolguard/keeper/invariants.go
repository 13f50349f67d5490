package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// RegisterInvariants registers all poolguard invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "volume-within-limit", VolumeWithinLimitInvariant(k))
	ir.RegisterRoute(types.ModuleName, "blacklist-size", BlacklistSizeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "no-stale-locks", NoStaleLocksInvariant(k))
}

// AllInvariants runs all invariants of the poolguard module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleAccountBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = VolumeWithinLimitInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = BlacklistSizeInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return NoStaleLocksInvariant(k)(ctx)
	}
}

// ModuleAccountBalanceInvariant checks that the module account covers every
// pool's liquidity plus uncollected fees.
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		moduleAddr := k.GetModuleAddress()
		for _, pool := range k.GetAllPoolStates(ctx) {
			owed, err := SafeAdd(pool.TotalLiquidity, pool.TotalFeesCollected)
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.PoolId, err)
				continue
			}
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenDenom)
			// Pools may share a denom, so the balance must cover each
			// individually rather than equal it.
			if balance.Amount.LT(owed) {
				count++
				msg += fmt.Sprintf("pool %d: module balance %s for %s below owed %s\n",
					pool.PoolId, balance.Amount, pool.TokenDenom, owed)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "module-account-balance",
			fmt.Sprintf("%d pools with uncovered balances\n%s", count, msg)), broken
	}
}

// VolumeWithinLimitInvariant checks that no pool's tracked volume exceeds its
// daily limit.
func VolumeWithinLimitInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPoolStates(ctx) {
			if pool.Volume.CurrentVolume.GT(pool.Volume.DailyLimit) {
				count++
				msg += fmt.Sprintf("pool %d: volume %s above daily limit %s\n",
					pool.PoolId, pool.Volume.CurrentVolume, pool.Volume.DailyLimit)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "volume-within-limit",
			fmt.Sprintf("%d pools over their daily volume limit\n%s", count, msg)), broken
	}
}

// BlacklistSizeInvariant checks that each pool's recorded blacklist size
// matches the stored membership entries.
func BlacklistSizeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPoolStates(ctx) {
			entries := uint64(len(k.GetBlacklistedTraders(ctx, pool.PoolId)))
			if entries != pool.BlacklistSize {
				count++
				msg += fmt.Sprintf("pool %d: recorded size %d, stored entries %d\n",
					pool.PoolId, pool.BlacklistSize, entries)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "blacklist-size",
			fmt.Sprintf("%d pools with mismatched blacklist counts\n%s", count, msg)), broken
	}
}

// NoStaleLocksInvariant checks that no reentrancy lock survived its
// transaction. Locks are deleted on exit, so any marker seen between
// transactions is a defect.
func NoStaleLocksInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		store := k.getStore(ctx)
		iterator := store.Iterator(types.ReentrancyLockKeyPrefix, storetypes.PrefixEndBytes(types.ReentrancyLockKeyPrefix))
		defer iterator.Close()

		var (
			msg   string
			count int
		)
		for ; iterator.Valid(); iterator.Next() {
			count++
			poolID := sdk.BigEndianToUint64(iterator.Key()[len(types.ReentrancyLockKeyPrefix):])
			msg += fmt.Sprintf("pool %d locked by %s\n", poolID, string(iterator.Value()))
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "no-stale-locks",
			fmt.Sprintf("%d stale reentrancy locks\n%s", count, msg)), broken
	}
}
