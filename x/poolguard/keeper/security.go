package keeper

import (
	"context"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// WithReentrancyGuard executes a function with reentrancy protection. The
// lock is one per pool, so a nested call to any guarded operation on the
// same pool fails while the outer call runs. Locks live in the KVStore so
// they persist across context boundaries and roll back together with the
// failed transaction.
func (k Keeper) WithReentrancyGuard(ctx context.Context, poolID uint64, operation string, fn func() error) error {
	if err := k.acquireReentrancyLock(ctx, poolID, operation); err != nil {
		return err
	}

	// Ensure lock is released even if function panics
	defer k.releaseReentrancyLock(ctx, poolID)

	return fn()
}

// acquireReentrancyLock attempts to acquire the pool's reentrancy lock. The
// holder's operation name is stored as the lock value for diagnostics.
func (k Keeper) acquireReentrancyLock(ctx context.Context, poolID uint64, operation string) error {
	store := k.getStore(ctx)
	key := types.ReentrancyLockKey(poolID)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf(
			"pool %d is locked by %s, rejected %s", poolID, string(store.Get(key)), operation,
		)
	}

	store.Set(key, []byte(operation))
	return nil
}

// releaseReentrancyLock releases the pool's reentrancy lock
func (k Keeper) releaseReentrancyLock(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	store.Delete(types.ReentrancyLockKey(poolID))
}
