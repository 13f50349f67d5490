package types

import (
	"cosmossdk.io/errors"
)

// Pool protection sentinel errors
var (
	// Authorization
	ErrUnauthorized          = errors.Register(ModuleName, 2, "unauthorized action")
	ErrInvalidEmergencyAdmin = errors.Register(ModuleName, 3, "invalid emergency admin")
	ErrInvalidNewAdmin       = errors.Register(ModuleName, 4, "invalid new admin")
	ErrInvalidPoolAuthority  = errors.Register(ModuleName, 5, "invalid pool authority")

	// State preconditions
	ErrPoolNotFound       = errors.Register(ModuleName, 10, "pool not found")
	ErrPoolPaused         = errors.Register(ModuleName, 11, "pool is paused")
	ErrEmergencyPaused    = errors.Register(ModuleName, 12, "pool is emergency paused")
	ErrPoolNotPaused      = errors.Register(ModuleName, 13, "pool is not paused")
	ErrPoolFinalized      = errors.Register(ModuleName, 14, "pool is finalized")
	ErrPoolAlreadyStarted = errors.Register(ModuleName, 15, "pool has already started")
	ErrPoolNotStarted     = errors.Register(ModuleName, 16, "pool has not started")
	ErrFeeTiersLocked     = errors.Register(ModuleName, 17, "fee tiers are locked")
	ErrFeeTiersNotLocked  = errors.Register(ModuleName, 18, "fee tiers are not locked")
	ErrSnipeProtection    = errors.Register(ModuleName, 19, "snipe protection is still active")

	// Arithmetic
	ErrOverflow  = errors.Register(ModuleName, 20, "arithmetic overflow")
	ErrUnderflow = errors.Register(ModuleName, 21, "arithmetic underflow")

	// Input validation
	ErrInvalidAmount             = errors.Register(ModuleName, 30, "invalid amount provided")
	ErrTradeTooSmall             = errors.Register(ModuleName, 31, "trade below minimum size")
	ErrTradeTooLarge             = errors.Register(ModuleName, 32, "trade above maximum size")
	ErrFeeTooLow                 = errors.Register(ModuleName, 33, "fee too low")
	ErrFeeTooHigh                = errors.Register(ModuleName, 34, "fee too high")
	ErrInvalidFeeTier            = errors.Register(ModuleName, 35, "invalid fee tier")
	ErrTooManyFeeTiers           = errors.Register(ModuleName, 36, "too many fee tiers")
	ErrDuplicateFeeTierThreshold = errors.Register(ModuleName, 37, "duplicate fee tier threshold")
	ErrInvalidFeeTierSpacing     = errors.Register(ModuleName, 38, "invalid fee tier spacing")
	ErrInvalidParameter          = errors.Register(ModuleName, 39, "invalid parameter relationship")

	// Protective-policy rejections
	ErrSlippageExceeded         = errors.Register(ModuleName, 40, "slippage exceeded")
	ErrPriceImpactTooHigh       = errors.Register(ModuleName, 41, "price impact too high")
	ErrRateLimitExceeded        = errors.Register(ModuleName, 42, "rate limit exceeded")
	ErrCircuitBreakerTriggered  = errors.Register(ModuleName, 43, "circuit breaker triggered")
	ErrCircuitBreakerCooldown   = errors.Register(ModuleName, 44, "circuit breaker cooldown active")
	ErrDailyVolumeLimitExceeded = errors.Register(ModuleName, 45, "daily volume limit exceeded")
	ErrTradeCooldown            = errors.Register(ModuleName, 46, "trade cooldown active")
	ErrTraderBlacklisted        = errors.Register(ModuleName, 47, "trader is blacklisted")
	ErrTraderAlreadyBlacklisted = errors.Register(ModuleName, 48, "trader already blacklisted")
	ErrTraderNotBlacklisted     = errors.Register(ModuleName, 49, "trader not blacklisted")
	ErrBlacklistFull            = errors.Register(ModuleName, 50, "blacklist is full")
	ErrBatchTooLarge            = errors.Register(ModuleName, 51, "batch exceeds maximum size")
	ErrInvalidTrader            = errors.Register(ModuleName, 52, "invalid trader address")

	// Timelock protocol
	ErrNoPendingUpdate   = errors.Register(ModuleName, 60, "no pending update available")
	ErrTimelockNotExpired = errors.Register(ModuleName, 61, "timelock has not expired")
	ErrAdminCooldown      = errors.Register(ModuleName, 62, "admin update cooldown active")

	// Integrity
	ErrReentrancy            = errors.Register(ModuleName, 70, "reentrancy detected")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 71, "insufficient liquidity")
	ErrNoFeesAvailable       = errors.Register(ModuleName, 72, "no fees available")
	ErrInvalidTimestamp      = errors.Register(ModuleName, 73, "invalid timestamp")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 74, "invalid token denomination")
	ErrInvalidState          = errors.Register(ModuleName, 75, "invalid pool state")
)
