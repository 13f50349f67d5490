package types

import (
	"cosmossdk.io/math"
)

// TradeSettings bounds individual trades against a pool.
type TradeSettings struct {
	MaxSizeBps              uint64   `json:"max_size_bps"`
	MinSize                 math.Int `json:"min_size"`
	CooldownSeconds         uint64   `json:"cooldown_seconds"`
	LastTradeTime           int64    `json:"last_trade_time"`
	EarlyTradeFeeBps        uint64   `json:"early_trade_fee_bps"`
	EarlyTradeWindowSeconds uint64   `json:"early_trade_window_seconds"`
}

// RateLimitSettings is a fixed-window call counter. The window rolls over by
// resetting count to zero once window_seconds have elapsed since last_reset;
// a burst of up to 2*max_calls straddling a boundary is an accepted tradeoff.
type RateLimitSettings struct {
	WindowSeconds uint64 `json:"window_seconds"`
	Count         uint64 `json:"count"`
	MaxCalls      uint64 `json:"max_calls"`
	LastReset     int64  `json:"last_reset"`
}

// CircuitBreakerSettings halts trading once windowed volume crosses the
// threshold, and enforces a cooldown before trading or an admin reset is
// allowed again.
type CircuitBreakerSettings struct {
	Threshold   math.Int `json:"threshold"`
	Window      uint64   `json:"window"`
	Cooldown    uint64   `json:"cooldown"`
	LastTrigger int64    `json:"last_trigger"`
}

// VolumeSettings tracks cumulative traded volume with hourly linear decay
// and a daily cap.
type VolumeSettings struct {
	DailyLimit       math.Int `json:"daily_limit"`
	CurrentVolume    math.Int `json:"current_volume"`
	LastReset        int64    `json:"last_reset"`
	DecayRatePerHour uint64   `json:"decay_rate_per_hour"`
}

// ProtectionSettings holds the remaining protective knobs.
type ProtectionSettings struct {
	SnipeProtectionSeconds uint64   `json:"snipe_protection_seconds"`
	MaxPriceImpactBps      uint64   `json:"max_price_impact_bps"`
	MaxSlippageBps         uint64   `json:"max_slippage_bps"`
	BlacklistEnabled       bool     `json:"blacklist_enabled"`
	MinLiquidity           math.Int `json:"min_liquidity"`
}

// FeeTier maps a volume threshold to the fee charged while cumulative volume
// is at or below it. Thresholds are strictly increasing, fees non-increasing.
type FeeTier struct {
	VolumeThreshold math.Int `json:"volume_threshold"`
	FeeBps          uint64   `json:"fee_bps"`
}

// TradeSettingsUpdate is the trade sub-bundle of a pending parameter update.
type TradeSettingsUpdate struct {
	EarlyTradeFeeBps        uint64   `json:"early_trade_fee_bps"`
	EarlyTradeWindowSeconds uint64   `json:"early_trade_window_seconds"`
	MaxTradeSizeBps         uint64   `json:"max_trade_size_bps"`
	MinTradeSize            math.Int `json:"min_trade_size"`
	CooldownSeconds         uint64   `json:"cooldown_seconds"`
}

// ProtectionSettingsUpdate is the protection sub-bundle of a pending update.
type ProtectionSettingsUpdate struct {
	MaxDailyVolume          math.Int `json:"max_daily_volume"`
	MaxPriceImpactBps       uint64   `json:"max_price_impact_bps"`
	CircuitBreakerThreshold math.Int `json:"circuit_breaker_threshold"`
	CircuitBreakerWindow    uint64   `json:"circuit_breaker_window"`
	CircuitBreakerCooldown  uint64   `json:"circuit_breaker_cooldown"`
	RateLimitWindow         uint64   `json:"rate_limit_window"`
	RateLimitMax            uint64   `json:"rate_limit_max"`
}

// FeeSettingsUpdate is the fee sub-bundle of a pending update.
type FeeSettingsUpdate struct {
	FeeTiers       []FeeTier `json:"fee_tiers"`
	FeeTiersLocked bool      `json:"fee_tiers_locked"`
}

// StateSettingsUpdate is the lifecycle-flag sub-bundle of a pending update.
type StateSettingsUpdate struct {
	IsPaused bool `json:"is_paused"`
}

// PendingUpdate is the single outstanding timelocked parameter change. A new
// schedule call replaces it wholesale; sub-bundles are never merged.
type PendingUpdate struct {
	ScheduledTime      int64                     `json:"scheduled_time"`
	TradeSettings      *TradeSettingsUpdate      `json:"trade_settings,omitempty"`
	ProtectionSettings *ProtectionSettingsUpdate `json:"protection_settings,omitempty"`
	FeeSettings        *FeeSettingsUpdate        `json:"fee_settings,omitempty"`
	StateSettings      *StateSettingsUpdate      `json:"state_settings,omitempty"`
}

// PoolState is the single source of truth for one protected pool. Every
// operation loads it, checks its guards, mutates it and stores it back within
// one transaction.
type PoolState struct {
	PoolId         uint64 `json:"pool_id"`
	Admin          string `json:"admin"`
	EmergencyAdmin string `json:"emergency_admin"`
	TokenDenom     string `json:"token_denom"`
	TokenDecimals  uint32 `json:"token_decimals"`

	IsInitialized     bool `json:"is_initialized"`
	IsPaused          bool `json:"is_paused"`
	IsEmergencyPaused bool `json:"is_emergency_paused"`
	IsFinalized       bool `json:"is_finalized"`
	FeeTiersLocked    bool `json:"fee_tiers_locked"`

	TotalLiquidity     math.Int `json:"total_liquidity"`
	TotalFeesCollected math.Int `json:"total_fees_collected"`
	// PoolStartTime is stamped by the first liquidity add; zero means the
	// pool has not started trading yet.
	PoolStartTime int64 `json:"pool_start_time"`

	Trade          TradeSettings          `json:"trade"`
	RateLimit      RateLimitSettings      `json:"rate_limit"`
	CircuitBreaker CircuitBreakerSettings `json:"circuit_breaker"`
	Volume         VolumeSettings         `json:"volume"`
	Protection     ProtectionSettings     `json:"protection"`

	FeeTiers      []FeeTier `json:"fee_tiers"`
	DefaultFeeBps uint64    `json:"default_fee_bps"`

	// BlacklistSize counts membership entries stored under the pool's
	// blacklist prefix; bounded by MaxBlacklistSize.
	BlacklistSize uint64 `json:"blacklist_size"`

	PendingUpdate *PendingUpdate `json:"pending_update,omitempty"`
	// EmergencyActionScheduledTime is zero when no emergency action is
	// scheduled; otherwise the earliest time the pending pause or resume
	// may be applied.
	EmergencyActionScheduledTime int64 `json:"emergency_action_scheduled_time"`

	Version            uint64 `json:"version"`
	LastUpdate         int64  `json:"last_update"`
	LastAdminUpdate    int64  `json:"last_admin_update"`
	InstructionCounter uint64 `json:"instruction_counter"`
}

// SelectFeeTier scans tiers in ascending threshold order and returns the
// first tier whose threshold is at or above the current volume, or nil when
// volume has passed every tier. The comparison direction (>=, discount kicks
// in as volume rises toward a tier) is fixed here and nowhere else.
func SelectFeeTier(tiers []FeeTier, currentVolume math.Int) *FeeTier {
	for i := range tiers {
		if tiers[i].VolumeThreshold.GTE(currentVolume) {
			return &tiers[i]
		}
	}
	return nil
}

// TradeResult carries the outcome of an executed trade.
type TradeResult struct {
	AmountOut      math.Int `json:"amount_out"`
	FeeAmount      math.Int `json:"fee_amount"`
	FeeMode        FeeMode  `json:"fee_mode"`
	PriceImpactBps uint64   `json:"price_impact_bps"`
}
