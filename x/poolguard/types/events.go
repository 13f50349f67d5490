package types

// Event types emitted by the pool protection module
const (
	EventTypePoolInitialized     = "pool_initialized"
	EventTypeLiquidityAdded      = "liquidity_added"
	EventTypeLiquidityRemoved    = "liquidity_removed"
	EventTypeTradeExecuted       = "trade_executed"
	EventTypeTradeRejected       = "trade_rejected"
	EventTypeRateLimitReset      = "rate_limit_reset"
	EventTypeVolumeDecayed       = "volume_decayed"
	EventTypeCircuitBreakerTrip  = "circuit_breaker_triggered"
	EventTypeCircuitBreakerReset = "circuit_breaker_reset"
	EventTypePriceImpactRejected = "price_impact_rejected"

	EventTypeTraderBlacklisted    = "trader_blacklisted"
	EventTypeTraderUnblacklisted  = "trader_removed_from_blacklist"
	EventTypeBatchBlacklistDone   = "batch_blacklist_completed"
	EventTypeBatchUnblacklistDone = "batch_unblacklist_completed"

	EventTypeFeesWithdrawn           = "fees_withdrawn"
	EventTypeFeeTiersLocked          = "fee_tiers_locked"
	EventTypeFeeTiersUnlockScheduled = "fee_tiers_unlock_scheduled"

	EventTypeParameterUpdateScheduled = "parameter_update_scheduled"
	EventTypeParameterUpdateCancelled = "parameter_update_cancelled"
	EventTypeParametersUpdated        = "parameters_updated"
	EventTypeTradeSettingsUpdated     = "trade_settings_updated"
	EventTypeProtectionUpdated        = "protection_settings_updated"
	EventTypeFeeSettingsUpdated       = "fee_settings_updated"
	EventTypeStateSettingsUpdated     = "state_settings_updated"

	EventTypeEmergencyPauseScheduled  = "emergency_pause_scheduled"
	EventTypeEmergencyPaused          = "emergency_paused"
	EventTypeEmergencyResumeScheduled = "emergency_resume_scheduled"
	EventTypeEmergencyResumed         = "emergency_resumed"

	EventTypePoolPaused    = "pool_paused"
	EventTypePoolResumed   = "pool_resumed"
	EventTypePoolFinalized = "pool_finalized"
	EventTypeAdminUpdated  = "admin_updated"
)

// Event attribute keys
const (
	AttributeKeyPoolID        = "pool_id"
	AttributeKeyActor         = "actor"
	AttributeKeyTrader        = "trader"
	AttributeKeyAmount        = "amount"
	AttributeKeyAmountIn      = "amount_in"
	AttributeKeyAmountOut     = "amount_out"
	AttributeKeyFeeAmount     = "fee_amount"
	AttributeKeyFeeMode       = "fee_mode"
	AttributeKeyPriceImpact   = "price_impact_bps"
	AttributeKeyOldValue      = "old_value"
	AttributeKeyNewValue      = "new_value"
	AttributeKeyThreshold     = "threshold"
	AttributeKeyVolume        = "volume"
	AttributeKeyHoursPassed   = "hours_passed"
	AttributeKeyCount         = "count"
	AttributeKeyReason        = "reason"
	AttributeKeyScheduledTime = "scheduled_time"
	AttributeKeyTimestamp     = "timestamp"
	AttributeKeyOldAdmin      = "old_admin"
	AttributeKeyNewAdmin      = "new_admin"
)
