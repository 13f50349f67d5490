package types

import (
	"cosmossdk.io/math"
)

// ValidateFeeTiers checks a full tier schedule: bounded length, strictly
// increasing thresholds with minimum spacing, non-increasing fees, every fee
// within [MinimumFeeBps, MaximumFeeBps].
func ValidateFeeTiers(tiers []FeeTier) error {
	if len(tiers) > MaxFeeTiers {
		return ErrTooManyFeeTiers.Wrapf("%d tiers, maximum %d", len(tiers), MaxFeeTiers)
	}

	spacing := math.NewIntFromUint64(MinFeeTierSpacing)
	for i, tier := range tiers {
		if tier.VolumeThreshold.IsNil() || tier.VolumeThreshold.IsNegative() {
			return ErrInvalidFeeTier.Wrapf("tier %d: invalid volume threshold", i)
		}
		if tier.FeeBps < MinimumFeeBps {
			return ErrFeeTooLow.Wrapf("tier %d: %d bps below minimum %d", i, tier.FeeBps, MinimumFeeBps)
		}
		if tier.FeeBps > MaximumFeeBps {
			return ErrFeeTooHigh.Wrapf("tier %d: %d bps above maximum %d", i, tier.FeeBps, MaximumFeeBps)
		}

		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if tier.VolumeThreshold.Equal(prev.VolumeThreshold) {
			return ErrDuplicateFeeTierThreshold.Wrapf("tier %d repeats threshold %s", i, tier.VolumeThreshold)
		}
		if tier.VolumeThreshold.LT(prev.VolumeThreshold) {
			return ErrInvalidFeeTier.Wrapf("tier %d: thresholds must strictly increase", i)
		}
		if tier.VolumeThreshold.Sub(prev.VolumeThreshold).LT(spacing) {
			return ErrInvalidFeeTierSpacing.Wrapf(
				"tier %d: gap %s below minimum spacing %d",
				i, tier.VolumeThreshold.Sub(prev.VolumeThreshold), MinFeeTierSpacing,
			)
		}
		if tier.FeeBps > prev.FeeBps {
			return ErrInvalidFeeTier.Wrapf("tier %d: fees must not increase with volume", i)
		}
	}

	return nil
}

// ValidateTradeSettings checks the trade sub-settings against their bounds
// and the snipe-protection relationship.
func ValidateTradeSettings(t TradeSettings, p ProtectionSettings) error {
	if t.MaxSizeBps == 0 || t.MaxSizeBps > BpsDenominator {
		return ErrInvalidParameter.Wrapf("max_size_bps %d out of (0, %d]", t.MaxSizeBps, BpsDenominator)
	}
	if t.MinSize.IsNil() || t.MinSize.IsNegative() {
		return ErrInvalidAmount.Wrap("min_size must be non-negative")
	}
	if int64(t.CooldownSeconds) > MaxTradeCooldownSeconds {
		return ErrInvalidParameter.Wrapf("cooldown_seconds %d above maximum %d", t.CooldownSeconds, MaxTradeCooldownSeconds)
	}
	if t.EarlyTradeFeeBps > MaxEarlyTradeFeeBps {
		return ErrFeeTooHigh.Wrapf("early_trade_fee_bps %d above maximum %d", t.EarlyTradeFeeBps, MaxEarlyTradeFeeBps)
	}
	if p.SnipeProtectionSeconds > 0 && t.EarlyTradeWindowSeconds > p.SnipeProtectionSeconds {
		return ErrInvalidParameter.Wrapf(
			"early_trade_window_seconds %d exceeds snipe_protection_seconds %d",
			t.EarlyTradeWindowSeconds, p.SnipeProtectionSeconds,
		)
	}
	return nil
}

// ValidateProtectionSettings checks the protection sub-settings.
func ValidateProtectionSettings(p ProtectionSettings) error {
	if p.MaxPriceImpactBps == 0 || p.MaxPriceImpactBps > BpsDenominator {
		return ErrInvalidParameter.Wrapf("max_price_impact_bps %d out of (0, %d]", p.MaxPriceImpactBps, BpsDenominator)
	}
	if p.MaxSlippageBps > BpsDenominator {
		return ErrInvalidParameter.Wrapf("max_slippage_bps %d above %d", p.MaxSlippageBps, BpsDenominator)
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return ErrInvalidAmount.Wrap("min_liquidity must be non-negative")
	}
	return nil
}

// ValidateCircuitBreakerSettings checks the breaker sub-settings, including
// the window/cooldown relationship re-checked on every timelocked apply.
func ValidateCircuitBreakerSettings(cb CircuitBreakerSettings) error {
	if cb.Threshold.IsNil() || !cb.Threshold.IsPositive() {
		return ErrInvalidParameter.Wrap("circuit breaker threshold must be positive")
	}
	if cb.Window == 0 {
		return ErrInvalidParameter.Wrap("circuit breaker window must be positive")
	}
	if cb.Window < cb.Cooldown {
		return ErrInvalidParameter.Wrapf(
			"circuit breaker window %d must be at least cooldown %d", cb.Window, cb.Cooldown,
		)
	}
	return nil
}

// ValidateRateLimitSettings checks the rate limiter sub-settings.
func ValidateRateLimitSettings(rl RateLimitSettings) error {
	if rl.WindowSeconds == 0 {
		return ErrInvalidParameter.Wrap("rate limit window must be positive")
	}
	if rl.MaxCalls == 0 {
		return ErrInvalidParameter.Wrap("rate limit max_calls must be positive")
	}
	return nil
}

// ValidateVolumeSettings checks the volume tracker sub-settings.
func ValidateVolumeSettings(v VolumeSettings) error {
	if v.DailyLimit.IsNil() || !v.DailyLimit.IsPositive() {
		return ErrInvalidParameter.Wrap("daily volume limit must be positive")
	}
	if v.DecayRatePerHour == 0 || v.DecayRatePerHour > 100 {
		return ErrInvalidParameter.Wrapf("decay rate %d%% per hour out of (0, 100]", v.DecayRatePerHour)
	}
	return nil
}

// ValidateTradeSettingsUpdate checks a staged trade-settings bundle. The
// early-window/snipe relationship is stateful and re-checked at apply time.
func ValidateTradeSettingsUpdate(u TradeSettingsUpdate) error {
	if u.MaxTradeSizeBps == 0 || u.MaxTradeSizeBps > BpsDenominator {
		return ErrInvalidParameter.Wrapf("max_trade_size_bps %d out of (0, %d]", u.MaxTradeSizeBps, BpsDenominator)
	}
	if u.MinTradeSize.IsNil() || u.MinTradeSize.IsNegative() {
		return ErrInvalidAmount.Wrap("min_trade_size must be non-negative")
	}
	if int64(u.CooldownSeconds) > MaxTradeCooldownSeconds {
		return ErrInvalidParameter.Wrapf("cooldown_seconds %d above maximum %d", u.CooldownSeconds, MaxTradeCooldownSeconds)
	}
	if u.EarlyTradeFeeBps > MaxEarlyTradeFeeBps {
		return ErrFeeTooHigh.Wrapf("early_trade_fee_bps %d above maximum %d", u.EarlyTradeFeeBps, MaxEarlyTradeFeeBps)
	}
	return nil
}

// ValidateProtectionSettingsUpdate checks a staged protection-settings bundle.
func ValidateProtectionSettingsUpdate(u ProtectionSettingsUpdate) error {
	if u.MaxDailyVolume.IsNil() || !u.MaxDailyVolume.IsPositive() {
		return ErrInvalidParameter.Wrap("max_daily_volume must be positive")
	}
	if u.MaxPriceImpactBps == 0 || u.MaxPriceImpactBps > BpsDenominator {
		return ErrInvalidParameter.Wrapf("max_price_impact_bps %d out of (0, %d]", u.MaxPriceImpactBps, BpsDenominator)
	}
	if u.CircuitBreakerThreshold.IsNil() || !u.CircuitBreakerThreshold.IsPositive() {
		return ErrInvalidParameter.Wrap("circuit_breaker_threshold must be positive")
	}
	if u.CircuitBreakerWindow == 0 {
		return ErrInvalidParameter.Wrap("circuit_breaker_window must be positive")
	}
	if u.CircuitBreakerWindow < u.CircuitBreakerCooldown {
		return ErrInvalidParameter.Wrapf(
			"circuit_breaker_window %d must be at least cooldown %d",
			u.CircuitBreakerWindow, u.CircuitBreakerCooldown,
		)
	}
	if u.RateLimitWindow == 0 {
		return ErrInvalidParameter.Wrap("rate_limit_window must be positive")
	}
	if u.RateLimitMax == 0 {
		return ErrInvalidParameter.Wrap("rate_limit_max must be positive")
	}
	return nil
}

// Validate checks the whole aggregate for internal consistency.
func (ps PoolState) Validate() error {
	if ps.Admin == "" {
		return ErrInvalidState.Wrap("admin must be set")
	}
	if ps.EmergencyAdmin == "" {
		return ErrInvalidState.Wrap("emergency admin must be set")
	}
	if ps.Admin == ps.EmergencyAdmin {
		return ErrInvalidState.Wrap("admin and emergency admin must differ")
	}
	if ps.TokenDenom == "" {
		return ErrInvalidTokenDenom.Wrap("token denom must be set")
	}
	if ps.TotalLiquidity.IsNil() || ps.TotalLiquidity.IsNegative() {
		return ErrInvalidState.Wrap("total liquidity must be non-negative")
	}
	if ps.TotalFeesCollected.IsNil() || ps.TotalFeesCollected.IsNegative() {
		return ErrInvalidState.Wrap("collected fees must be non-negative")
	}
	if ps.Volume.CurrentVolume.GT(ps.Volume.DailyLimit) {
		return ErrInvalidState.Wrap("current volume exceeds daily limit")
	}
	if ps.BlacklistSize > MaxBlacklistSize {
		return ErrInvalidState.Wrapf("blacklist size %d above maximum %d", ps.BlacklistSize, MaxBlacklistSize)
	}

	if err := ValidateTradeSettings(ps.Trade, ps.Protection); err != nil {
		return err
	}
	if err := ValidateProtectionSettings(ps.Protection); err != nil {
		return err
	}
	if err := ValidateCircuitBreakerSettings(ps.CircuitBreaker); err != nil {
		return err
	}
	if err := ValidateRateLimitSettings(ps.RateLimit); err != nil {
		return err
	}
	if err := ValidateVolumeSettings(ps.Volume); err != nil {
		return err
	}
	return ValidateFeeTiers(ps.FeeTiers)
}
