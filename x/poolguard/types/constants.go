package types

// Fee constants
const (
	// MinimumFeeBps is the lowest fee a tier may carry (0.01%)
	MinimumFeeBps uint64 = 1

	// MaximumFeeBps is the highest fee a tier or the early-trade window may carry (10%)
	MaximumFeeBps uint64 = 1000

	// MinimumFee is the absolute fee floor in base token units. A trade never
	// pays less than this, regardless of what the bps math rounds down to.
	MinimumFee uint64 = 1

	// MaxEarlyTradeFeeBps bounds the fixed fee charged inside the early-trade window
	MaxEarlyTradeFeeBps uint64 = 1000

	// BpsDenominator is the basis-point scale (10000 bps = 100%)
	BpsDenominator uint64 = 10000
)

// Cooldowns and timelocks, in seconds
const (
	EmergencyTimelockSeconds int64 = 3600  // 1 hour emergency action delay
	ParameterUpdateTimelock  int64 = 86400 // 24 hours
	AdminUpdateCooldown      int64 = 86400 // 24 hours between admin rotations
	MaxTradeCooldownSeconds  int64 = 3600  // per-trade cooldown upper bound
	SecondsPerHour           int64 = 3600
	VolumeDecayFullHours     int64 = 24 // volume fully decays after 24 idle hours
)

// Structural limits
const (
	MaxFeeTiers           = 100
	MaxBlacklistSize      = 1000
	BatchBlacklistMaxSize = 50

	// MinFeeTierSpacing is the minimum gap between consecutive tier
	// volume thresholds, in base token units.
	MinFeeTierSpacing uint64 = 10
)

// FeeMode records which branch of the fee policy priced a trade.
type FeeMode uint8

const (
	FeeModeNone        FeeMode = 0
	FeeModeEarlyTrade  FeeMode = 1
	FeeModeVolumeBased FeeMode = 2
)

// String implements fmt.Stringer for event attributes.
func (m FeeMode) String() string {
	switch m {
	case FeeModeEarlyTrade:
		return "early_trade"
	case FeeModeVolumeBased:
		return "volume_based"
	default:
		return "none"
	}
}
