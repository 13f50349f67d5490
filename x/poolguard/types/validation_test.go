package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func TestValidateFeeTiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []types.FeeTier
		wantErr error
	}{
		{
			name:  "empty schedule is valid",
			tiers: nil,
		},
		{
			name: "valid descending fees",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 100},
				{VolumeThreshold: math.NewInt(10_000), FeeBps: 50},
				{VolumeThreshold: math.NewInt(100_000), FeeBps: 25},
			},
		},
		{
			name: "duplicate threshold",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 100},
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 50},
			},
			wantErr: types.ErrDuplicateFeeTierThreshold,
		},
		{
			name: "thresholds out of order",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(10_000), FeeBps: 100},
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 50},
			},
			wantErr: types.ErrInvalidFeeTier,
		},
		{
			name: "spacing below minimum",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 100},
				{VolumeThreshold: math.NewInt(1_005), FeeBps: 50},
			},
			wantErr: types.ErrInvalidFeeTierSpacing,
		},
		{
			name: "fee increases with volume",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 50},
				{VolumeThreshold: math.NewInt(10_000), FeeBps: 100},
			},
			wantErr: types.ErrInvalidFeeTier,
		},
		{
			name: "fee below minimum",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 0},
			},
			wantErr: types.ErrFeeTooLow,
		},
		{
			name: "fee above maximum",
			tiers: []types.FeeTier{
				{VolumeThreshold: math.NewInt(1_000), FeeBps: 1_001},
			},
			wantErr: types.ErrFeeTooHigh,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := types.ValidateFeeTiers(tc.tiers)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateFeeTiersTooMany(t *testing.T) {
	tiers := make([]types.FeeTier, types.MaxFeeTiers+1)
	for i := range tiers {
		tiers[i] = types.FeeTier{
			VolumeThreshold: math.NewInt(int64((i + 1) * 1_000)),
			FeeBps:          100,
		}
	}
	require.ErrorIs(t, types.ValidateFeeTiers(tiers), types.ErrTooManyFeeTiers)
}

func TestValidateTradeSettings(t *testing.T) {
	protection := types.ProtectionSettings{
		SnipeProtectionSeconds: 300,
		MaxPriceImpactBps:      1000,
		MinLiquidity:           math.ZeroInt(),
	}

	valid := types.TradeSettings{
		MaxSizeBps:              1000,
		MinSize:                 math.NewInt(10),
		CooldownSeconds:         60,
		EarlyTradeWindowSeconds: 120,
	}
	require.NoError(t, types.ValidateTradeSettings(valid, protection))

	zeroSize := valid
	zeroSize.MaxSizeBps = 0
	require.ErrorIs(t, types.ValidateTradeSettings(zeroSize, protection), types.ErrInvalidParameter)

	longCooldown := valid
	longCooldown.CooldownSeconds = 3601
	require.ErrorIs(t, types.ValidateTradeSettings(longCooldown, protection), types.ErrInvalidParameter)

	steepFee := valid
	steepFee.EarlyTradeFeeBps = 1_001
	require.ErrorIs(t, types.ValidateTradeSettings(steepFee, protection), types.ErrFeeTooHigh)

	// The early window may not outlast snipe protection
	wideWindow := valid
	wideWindow.EarlyTradeWindowSeconds = 301
	require.ErrorIs(t, types.ValidateTradeSettings(wideWindow, protection), types.ErrInvalidParameter)
}

func TestValidateCircuitBreakerSettings(t *testing.T) {
	valid := types.CircuitBreakerSettings{
		Threshold: math.NewInt(1_000_000),
		Window:    7200,
		Cooldown:  3600,
	}
	require.NoError(t, types.ValidateCircuitBreakerSettings(valid))

	zeroThreshold := valid
	zeroThreshold.Threshold = math.ZeroInt()
	require.ErrorIs(t, types.ValidateCircuitBreakerSettings(zeroThreshold), types.ErrInvalidParameter)

	shortWindow := valid
	shortWindow.Window = 1800
	require.ErrorIs(t, types.ValidateCircuitBreakerSettings(shortWindow), types.ErrInvalidParameter)
}

func TestValidateVolumeSettings(t *testing.T) {
	require.NoError(t, types.ValidateVolumeSettings(types.VolumeSettings{
		DailyLimit:       math.NewInt(1_000_000),
		DecayRatePerHour: 10,
	}))

	require.ErrorIs(t, types.ValidateVolumeSettings(types.VolumeSettings{
		DailyLimit:       math.NewInt(1_000_000),
		DecayRatePerHour: 0,
	}), types.ErrInvalidParameter)

	require.ErrorIs(t, types.ValidateVolumeSettings(types.VolumeSettings{
		DailyLimit:       math.NewInt(1_000_000),
		DecayRatePerHour: 101,
	}), types.ErrInvalidParameter)

	require.ErrorIs(t, types.ValidateVolumeSettings(types.VolumeSettings{
		DailyLimit:       math.ZeroInt(),
		DecayRatePerHour: 10,
	}), types.ErrInvalidParameter)
}

func TestValidateProtectionSettingsUpdate(t *testing.T) {
	valid := types.ProtectionSettingsUpdate{
		MaxDailyVolume:          math.NewInt(500_000),
		MaxPriceImpactBps:       200,
		CircuitBreakerThreshold: math.NewInt(400_000),
		CircuitBreakerWindow:    7200,
		CircuitBreakerCooldown:  1800,
		RateLimitWindow:         120,
		RateLimitMax:            5,
	}
	require.NoError(t, types.ValidateProtectionSettingsUpdate(valid))

	badWindow := valid
	badWindow.CircuitBreakerWindow = 900
	require.ErrorIs(t, types.ValidateProtectionSettingsUpdate(badWindow), types.ErrInvalidParameter)

	noRateLimit := valid
	noRateLimit.RateLimitMax = 0
	require.ErrorIs(t, types.ValidateProtectionSettingsUpdate(noRateLimit), types.ErrInvalidParameter)
}
