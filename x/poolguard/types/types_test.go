package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func TestSelectFeeTier(t *testing.T) {
	tiers := []types.FeeTier{
		{VolumeThreshold: math.NewInt(1_000), FeeBps: 100},
		{VolumeThreshold: math.NewInt(10_000), FeeBps: 50},
		{VolumeThreshold: math.NewInt(100_000), FeeBps: 25},
	}

	tests := []struct {
		name    string
		volume  int64
		wantBps uint64
		wantNil bool
	}{
		{"zero volume lands in the first tier", 0, 100, false},
		{"exactly on a threshold stays in that tier", 1_000, 100, false},
		{"just past the first threshold", 1_001, 50, false},
		{"third tier", 50_000, 25, false},
		{"past every tier", 100_001, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tier := types.SelectFeeTier(tiers, math.NewInt(tc.volume))
			if tc.wantNil {
				require.Nil(t, tier)
				return
			}
			require.NotNil(t, tier)
			require.Equal(t, tc.wantBps, tier.FeeBps)
		})
	}
}

func TestSelectFeeTierEmptySchedule(t *testing.T) {
	require.Nil(t, types.SelectFeeTier(nil, math.ZeroInt()))
}

func TestFeeModeString(t *testing.T) {
	require.Equal(t, "none", types.FeeModeNone.String())
	require.Equal(t, "early_trade", types.FeeModeEarlyTrade.String())
	require.Equal(t, "volume_based", types.FeeModeVolumeBased.String())
}
