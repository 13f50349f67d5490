package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

func genesisAddr(seed string) string {
	buf := make([]byte, 20)
	copy(buf, seed)
	return sdk.AccAddress(buf).String()
}

func validGenesisPool(id uint64) types.PoolState {
	return types.PoolState{
		PoolId:         id,
		Admin:          genesisAddr("admin"),
		EmergencyAdmin: genesisAddr("emergency"),
		TokenDenom:     "uguard",
		IsInitialized:  true,

		TotalLiquidity:     math.NewInt(1_000_000),
		TotalFeesCollected: math.ZeroInt(),

		Trade: types.TradeSettings{
			MaxSizeBps: 1000,
			MinSize:    math.NewInt(10),
		},
		Protection: types.ProtectionSettings{
			MaxPriceImpactBps: 1000,
			MinLiquidity:      math.ZeroInt(),
		},
		CircuitBreaker: types.CircuitBreakerSettings{
			Threshold: math.NewInt(1_000_000),
			Window:    7200,
			Cooldown:  3600,
		},
		RateLimit: types.RateLimitSettings{
			WindowSeconds: 60,
			MaxCalls:      10,
		},
		Volume: types.VolumeSettings{
			DailyLimit:       math.NewInt(1_000_000),
			CurrentVolume:    math.ZeroInt(),
			DecayRatePerHour: 10,
		},
		DefaultFeeBps: 30,
		Version:       1,
	}
}

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr bool
	}{
		{
			name:   "single valid pool",
			mutate: func(gs *types.GenesisState) {},
		},
		{
			name: "zero next pool id",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 0
			},
			wantErr: true,
		},
		{
			name: "pool id not below sequence",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 1
			},
			wantErr: true,
		},
		{
			name: "duplicate pool ids",
			mutate: func(gs *types.GenesisState) {
				gs.Pools = append(gs.Pools, validGenesisPool(1))
				gs.NextPoolId = 3
			},
			wantErr: true,
		},
		{
			name: "blacklist entry for unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.Blacklist = append(gs.Blacklist, types.BlacklistEntry{
					PoolId: 7,
					Trader: genesisAddr("trader"),
				})
			},
			wantErr: true,
		},
		{
			name: "blacklist count mismatch",
			mutate: func(gs *types.GenesisState) {
				gs.Blacklist = append(gs.Blacklist, types.BlacklistEntry{
					PoolId: 1,
					Trader: genesisAddr("trader"),
				})
			},
			wantErr: true,
		},
		{
			name: "blacklist count matches recorded size",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].BlacklistSize = 1
				gs.Blacklist = append(gs.Blacklist, types.BlacklistEntry{
					PoolId: 1,
					Trader: genesisAddr("trader"),
				})
			},
		},
		{
			name: "invalid pool state",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].Admin = ""
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.GenesisState{
				Pools:      []types.PoolState{validGenesisPool(1)},
				Blacklist:  []types.BlacklistEntry{},
				NextPoolId: 2,
			}
			tc.mutate(&gs)

			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
