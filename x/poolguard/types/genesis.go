package types

import (
	"fmt"
	"strings"
)

// BlacklistEntry pins one banned trader to a pool for genesis import/export.
type BlacklistEntry struct {
	PoolId uint64 `json:"pool_id"`
	Trader string `json:"trader"`
}

// GenesisState holds every protected pool plus the pool id sequence.
type GenesisState struct {
	Pools      []PoolState      `json:"pools"`
	Blacklist  []BlacklistEntry `json:"blacklist"`
	NextPoolId uint64           `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state with no pools.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pools:      []PoolState{},
		Blacklist:  []BlacklistEntry{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if pool.PoolId == 0 {
			return fmt.Errorf("pool id must be positive")
		}
		if pool.PoolId >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.PoolId, gs.NextPoolId)
		}
		if _, dup := seen[pool.PoolId]; dup {
			return fmt.Errorf("duplicate pool id %d", pool.PoolId)
		}
		seen[pool.PoolId] = struct{}{}

		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.PoolId, err)
		}
	}

	counts := make(map[uint64]uint64, len(gs.Pools))
	for _, entry := range gs.Blacklist {
		if _, ok := seen[entry.PoolId]; !ok {
			return fmt.Errorf("blacklist entry references unknown pool %d", entry.PoolId)
		}
		if strings.TrimSpace(entry.Trader) == "" {
			return fmt.Errorf("blacklist entry for pool %d missing trader address", entry.PoolId)
		}
		counts[entry.PoolId]++
	}
	for _, pool := range gs.Pools {
		if counts[pool.PoolId] != pool.BlacklistSize {
			return fmt.Errorf(
				"pool %d records blacklist size %d but genesis carries %d entries",
				pool.PoolId, pool.BlacklistSize, counts[pool.PoolId],
			)
		}
	}

	return nil
}
