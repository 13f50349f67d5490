package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "poolguard"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	PoolStateKeyPrefix      = []byte{0x01} // prefix for pool state records
	PoolCountKey            = []byte{0x02} // key for the next pool ID counter
	BlacklistKeyPrefix      = []byte{0x03} // prefix for blacklist membership
	ReentrancyLockKeyPrefix = []byte{0x04} // prefix for reentrancy locks
)

// PoolStateKey returns the store key for a pool state record
func PoolStateKey(poolID uint64) []byte {
	return append(PoolStateKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// BlacklistKey returns the store key for a blacklist membership entry
func BlacklistKey(poolID uint64, trader sdk.AccAddress) []byte {
	key := append(BlacklistKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
	return append(key, trader.Bytes()...)
}

// BlacklistPoolPrefix returns the prefix covering all blacklist entries of a pool
func BlacklistPoolPrefix(poolID uint64) []byte {
	return append(BlacklistKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// ReentrancyLockKey returns the store key for a pool's reentrancy lock
func ReentrancyLockKey(poolID uint64) []byte {
	return append(ReentrancyLockKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}
