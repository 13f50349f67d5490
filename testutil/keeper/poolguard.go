package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/rheos/hoe-dex-protection/x/poolguard/keeper"
	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// MockBankKeeper is an in-memory bank keeper that tracks balances per
// address so tests can assert custody transfers.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an address without going through a transfer.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	moduleAddr := authModuleAddress(recipientModule)
	return m.send(sender.String(), moduleAddr, amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	moduleAddr := authModuleAddress(senderModule)
	return m.send(moduleAddr, recipient.String(), amt)
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	have := m.balances[from]
	if !have.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, want %s", from, have, amt)
	}
	m.balances[from] = have.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

func authModuleAddress(name string) string {
	return authtypes.NewModuleAddress(name).String()
}

// PoolguardKeeper creates a test keeper backed by an in-memory store and
// a mock bank keeper. The returned context carries a fixed block time so
// time-dependent checks behave deterministically.
func PoolguardKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(cdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank
}

// FundTrader gives a trader an initial balance in the pool denom.
func FundTrader(bank *MockBankKeeper, trader sdk.AccAddress, denom string, amount math.Int) {
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin(denom, amount)))
}
