package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgBlacklistTrader{}
	_ sdk.Msg = &MsgRemoveFromBlacklist{}
	_ sdk.Msg = &MsgBatchBlacklistTraders{}
	_ sdk.Msg = &MsgBatchUnblacklistTraders{}
	_ sdk.Msg = &MsgLockFeeTiers{}
	_ sdk.Msg = &MsgUnlockFeeTiers{}
	_ sdk.Msg = &MsgResetCircuitBreaker{}
	_ sdk.Msg = &MsgUpdateAdmin{}
	_ sdk.Msg = &MsgTogglePause{}
	_ sdk.Msg = &MsgFinalizePool{}
)

func validateAdminAddress(admin string) error {
	if _, err := sdk.AccAddressFromBech32(admin); err != nil {
		return ErrInvalidTrader.Wrapf("invalid admin address: %v", err)
	}
	return nil
}

func adminSigners(admin string) []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(admin)
	return []sdk.AccAddress{addr}
}

func validateTraderBatch(traders []string) error {
	if len(traders) == 0 {
		return ErrInvalidTrader.Wrap("empty trader batch")
	}
	if len(traders) > BatchBlacklistMaxSize {
		return ErrBatchTooLarge.Wrapf("%d traders, maximum %d", len(traders), BatchBlacklistMaxSize)
	}
	seen := make(map[string]struct{}, len(traders))
	for _, t := range traders {
		if _, err := sdk.AccAddressFromBech32(t); err != nil {
			return ErrInvalidTrader.Wrapf("%s: %v", t, err)
		}
		if _, dup := seen[t]; dup {
			return ErrInvalidTrader.Wrapf("duplicate trader %s in batch", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// MsgBlacklistTrader bans one trader from the pool.
type MsgBlacklistTrader struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
	Trader string `json:"trader"`
}

func (m *MsgBlacklistTrader) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidTrader.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgBlacklistTrader) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgRemoveFromBlacklist lifts the ban on one trader.
type MsgRemoveFromBlacklist struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
	Trader string `json:"trader"`
}

func (m *MsgRemoveFromBlacklist) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidTrader.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgRemoveFromBlacklist) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgBatchBlacklistTraders bans up to BatchBlacklistMaxSize traders at once.
type MsgBatchBlacklistTraders struct {
	Admin   string   `json:"admin"`
	PoolId  uint64   `json:"pool_id"`
	Traders []string `json:"traders"`
}

func (m *MsgBatchBlacklistTraders) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	return validateTraderBatch(m.Traders)
}

func (m *MsgBatchBlacklistTraders) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgBatchUnblacklistTraders lifts bans on up to BatchBlacklistMaxSize traders.
type MsgBatchUnblacklistTraders struct {
	Admin   string   `json:"admin"`
	PoolId  uint64   `json:"pool_id"`
	Traders []string `json:"traders"`
}

func (m *MsgBatchUnblacklistTraders) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	return validateTraderBatch(m.Traders)
}

func (m *MsgBatchUnblacklistTraders) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgLockFeeTiers freezes the fee tier schedule.
type MsgLockFeeTiers struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgLockFeeTiers) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgLockFeeTiers) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgUnlockFeeTiers schedules a timelocked unlock of the fee tier schedule.
type MsgUnlockFeeTiers struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgUnlockFeeTiers) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgUnlockFeeTiers) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgResetCircuitBreaker zeroes tracked volume once the breaker cooled down.
type MsgResetCircuitBreaker struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgResetCircuitBreaker) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgResetCircuitBreaker) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgUpdateAdmin rotates the pool's operational admin.
type MsgUpdateAdmin struct {
	Admin    string `json:"admin"`
	PoolId   uint64 `json:"pool_id"`
	NewAdmin string `json:"new_admin"`
}

func (m *MsgUpdateAdmin) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(m.NewAdmin); err != nil {
		return ErrInvalidNewAdmin.Wrapf("%v", err)
	}
	if m.NewAdmin == m.Admin {
		return ErrInvalidNewAdmin.Wrap("new admin equals current admin")
	}
	return nil
}

func (m *MsgUpdateAdmin) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgTogglePause flips the admin pause flag, effective immediately.
type MsgTogglePause struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgTogglePause) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgTogglePause) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgFinalizePool permanently disables the emergency path for the pool.
type MsgFinalizePool struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgFinalizePool) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgFinalizePool) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }
