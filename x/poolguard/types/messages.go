package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgInitializePool{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgExecuteTrade{}
	_ sdk.Msg = &MsgWithdrawFees{}
)

// MsgInitializePool creates a new protected pool.
type MsgInitializePool struct {
	Admin          string                 `json:"admin"`
	EmergencyAdmin string                 `json:"emergency_admin"`
	TokenDenom     string                 `json:"token_denom"`
	TokenDecimals  uint32                 `json:"token_decimals"`
	Trade          TradeSettings          `json:"trade"`
	Protection     ProtectionSettings     `json:"protection"`
	CircuitBreaker CircuitBreakerSettings `json:"circuit_breaker"`
	RateLimit      RateLimitSettings      `json:"rate_limit"`
	Volume         VolumeSettings         `json:"volume"`
	FeeTiers       []FeeTier              `json:"fee_tiers"`
	DefaultFeeBps  uint64                 `json:"default_fee_bps"`
}

// ValidateBasic performs stateless validation of MsgInitializePool
func (m *MsgInitializePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidTrader.Wrapf("invalid admin address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.EmergencyAdmin); err != nil {
		return ErrInvalidEmergencyAdmin.Wrapf("invalid emergency admin address: %v", err)
	}
	if m.Admin == m.EmergencyAdmin {
		return ErrInvalidEmergencyAdmin.Wrap("emergency admin must differ from admin")
	}
	if err := sdk.ValidateDenom(m.TokenDenom); err != nil {
		return ErrInvalidTokenDenom.Wrapf("%v", err)
	}
	if m.DefaultFeeBps > MaximumFeeBps {
		return ErrFeeTooHigh.Wrapf("default fee %d bps above maximum %d", m.DefaultFeeBps, MaximumFeeBps)
	}
	if err := ValidateTradeSettings(m.Trade, m.Protection); err != nil {
		return err
	}
	if err := ValidateProtectionSettings(m.Protection); err != nil {
		return err
	}
	if err := ValidateCircuitBreakerSettings(m.CircuitBreaker); err != nil {
		return err
	}
	if err := ValidateRateLimitSettings(m.RateLimit); err != nil {
		return err
	}
	if err := ValidateVolumeSettings(m.Volume); err != nil {
		return err
	}
	return ValidateFeeTiers(m.FeeTiers)
}

// GetSigners returns the expected signers for MsgInitializePool
func (m *MsgInitializePool) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgAddLiquidity deposits tokens into the pool's custody account. The first
// add stamps the pool start time.
type MsgAddLiquidity struct {
	Admin  string   `json:"admin"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgAddLiquidity
func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidTrader.Wrapf("invalid admin address: %v", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgAddLiquidity
func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgRemoveLiquidity withdraws tokens from the pool's custody account.
type MsgRemoveLiquidity struct {
	Admin  string   `json:"admin"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation of MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidTrader.Wrapf("invalid admin address: %v", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgExecuteTrade runs one protected trade against the pool.
type MsgExecuteTrade struct {
	Trader           string   `json:"trader"`
	PoolId           uint64   `json:"pool_id"`
	AmountIn         math.Int `json:"amount_in"`
	MinimumAmountOut math.Int `json:"minimum_amount_out"`
}

// ValidateBasic performs stateless validation of MsgExecuteTrade
func (m *MsgExecuteTrade) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidTrader.Wrapf("invalid trader address: %v", err)
	}
	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_in must be positive")
	}
	if m.MinimumAmountOut.IsNil() || m.MinimumAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("minimum_amount_out must be non-negative")
	}
	return nil
}

// GetSigners returns the expected signers for MsgExecuteTrade
func (m *MsgExecuteTrade) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// MsgWithdrawFees transfers all accumulated fees to the admin.
type MsgWithdrawFees struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

// ValidateBasic performs stateless validation of MsgWithdrawFees
func (m *MsgWithdrawFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidTrader.Wrapf("invalid admin address: %v", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawFees
func (m *MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}
