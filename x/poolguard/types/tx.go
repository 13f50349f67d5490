package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializePool(context.Context, *MsgInitializePool) (*MsgInitializePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	ExecuteTrade(context.Context, *MsgExecuteTrade) (*MsgExecuteTradeResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)

	BlacklistTrader(context.Context, *MsgBlacklistTrader) (*MsgBlacklistTraderResponse, error)
	RemoveFromBlacklist(context.Context, *MsgRemoveFromBlacklist) (*MsgRemoveFromBlacklistResponse, error)
	BatchBlacklistTraders(context.Context, *MsgBatchBlacklistTraders) (*MsgBatchBlacklistTradersResponse, error)
	BatchUnblacklistTraders(context.Context, *MsgBatchUnblacklistTraders) (*MsgBatchUnblacklistTradersResponse, error)

	LockFeeTiers(context.Context, *MsgLockFeeTiers) (*MsgLockFeeTiersResponse, error)
	UnlockFeeTiers(context.Context, *MsgUnlockFeeTiers) (*MsgUnlockFeeTiersResponse, error)
	ResetCircuitBreaker(context.Context, *MsgResetCircuitBreaker) (*MsgResetCircuitBreakerResponse, error)
	UpdateAdmin(context.Context, *MsgUpdateAdmin) (*MsgUpdateAdminResponse, error)
	TogglePause(context.Context, *MsgTogglePause) (*MsgTogglePauseResponse, error)
	FinalizePool(context.Context, *MsgFinalizePool) (*MsgFinalizePoolResponse, error)

	ScheduleParameterUpdate(context.Context, *MsgScheduleParameterUpdate) (*MsgScheduleParameterUpdateResponse, error)
	CancelParameterUpdate(context.Context, *MsgCancelParameterUpdate) (*MsgCancelParameterUpdateResponse, error)
	ApplyParameterUpdate(context.Context, *MsgApplyParameterUpdate) (*MsgApplyParameterUpdateResponse, error)

	ScheduleEmergencyPause(context.Context, *MsgScheduleEmergencyPause) (*MsgScheduleEmergencyPauseResponse, error)
	ApplyEmergencyPause(context.Context, *MsgApplyEmergencyPause) (*MsgApplyEmergencyPauseResponse, error)
	ScheduleEmergencyResume(context.Context, *MsgScheduleEmergencyResume) (*MsgScheduleEmergencyResumeResponse, error)
	ApplyEmergencyResume(context.Context, *MsgApplyEmergencyResume) (*MsgApplyEmergencyResumeResponse, error)
}

// Response types

// MsgInitializePoolResponse defines the response for InitializePool
type MsgInitializePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	TotalLiquidity math.Int `json:"total_liquidity"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	TotalLiquidity math.Int `json:"total_liquidity"`
}

// MsgExecuteTradeResponse defines the response for ExecuteTrade
type MsgExecuteTradeResponse struct {
	AmountOut      math.Int `json:"amount_out"`
	FeeAmount      math.Int `json:"fee_amount"`
	FeeMode        FeeMode  `json:"fee_mode"`
	PriceImpactBps uint64   `json:"price_impact_bps"`
}

// MsgWithdrawFeesResponse defines the response for WithdrawFees
type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgBlacklistTraderResponse defines the response for BlacklistTrader
type MsgBlacklistTraderResponse struct{}

// MsgRemoveFromBlacklistResponse defines the response for RemoveFromBlacklist
type MsgRemoveFromBlacklistResponse struct{}

// MsgBatchBlacklistTradersResponse reports how many traders were newly banned
type MsgBatchBlacklistTradersResponse struct {
	Added uint64 `json:"added"`
}

// MsgBatchUnblacklistTradersResponse reports how many bans were lifted
type MsgBatchUnblacklistTradersResponse struct {
	Removed uint64 `json:"removed"`
}

// MsgLockFeeTiersResponse defines the response for LockFeeTiers
type MsgLockFeeTiersResponse struct{}

// MsgUnlockFeeTiersResponse reports when the scheduled unlock becomes applicable
type MsgUnlockFeeTiersResponse struct {
	ApplicableTime int64 `json:"applicable_time"`
}

// MsgResetCircuitBreakerResponse defines the response for ResetCircuitBreaker
type MsgResetCircuitBreakerResponse struct{}

// MsgUpdateAdminResponse defines the response for UpdateAdmin
type MsgUpdateAdminResponse struct{}

// MsgTogglePauseResponse reports the pause flag after the toggle
type MsgTogglePauseResponse struct {
	Paused bool `json:"paused"`
}

// MsgFinalizePoolResponse defines the response for FinalizePool
type MsgFinalizePoolResponse struct{}

// MsgScheduleParameterUpdateResponse reports when the update becomes applicable
type MsgScheduleParameterUpdateResponse struct {
	ApplicableTime int64 `json:"applicable_time"`
}

// MsgCancelParameterUpdateResponse defines the response for CancelParameterUpdate
type MsgCancelParameterUpdateResponse struct{}

// MsgApplyParameterUpdateResponse reports the pool version after the apply
type MsgApplyParameterUpdateResponse struct {
	Version uint64 `json:"version"`
}

// MsgScheduleEmergencyPauseResponse reports when the pause becomes applicable
type MsgScheduleEmergencyPauseResponse struct {
	ApplicableTime int64 `json:"applicable_time"`
}

// MsgApplyEmergencyPauseResponse defines the response for ApplyEmergencyPause
type MsgApplyEmergencyPauseResponse struct{}

// MsgScheduleEmergencyResumeResponse reports when the resume becomes applicable
type MsgScheduleEmergencyResumeResponse struct {
	ApplicableTime int64 `json:"applicable_time"`
}

// MsgApplyEmergencyResumeResponse defines the response for ApplyEmergencyResume
type MsgApplyEmergencyResumeResponse struct{}
