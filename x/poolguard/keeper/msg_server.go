package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the poolguard MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializePool handles the creation of a new protected pool
func (ms msgServer) InitializePool(goCtx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializePool: validate: %w", err)
	}

	poolID, err := ms.Keeper.InitializePool(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("InitializePool: %w", err)
	}

	return &types.MsgInitializePoolResponse{PoolId: poolID}, nil
}

// AddLiquidity handles a liquidity deposit into module custody
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid admin address: %w", err)
	}

	total, err := ms.Keeper.AddLiquidity(goCtx, msg.PoolId, admin, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{TotalLiquidity: total}, nil
}

// RemoveLiquidity handles a liquidity withdrawal from module custody
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid admin address: %w", err)
	}

	total, err := ms.Keeper.RemoveLiquidity(goCtx, msg.PoolId, admin, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{TotalLiquidity: total}, nil
}

// ExecuteTrade runs one trade through the protection pipeline
func (ms msgServer) ExecuteTrade(goCtx context.Context, msg *types.MsgExecuteTrade) (*types.MsgExecuteTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ExecuteTrade: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("ExecuteTrade: invalid trader address: %w", err)
	}

	result, err := ms.Keeper.ExecuteTrade(goCtx, msg.PoolId, trader, msg.AmountIn, msg.MinimumAmountOut)
	if err != nil {
		return nil, fmt.Errorf("ExecuteTrade: %w", err)
	}

	return &types.MsgExecuteTradeResponse{
		AmountOut:      result.AmountOut,
		FeeAmount:      result.FeeAmount,
		FeeMode:        result.FeeMode,
		PriceImpactBps: result.PriceImpactBps,
	}, nil
}

// WithdrawFees pays accumulated fees out to the admin
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: invalid admin address: %w", err)
	}

	amount, err := ms.Keeper.WithdrawFees(goCtx, msg.PoolId, admin)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: %w", err)
	}

	return &types.MsgWithdrawFeesResponse{Amount: amount}, nil
}

// BlacklistTrader bans one trader from a pool
func (ms msgServer) BlacklistTrader(goCtx context.Context, msg *types.MsgBlacklistTrader) (*types.MsgBlacklistTraderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BlacklistTrader: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("BlacklistTrader: invalid admin address: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("BlacklistTrader: invalid trader address: %w", err)
	}

	if err := ms.Keeper.BlacklistTrader(goCtx, msg.PoolId, admin, trader); err != nil {
		return nil, fmt.Errorf("BlacklistTrader: %w", err)
	}

	return &types.MsgBlacklistTraderResponse{}, nil
}

// RemoveFromBlacklist lifts a ban
func (ms msgServer) RemoveFromBlacklist(goCtx context.Context, msg *types.MsgRemoveFromBlacklist) (*types.MsgRemoveFromBlacklistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveFromBlacklist: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("RemoveFromBlacklist: invalid admin address: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("RemoveFromBlacklist: invalid trader address: %w", err)
	}

	if err := ms.Keeper.RemoveFromBlacklist(goCtx, msg.PoolId, admin, trader); err != nil {
		return nil, fmt.Errorf("RemoveFromBlacklist: %w", err)
	}

	return &types.MsgRemoveFromBlacklistResponse{}, nil
}

// BatchBlacklistTraders bans several traders in one message
func (ms msgServer) BatchBlacklistTraders(goCtx context.Context, msg *types.MsgBatchBlacklistTraders) (*types.MsgBatchBlacklistTradersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BatchBlacklistTraders: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("BatchBlacklistTraders: invalid admin address: %w", err)
	}
	traders, err := parseTraderBatch(msg.Traders)
	if err != nil {
		return nil, fmt.Errorf("BatchBlacklistTraders: %w", err)
	}

	added, err := ms.Keeper.BatchBlacklistTraders(goCtx, msg.PoolId, admin, traders)
	if err != nil {
		return nil, fmt.Errorf("BatchBlacklistTraders: %w", err)
	}

	return &types.MsgBatchBlacklistTradersResponse{Added: added}, nil
}

// BatchUnblacklistTraders lifts several bans in one message
func (ms msgServer) BatchUnblacklistTraders(goCtx context.Context, msg *types.MsgBatchUnblacklistTraders) (*types.MsgBatchUnblacklistTradersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BatchUnblacklistTraders: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("BatchUnblacklistTraders: invalid admin address: %w", err)
	}
	traders, err := parseTraderBatch(msg.Traders)
	if err != nil {
		return nil, fmt.Errorf("BatchUnblacklistTraders: %w", err)
	}

	removed, err := ms.Keeper.BatchUnblacklistTraders(goCtx, msg.PoolId, admin, traders)
	if err != nil {
		return nil, fmt.Errorf("BatchUnblacklistTraders: %w", err)
	}

	return &types.MsgBatchUnblacklistTradersResponse{Removed: removed}, nil
}

// LockFeeTiers freezes a pool's tier schedule
func (ms msgServer) LockFeeTiers(goCtx context.Context, msg *types.MsgLockFeeTiers) (*types.MsgLockFeeTiersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("LockFeeTiers: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("LockFeeTiers: invalid admin address: %w", err)
	}

	if err := ms.Keeper.LockFeeTiers(goCtx, msg.PoolId, admin); err != nil {
		return nil, fmt.Errorf("LockFeeTiers: %w", err)
	}

	return &types.MsgLockFeeTiersResponse{}, nil
}

// UnlockFeeTiers schedules a timelocked unlock of the tier schedule
func (ms msgServer) UnlockFeeTiers(goCtx context.Context, msg *types.MsgUnlockFeeTiers) (*types.MsgUnlockFeeTiersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UnlockFeeTiers: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UnlockFeeTiers: invalid admin address: %w", err)
	}

	applicable, err := ms.Keeper.ScheduleFeeTiersUnlock(goCtx, msg.PoolId, admin)
	if err != nil {
		return nil, fmt.Errorf("UnlockFeeTiers: %w", err)
	}

	return &types.MsgUnlockFeeTiersResponse{ApplicableTime: applicable}, nil
}

// ResetCircuitBreaker clears the breaker after its cooldown
func (ms msgServer) ResetCircuitBreaker(goCtx context.Context, msg *types.MsgResetCircuitBreaker) (*types.MsgResetCircuitBreakerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResetCircuitBreaker: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ResetCircuitBreaker: invalid admin address: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.ResetCircuitBreaker(ctx, msg.PoolId, admin); err != nil {
		return nil, fmt.Errorf("ResetCircuitBreaker: %w", err)
	}

	return &types.MsgResetCircuitBreakerResponse{}, nil
}

// UpdateAdmin rotates the pool's operational admin
func (ms msgServer) UpdateAdmin(goCtx context.Context, msg *types.MsgUpdateAdmin) (*types.MsgUpdateAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateAdmin: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateAdmin: invalid admin address: %w", err)
	}
	newAdmin, err := sdk.AccAddressFromBech32(msg.NewAdmin)
	if err != nil {
		return nil, fmt.Errorf("UpdateAdmin: invalid new admin address: %w", err)
	}

	if err := ms.Keeper.UpdateAdmin(goCtx, msg.PoolId, admin, newAdmin); err != nil {
		return nil, fmt.Errorf("UpdateAdmin: %w", err)
	}

	return &types.MsgUpdateAdminResponse{}, nil
}

// TogglePause flips the admin pause flag
func (ms msgServer) TogglePause(goCtx context.Context, msg *types.MsgTogglePause) (*types.MsgTogglePauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("TogglePause: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("TogglePause: invalid admin address: %w", err)
	}

	paused, err := ms.Keeper.TogglePause(goCtx, msg.PoolId, admin)
	if err != nil {
		return nil, fmt.Errorf("TogglePause: %w", err)
	}

	return &types.MsgTogglePauseResponse{Paused: paused}, nil
}

// FinalizePool permanently disables the emergency path
func (ms msgServer) FinalizePool(goCtx context.Context, msg *types.MsgFinalizePool) (*types.MsgFinalizePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FinalizePool: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("FinalizePool: invalid admin address: %w", err)
	}

	if err := ms.Keeper.FinalizePool(goCtx, msg.PoolId, admin); err != nil {
		return nil, fmt.Errorf("FinalizePool: %w", err)
	}

	return &types.MsgFinalizePoolResponse{}, nil
}

// ScheduleParameterUpdate stages a parameter change behind the update timelock
func (ms msgServer) ScheduleParameterUpdate(goCtx context.Context, msg *types.MsgScheduleParameterUpdate) (*types.MsgScheduleParameterUpdateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ScheduleParameterUpdate: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ScheduleParameterUpdate: invalid admin address: %w", err)
	}

	update := types.PendingUpdate{
		TradeSettings:      msg.TradeSettings,
		ProtectionSettings: msg.ProtectionSettings,
		FeeSettings:        msg.FeeSettings,
		StateSettings:      msg.StateSettings,
	}
	applicable, err := ms.Keeper.ScheduleParameterUpdate(goCtx, msg.PoolId, admin, update)
	if err != nil {
		return nil, fmt.Errorf("ScheduleParameterUpdate: %w", err)
	}

	return &types.MsgScheduleParameterUpdateResponse{ApplicableTime: applicable}, nil
}

// CancelParameterUpdate discards the staged parameter change
func (ms msgServer) CancelParameterUpdate(goCtx context.Context, msg *types.MsgCancelParameterUpdate) (*types.MsgCancelParameterUpdateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelParameterUpdate: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("CancelParameterUpdate: invalid admin address: %w", err)
	}

	if err := ms.Keeper.CancelParameterUpdate(goCtx, msg.PoolId, admin); err != nil {
		return nil, fmt.Errorf("CancelParameterUpdate: %w", err)
	}

	return &types.MsgCancelParameterUpdateResponse{}, nil
}

// ApplyParameterUpdate commits the staged change once its timelock expired
func (ms msgServer) ApplyParameterUpdate(goCtx context.Context, msg *types.MsgApplyParameterUpdate) (*types.MsgApplyParameterUpdateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApplyParameterUpdate: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ApplyParameterUpdate: invalid admin address: %w", err)
	}

	version, err := ms.Keeper.ApplyParameterUpdate(goCtx, msg.PoolId, admin)
	if err != nil {
		return nil, fmt.Errorf("ApplyParameterUpdate: %w", err)
	}

	return &types.MsgApplyParameterUpdateResponse{Version: version}, nil
}

// ScheduleEmergencyPause starts the emergency pause timelock
func (ms msgServer) ScheduleEmergencyPause(goCtx context.Context, msg *types.MsgScheduleEmergencyPause) (*types.MsgScheduleEmergencyPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyPause: validate: %w", err)
	}

	emergencyAdmin, err := sdk.AccAddressFromBech32(msg.EmergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyPause: invalid emergency admin address: %w", err)
	}

	applicable, err := ms.Keeper.ScheduleEmergencyPause(goCtx, msg.PoolId, emergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyPause: %w", err)
	}

	return &types.MsgScheduleEmergencyPauseResponse{ApplicableTime: applicable}, nil
}

// ApplyEmergencyPause executes the scheduled pause after its timelock
func (ms msgServer) ApplyEmergencyPause(goCtx context.Context, msg *types.MsgApplyEmergencyPause) (*types.MsgApplyEmergencyPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApplyEmergencyPause: validate: %w", err)
	}

	emergencyAdmin, err := sdk.AccAddressFromBech32(msg.EmergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ApplyEmergencyPause: invalid emergency admin address: %w", err)
	}

	if err := ms.Keeper.ApplyEmergencyPause(goCtx, msg.PoolId, emergencyAdmin); err != nil {
		return nil, fmt.Errorf("ApplyEmergencyPause: %w", err)
	}

	return &types.MsgApplyEmergencyPauseResponse{}, nil
}

// ScheduleEmergencyResume starts the emergency resume timelock
func (ms msgServer) ScheduleEmergencyResume(goCtx context.Context, msg *types.MsgScheduleEmergencyResume) (*types.MsgScheduleEmergencyResumeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyResume: validate: %w", err)
	}

	emergencyAdmin, err := sdk.AccAddressFromBech32(msg.EmergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyResume: invalid emergency admin address: %w", err)
	}

	applicable, err := ms.Keeper.ScheduleEmergencyResume(goCtx, msg.PoolId, emergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ScheduleEmergencyResume: %w", err)
	}

	return &types.MsgScheduleEmergencyResumeResponse{ApplicableTime: applicable}, nil
}

// ApplyEmergencyResume lifts the emergency pause after its timelock
func (ms msgServer) ApplyEmergencyResume(goCtx context.Context, msg *types.MsgApplyEmergencyResume) (*types.MsgApplyEmergencyResumeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApplyEmergencyResume: validate: %w", err)
	}

	emergencyAdmin, err := sdk.AccAddressFromBech32(msg.EmergencyAdmin)
	if err != nil {
		return nil, fmt.Errorf("ApplyEmergencyResume: invalid emergency admin address: %w", err)
	}

	if err := ms.Keeper.ApplyEmergencyResume(goCtx, msg.PoolId, emergencyAdmin); err != nil {
		return nil, fmt.Errorf("ApplyEmergencyResume: %w", err)
	}

	return &types.MsgApplyEmergencyResumeResponse{}, nil
}

func parseTraderBatch(raw []string) ([]sdk.AccAddress, error) {
	traders := make([]sdk.AccAddress, 0, len(raw))
	for _, r := range raw {
		addr, err := sdk.AccAddressFromBech32(r)
		if err != nil {
			return nil, fmt.Errorf("invalid trader address %s: %w", r, err)
		}
		traders = append(traders, addr)
	}
	return traders, nil
}
