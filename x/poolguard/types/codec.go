package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializePool{}, "poolguard/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "poolguard/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "poolguard/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgExecuteTrade{}, "poolguard/MsgExecuteTrade", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "poolguard/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgBlacklistTrader{}, "poolguard/MsgBlacklistTrader", nil)
	cdc.RegisterConcrete(&MsgRemoveFromBlacklist{}, "poolguard/MsgRemoveFromBlacklist", nil)
	cdc.RegisterConcrete(&MsgBatchBlacklistTraders{}, "poolguard/MsgBatchBlacklistTraders", nil)
	cdc.RegisterConcrete(&MsgBatchUnblacklistTraders{}, "poolguard/MsgBatchUnblacklistTraders", nil)
	cdc.RegisterConcrete(&MsgLockFeeTiers{}, "poolguard/MsgLockFeeTiers", nil)
	cdc.RegisterConcrete(&MsgUnlockFeeTiers{}, "poolguard/MsgUnlockFeeTiers", nil)
	cdc.RegisterConcrete(&MsgResetCircuitBreaker{}, "poolguard/MsgResetCircuitBreaker", nil)
	cdc.RegisterConcrete(&MsgUpdateAdmin{}, "poolguard/MsgUpdateAdmin", nil)
	cdc.RegisterConcrete(&MsgTogglePause{}, "poolguard/MsgTogglePause", nil)
	cdc.RegisterConcrete(&MsgFinalizePool{}, "poolguard/MsgFinalizePool", nil)
	cdc.RegisterConcrete(&MsgScheduleParameterUpdate{}, "poolguard/MsgScheduleParameterUpdate", nil)
	cdc.RegisterConcrete(&MsgCancelParameterUpdate{}, "poolguard/MsgCancelParameterUpdate", nil)
	cdc.RegisterConcrete(&MsgApplyParameterUpdate{}, "poolguard/MsgApplyParameterUpdate", nil)
	cdc.RegisterConcrete(&MsgScheduleEmergencyPause{}, "poolguard/MsgScheduleEmergencyPause", nil)
	cdc.RegisterConcrete(&MsgApplyEmergencyPause{}, "poolguard/MsgApplyEmergencyPause", nil)
	cdc.RegisterConcrete(&MsgScheduleEmergencyResume{}, "poolguard/MsgScheduleEmergencyResume", nil)
	cdc.RegisterConcrete(&MsgApplyEmergencyResume{}, "poolguard/MsgApplyEmergencyResume", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializePool{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgExecuteTrade{},
		&MsgWithdrawFees{},
		&MsgBlacklistTrader{},
		&MsgRemoveFromBlacklist{},
		&MsgBatchBlacklistTraders{},
		&MsgBatchUnblacklistTraders{},
		&MsgLockFeeTiers{},
		&MsgUnlockFeeTiers{},
		&MsgResetCircuitBreaker{},
		&MsgUpdateAdmin{},
		&MsgTogglePause{},
		&MsgFinalizePool{},
		&MsgScheduleParameterUpdate{},
		&MsgCancelParameterUpdate{},
		&MsgApplyParameterUpdate{},
		&MsgScheduleEmergencyPause{},
		&MsgApplyEmergencyPause{},
		&MsgScheduleEmergencyResume{},
		&MsgApplyEmergencyResume{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
