package types

import "encoding/json"

// The tx types are hand-written JSON structs rather than generated protobuf
// code, but sdk.Msg still demands the proto.Message surface. The methods below
// provide it; String renders the same JSON the module persists.

func msgString(m interface{}) string {
	bz, _ := json.Marshal(m)
	return string(bz)
}

func (m *MsgInitializePool) Reset()         { *m = MsgInitializePool{} }
func (m *MsgInitializePool) String() string { return msgString(m) }
func (m *MsgInitializePool) ProtoMessage()  {}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return msgString(m) }
func (m *MsgAddLiquidity) ProtoMessage()  {}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return msgString(m) }
func (m *MsgRemoveLiquidity) ProtoMessage()  {}

func (m *MsgExecuteTrade) Reset()         { *m = MsgExecuteTrade{} }
func (m *MsgExecuteTrade) String() string { return msgString(m) }
func (m *MsgExecuteTrade) ProtoMessage()  {}

func (m *MsgWithdrawFees) Reset()         { *m = MsgWithdrawFees{} }
func (m *MsgWithdrawFees) String() string { return msgString(m) }
func (m *MsgWithdrawFees) ProtoMessage()  {}

func (m *MsgBlacklistTrader) Reset()         { *m = MsgBlacklistTrader{} }
func (m *MsgBlacklistTrader) String() string { return msgString(m) }
func (m *MsgBlacklistTrader) ProtoMessage()  {}

func (m *MsgRemoveFromBlacklist) Reset()         { *m = MsgRemoveFromBlacklist{} }
func (m *MsgRemoveFromBlacklist) String() string { return msgString(m) }
func (m *MsgRemoveFromBlacklist) ProtoMessage()  {}

func (m *MsgBatchBlacklistTraders) Reset()         { *m = MsgBatchBlacklistTraders{} }
func (m *MsgBatchBlacklistTraders) String() string { return msgString(m) }
func (m *MsgBatchBlacklistTraders) ProtoMessage()  {}

func (m *MsgBatchUnblacklistTraders) Reset()         { *m = MsgBatchUnblacklistTraders{} }
func (m *MsgBatchUnblacklistTraders) String() string { return msgString(m) }
func (m *MsgBatchUnblacklistTraders) ProtoMessage()  {}

func (m *MsgLockFeeTiers) Reset()         { *m = MsgLockFeeTiers{} }
func (m *MsgLockFeeTiers) String() string { return msgString(m) }
func (m *MsgLockFeeTiers) ProtoMessage()  {}

func (m *MsgUnlockFeeTiers) Reset()         { *m = MsgUnlockFeeTiers{} }
func (m *MsgUnlockFeeTiers) String() string { return msgString(m) }
func (m *MsgUnlockFeeTiers) ProtoMessage()  {}

func (m *MsgResetCircuitBreaker) Reset()         { *m = MsgResetCircuitBreaker{} }
func (m *MsgResetCircuitBreaker) String() string { return msgString(m) }
func (m *MsgResetCircuitBreaker) ProtoMessage()  {}

func (m *MsgUpdateAdmin) Reset()         { *m = MsgUpdateAdmin{} }
func (m *MsgUpdateAdmin) String() string { return msgString(m) }
func (m *MsgUpdateAdmin) ProtoMessage()  {}

func (m *MsgTogglePause) Reset()         { *m = MsgTogglePause{} }
func (m *MsgTogglePause) String() string { return msgString(m) }
func (m *MsgTogglePause) ProtoMessage()  {}

func (m *MsgFinalizePool) Reset()         { *m = MsgFinalizePool{} }
func (m *MsgFinalizePool) String() string { return msgString(m) }
func (m *MsgFinalizePool) ProtoMessage()  {}

func (m *MsgScheduleParameterUpdate) Reset()         { *m = MsgScheduleParameterUpdate{} }
func (m *MsgScheduleParameterUpdate) String() string { return msgString(m) }
func (m *MsgScheduleParameterUpdate) ProtoMessage()  {}

func (m *MsgCancelParameterUpdate) Reset()         { *m = MsgCancelParameterUpdate{} }
func (m *MsgCancelParameterUpdate) String() string { return msgString(m) }
func (m *MsgCancelParameterUpdate) ProtoMessage()  {}

func (m *MsgApplyParameterUpdate) Reset()         { *m = MsgApplyParameterUpdate{} }
func (m *MsgApplyParameterUpdate) String() string { return msgString(m) }
func (m *MsgApplyParameterUpdate) ProtoMessage()  {}

func (m *MsgScheduleEmergencyPause) Reset()         { *m = MsgScheduleEmergencyPause{} }
func (m *MsgScheduleEmergencyPause) String() string { return msgString(m) }
func (m *MsgScheduleEmergencyPause) ProtoMessage()  {}

func (m *MsgApplyEmergencyPause) Reset()         { *m = MsgApplyEmergencyPause{} }
func (m *MsgApplyEmergencyPause) String() string { return msgString(m) }
func (m *MsgApplyEmergencyPause) ProtoMessage()  {}

func (m *MsgScheduleEmergencyResume) Reset()         { *m = MsgScheduleEmergencyResume{} }
func (m *MsgScheduleEmergencyResume) String() string { return msgString(m) }
func (m *MsgScheduleEmergencyResume) ProtoMessage()  {}

func (m *MsgApplyEmergencyResume) Reset()         { *m = MsgApplyEmergencyResume{} }
func (m *MsgApplyEmergencyResume) String() string { return msgString(m) }
func (m *MsgApplyEmergencyResume) ProtoMessage()  {}
