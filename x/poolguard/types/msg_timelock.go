package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgScheduleParameterUpdate{}
	_ sdk.Msg = &MsgCancelParameterUpdate{}
	_ sdk.Msg = &MsgApplyParameterUpdate{}
	_ sdk.Msg = &MsgScheduleEmergencyPause{}
	_ sdk.Msg = &MsgApplyEmergencyPause{}
	_ sdk.Msg = &MsgScheduleEmergencyResume{}
	_ sdk.Msg = &MsgApplyEmergencyResume{}
)

// MsgScheduleParameterUpdate stages a parameter change behind the update
// timelock. At least one settings bundle must be present.
type MsgScheduleParameterUpdate struct {
	Admin              string                    `json:"admin"`
	PoolId             uint64                    `json:"pool_id"`
	TradeSettings      *TradeSettingsUpdate      `json:"trade_settings,omitempty"`
	ProtectionSettings *ProtectionSettingsUpdate `json:"protection_settings,omitempty"`
	FeeSettings        *FeeSettingsUpdate        `json:"fee_settings,omitempty"`
	StateSettings      *StateSettingsUpdate      `json:"state_settings,omitempty"`
}

func (m *MsgScheduleParameterUpdate) ValidateBasic() error {
	if err := validateAdminAddress(m.Admin); err != nil {
		return err
	}
	if m.TradeSettings == nil && m.ProtectionSettings == nil && m.FeeSettings == nil && m.StateSettings == nil {
		return ErrInvalidParameter.Wrap("update contains no settings")
	}
	if m.TradeSettings != nil {
		if err := ValidateTradeSettingsUpdate(*m.TradeSettings); err != nil {
			return err
		}
	}
	if m.ProtectionSettings != nil {
		if err := ValidateProtectionSettingsUpdate(*m.ProtectionSettings); err != nil {
			return err
		}
	}
	if m.FeeSettings != nil {
		if err := ValidateFeeTiers(m.FeeSettings.FeeTiers); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgScheduleParameterUpdate) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgCancelParameterUpdate discards the staged parameter change.
type MsgCancelParameterUpdate struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgCancelParameterUpdate) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgCancelParameterUpdate) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgApplyParameterUpdate commits the staged change once the timelock expired.
type MsgApplyParameterUpdate struct {
	Admin  string `json:"admin"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgApplyParameterUpdate) ValidateBasic() error         { return validateAdminAddress(m.Admin) }
func (m *MsgApplyParameterUpdate) GetSigners() []sdk.AccAddress { return adminSigners(m.Admin) }

// MsgScheduleEmergencyPause starts the emergency pause timelock. Signed by the
// emergency admin.
type MsgScheduleEmergencyPause struct {
	EmergencyAdmin string `json:"emergency_admin"`
	PoolId         uint64 `json:"pool_id"`
}

func (m *MsgScheduleEmergencyPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.EmergencyAdmin); err != nil {
		return ErrInvalidEmergencyAdmin.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgScheduleEmergencyPause) GetSigners() []sdk.AccAddress {
	return adminSigners(m.EmergencyAdmin)
}

// MsgApplyEmergencyPause executes the scheduled pause after its timelock.
type MsgApplyEmergencyPause struct {
	EmergencyAdmin string `json:"emergency_admin"`
	PoolId         uint64 `json:"pool_id"`
}

func (m *MsgApplyEmergencyPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.EmergencyAdmin); err != nil {
		return ErrInvalidEmergencyAdmin.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgApplyEmergencyPause) GetSigners() []sdk.AccAddress {
	return adminSigners(m.EmergencyAdmin)
}

// MsgScheduleEmergencyResume starts the emergency resume timelock.
type MsgScheduleEmergencyResume struct {
	EmergencyAdmin string `json:"emergency_admin"`
	PoolId         uint64 `json:"pool_id"`
}

func (m *MsgScheduleEmergencyResume) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.EmergencyAdmin); err != nil {
		return ErrInvalidEmergencyAdmin.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgScheduleEmergencyResume) GetSigners() []sdk.AccAddress {
	return adminSigners(m.EmergencyAdmin)
}

// MsgApplyEmergencyResume executes the scheduled resume after its timelock.
type MsgApplyEmergencyResume struct {
	EmergencyAdmin string `json:"emergency_admin"`
	PoolId         uint64 `json:"pool_id"`
}

func (m *MsgApplyEmergencyResume) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.EmergencyAdmin); err != nil {
		return ErrInvalidEmergencyAdmin.Wrapf("%v", err)
	}
	return nil
}

func (m *MsgApplyEmergencyResume) GetSigners() []sdk.AccAddress {
	return adminSigners(m.EmergencyAdmin)
}
