package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

const flagApply = "apply"

// GetTxCmd returns the transaction commands for the poolguard module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Pool protection transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		CmdInitializePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdExecuteTrade(),
		CmdWithdrawFees(),
		CmdBlacklistTrader(),
		CmdRemoveFromBlacklist(),
		CmdBatchBlacklistTraders(),
		CmdBatchUnblacklistTraders(),
		CmdLockFeeTiers(),
		CmdUnlockFeeTiers(),
		CmdResetCircuitBreaker(),
		CmdUpdateAdmin(),
		CmdTogglePause(),
		CmdFinalizePool(),
		CmdScheduleParameterUpdate(),
		CmdCancelParameterUpdate(),
		CmdApplyParameterUpdate(),
		CmdEmergencyPause(),
		CmdEmergencyResume(),
	)

	return txCmd
}

// CmdInitializePool returns a CLI command handler for creating a protected pool
func CmdInitializePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-pool [settings-file]",
		Short: "Create a new protected pool from a JSON settings file",
		Long: `Create a new protected pool. The settings file holds the full
pool configuration; the admin is taken from the --from key.

Example:
  $ rheosd tx poolguard initialize-pool pool.json --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read settings file: %w", err)
			}

			var msg types.MsgInitializePool
			if err := json.Unmarshal(bz, &msg); err != nil {
				return fmt.Errorf("parse settings file: %w", err)
			}
			msg.Admin = clientCtx.GetFromAddress().String()

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), &msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for funding a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount]",
		Short: "Deposit liquidity into a protected pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgAddLiquidity{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for withdrawing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [amount]",
		Short: "Withdraw liquidity from a protected pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgRemoveLiquidity{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteTrade returns a CLI command handler for trading against a pool
func CmdExecuteTrade() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade [pool-id] [amount-in] [minimum-amount-out]",
		Short: "Execute a trade through the protection pipeline",
		Long: `Execute a trade. The trade is rejected unless it clears every
protection gate and returns at least the requested minimum output.

Example:
  $ rheosd tx poolguard trade 1 1000000 995000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amountIn, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[1])
			}
			minOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid minimum-amount-out: %s (must be integer)", args[2])
			}

			msg := &types.MsgExecuteTrade{
				Trader:           clientCtx.GetFromAddress().String(),
				PoolId:           poolID,
				AmountIn:         amountIn,
				MinimumAmountOut: minOut,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFees returns a CLI command handler for collecting pool fees
func CmdWithdrawFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-fees [pool-id]",
		Short: "Withdraw accumulated trading fees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgWithdrawFees{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBlacklistTrader returns a CLI command handler for banning a trader
func CmdBlacklistTrader() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist [pool-id] [trader]",
		Short: "Ban a trader from a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgBlacklistTrader{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Trader: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveFromBlacklist returns a CLI command handler for lifting a ban
func CmdRemoveFromBlacklist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblacklist [pool-id] [trader]",
		Short: "Lift the ban on a trader",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgRemoveFromBlacklist{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Trader: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBatchBlacklistTraders returns a CLI command handler for banning several traders at once
func CmdBatchBlacklistTraders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-blacklist [pool-id] [trader] [trader...]",
		Short: "Ban up to 50 traders in one transaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgBatchBlacklistTraders{
				Admin:   clientCtx.GetFromAddress().String(),
				PoolId:  poolID,
				Traders: args[1:],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBatchUnblacklistTraders returns a CLI command handler for lifting several bans at once
func CmdBatchUnblacklistTraders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-unblacklist [pool-id] [trader] [trader...]",
		Short: "Lift bans on up to 50 traders in one transaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgBatchUnblacklistTraders{
				Admin:   clientCtx.GetFromAddress().String(),
				PoolId:  poolID,
				Traders: args[1:],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLockFeeTiers returns a CLI command handler for freezing the tier schedule
func CmdLockFeeTiers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock-fee-tiers [pool-id]",
		Short: "Freeze the fee tier schedule immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgLockFeeTiers{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnlockFeeTiers returns a CLI command handler for scheduling a tier unlock
func CmdUnlockFeeTiers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock-fee-tiers [pool-id]",
		Short: "Schedule a fee tier unlock through the parameter timelock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgUnlockFeeTiers{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResetCircuitBreaker returns a CLI command handler for resetting a tripped breaker
func CmdResetCircuitBreaker() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-circuit-breaker [pool-id]",
		Short: "Reset a tripped circuit breaker after its cooldown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgResetCircuitBreaker{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateAdmin returns a CLI command handler for rotating the pool admin
func CmdUpdateAdmin() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-admin [pool-id] [new-admin]",
		Short: "Rotate the pool admin to a new address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgUpdateAdmin{
				Admin:    clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				NewAdmin: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTogglePause returns a CLI command handler for flipping the admin pause flag
func CmdTogglePause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle-pause [pool-id]",
		Short: "Pause or resume trading on a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgTogglePause{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFinalizePool returns a CLI command handler for permanently finalizing a pool
func CmdFinalizePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize-pool [pool-id]",
		Short: "Finalize a pool, permanently disabling emergency actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgFinalizePool{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdScheduleParameterUpdate returns a CLI command handler for staging a timelocked update
func CmdScheduleParameterUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-update [pool-id] [update-file]",
		Short: "Schedule a timelocked parameter update from a JSON file",
		Long: `Schedule a parameter update. The update file carries one or more
settings bundles; the update becomes applicable after the timelock expires.

Example:
  $ rheosd tx poolguard schedule-update 1 update.json --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			bz, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read update file: %w", err)
			}

			var msg types.MsgScheduleParameterUpdate
			if err := json.Unmarshal(bz, &msg); err != nil {
				return fmt.Errorf("parse update file: %w", err)
			}
			msg.Admin = clientCtx.GetFromAddress().String()
			msg.PoolId = poolID

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), &msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelParameterUpdate returns a CLI command handler for dropping a pending update
func CmdCancelParameterUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-update [pool-id]",
		Short: "Cancel the pending parameter update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgCancelParameterUpdate{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApplyParameterUpdate returns a CLI command handler for applying a matured update
func CmdApplyParameterUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-update [pool-id]",
		Short: "Apply the pending parameter update once its timelock expires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgApplyParameterUpdate{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEmergencyPause returns a CLI command handler for the emergency pause flow
func CmdEmergencyPause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency-pause [pool-id]",
		Short: "Schedule or apply an emergency pause",
		Long: `Schedule an emergency pause, or apply one whose timelock has
expired when --apply is set. Only the emergency admin may sign.

Example:
  $ rheosd tx poolguard emergency-pause 1 --from emergencykey
  $ rheosd tx poolguard emergency-pause 1 --apply --from emergencykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			apply, err := cmd.Flags().GetBool(flagApply)
			if err != nil {
				return err
			}

			from := clientCtx.GetFromAddress().String()
			var msg sdk.Msg
			if apply {
				m := &types.MsgApplyEmergencyPause{EmergencyAdmin: from, PoolId: poolID}
				if err := m.ValidateBasic(); err != nil {
					return err
				}
				msg = m
			} else {
				m := &types.MsgScheduleEmergencyPause{EmergencyAdmin: from, PoolId: poolID}
				if err := m.ValidateBasic(); err != nil {
					return err
				}
				msg = m
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagApply, false, "apply a scheduled emergency action instead of scheduling one")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEmergencyResume returns a CLI command handler for the emergency resume flow
func CmdEmergencyResume() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency-resume [pool-id]",
		Short: "Schedule or apply an emergency resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			apply, err := cmd.Flags().GetBool(flagApply)
			if err != nil {
				return err
			}

			from := clientCtx.GetFromAddress().String()
			var msg sdk.Msg
			if apply {
				m := &types.MsgApplyEmergencyResume{EmergencyAdmin: from, PoolId: poolID}
				if err := m.ValidateBasic(); err != nil {
					return err
				}
				msg = m
			} else {
				m := &types.MsgScheduleEmergencyResume{EmergencyAdmin: from, PoolId: poolID}
				if err := m.ValidateBasic(); err != nil {
					return err
				}
				msg = m
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagApply, false, "apply a scheduled emergency action instead of scheduling one")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
