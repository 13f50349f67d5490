package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// GetQueryCmd returns the query commands for the poolguard module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the poolguard module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryPendingUpdate(),
		CmdQueryBlacklist(),
		CmdQueryIsBlacklisted(),
		CmdQueryQuoteTrade(),
	)

	return queryCmd
}

// printJSON renders a query response as indented JSON.
// Responses are plain JSON types rather than protobuf, so PrintProto
// does not apply here.
func printJSON(clientCtx client.Context, res interface{}) error {
	bz, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// CmdQueryPool returns a CLI command handler for querying a single pool
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a protected pool by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(cmd.Context(), &types.QueryPoolRequest{PoolId: poolID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPools returns a CLI command handler for listing pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List all protected pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(cmd.Context(), &types.QueryPoolsRequest{Pagination: pageReq})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddPaginationFlagsToCmd(cmd, "pools")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPendingUpdate returns a CLI command handler for inspecting a timelocked update
func CmdQueryPendingUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending-update [pool-id]",
		Short: "Query the pending parameter update for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.PendingUpdate(cmd.Context(), &types.QueryPendingUpdateRequest{PoolId: poolID})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBlacklist returns a CLI command handler for listing banned traders
func CmdQueryBlacklist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist [pool-id]",
		Short: "List the banned traders for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Blacklist(cmd.Context(), &types.QueryBlacklistRequest{
				PoolId:     poolID,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddPaginationFlagsToCmd(cmd, "blacklist")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIsBlacklisted returns a CLI command handler for checking a single trader
func CmdQueryIsBlacklisted() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-blacklisted [pool-id] [trader]",
		Short: "Check whether a trader is banned from a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.IsBlacklisted(cmd.Context(), &types.QueryIsBlacklistedRequest{
				PoolId: poolID,
				Trader: args[1],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryQuoteTrade returns a CLI command handler for pricing a trade without executing it
func CmdQueryQuoteTrade() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [pool-id] [amount-in]",
		Short: "Quote the output and fee for a prospective trade",
		Long: `Quote a trade without executing it. The quote runs the fee and
price impact math against current pool state but performs no transfers
and records no volume.

Example:
  $ rheosd query poolguard quote 1 1000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
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

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.QuoteTrade(cmd.Context(), &types.QueryQuoteTradeRequest{
				PoolId:   poolID,
				AmountIn: amountIn,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
