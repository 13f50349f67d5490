package keeper

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/rheos/hoe-dex-protection/x/poolguard/types"
)

// InitializePool creates a new protected pool from validated settings and
// returns its ID. The pool starts without liquidity; trading opens once the
// admin funds it.
func (k Keeper) InitializePool(ctx context.Context, msg *types.MsgInitializePool) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	poolID := k.consumeNextPoolID(ctx)
	state := types.PoolState{
		PoolId:         poolID,
		Admin:          msg.Admin,
		EmergencyAdmin: msg.EmergencyAdmin,
		TokenDenom:     msg.TokenDenom,
		TokenDecimals:  msg.TokenDecimals,

		IsInitialized: true,

		TotalLiquidity:     math.ZeroInt(),
		TotalFeesCollected: math.ZeroInt(),

		Trade:          msg.Trade,
		Protection:     msg.Protection,
		CircuitBreaker: msg.CircuitBreaker,
		RateLimit:      msg.RateLimit,
		Volume:         msg.Volume,

		FeeTiers:      msg.FeeTiers,
		DefaultFeeBps: msg.DefaultFeeBps,

		Version:    1,
		LastUpdate: now,
	}
	state.Volume.CurrentVolume = math.ZeroInt()
	state.RateLimit.Count = 0
	state.RateLimit.LastReset = now

	if err := state.Validate(); err != nil {
		return 0, err
	}
	if err := k.SetPoolState(ctx, state); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActor, msg.Admin),
		),
	)

	GetMetrics().PoolsTotal.Inc()
	return poolID, nil
}

// AddLiquidity moves funds from the admin into module custody. The first
// deposit stamps the pool start time, which anchors snipe protection and the
// early trade window.
func (k Keeper) AddLiquidity(ctx context.Context, poolID uint64, admin sdk.AccAddress, amount math.Int) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	var total math.Int
	err := k.WithReentrancyGuard(ctx, poolID, "liquidity", func() error {
		state, err := k.GetPoolState(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.requireAdmin(state, admin); err != nil {
			return err
		}
		if state.IsEmergencyPaused {
			return types.ErrEmergencyPaused.Wrapf("pool %d", poolID)
		}
		if !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("deposit must be positive")
		}

		now := sdkCtx.BlockTime().Unix()
		total, err = SafeAdd(state.TotalLiquidity, amount)
		if err != nil {
			return err
		}
		state.TotalLiquidity = total
		if state.PoolStartTime == 0 {
			state.PoolStartTime = now
		}
		state.LastUpdate = now
		state.InstructionCounter++

		cacheCtx, writeFn := sdkCtx.CacheContext()
		if err := k.SetPoolState(cacheCtx, state); err != nil {
			return err
		}
		coins := sdk.NewCoins(sdk.NewCoin(state.TokenDenom, amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, admin, types.ModuleName, coins); err != nil {
			return types.ErrInvalidAmount.Wrapf("deposit transfer: %v", err)
		}
		writeFn()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityAdded,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)

		GetMetrics().PoolLiquidity.WithLabelValues(strconv.FormatUint(poolID, 10)).Set(floatFromInt(total))
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return total, nil
}

// RemoveLiquidity moves funds from module custody back to the admin
func (k Keeper) RemoveLiquidity(ctx context.Context, poolID uint64, admin sdk.AccAddress, amount math.Int) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	var total math.Int
	err := k.WithReentrancyGuard(ctx, poolID, "liquidity", func() error {
		state, err := k.GetPoolState(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.requireAdmin(state, admin); err != nil {
			return err
		}
		if state.IsEmergencyPaused {
			return types.ErrEmergencyPaused.Wrapf("pool %d", poolID)
		}
		if !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("withdrawal must be positive")
		}

		total, err = SafeSub(state.TotalLiquidity, amount)
		if err != nil {
			return types.ErrInsufficientLiquidity.Wrapf(
				"pool %d holds %s, cannot remove %s", poolID, state.TotalLiquidity, amount,
			)
		}
		state.TotalLiquidity = total
		state.LastUpdate = sdkCtx.BlockTime().Unix()
		state.InstructionCounter++

		cacheCtx, writeFn := sdkCtx.CacheContext()
		if err := k.SetPoolState(cacheCtx, state); err != nil {
			return err
		}
		coins := sdk.NewCoins(sdk.NewCoin(state.TokenDenom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, admin, coins); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("withdrawal transfer: %v", err)
		}
		writeFn()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityRemoved,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyActor, admin.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)

		GetMetrics().PoolLiquidity.WithLabelValues(strconv.FormatUint(poolID, 10)).Set(floatFromInt(total))
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return total, nil
}

// ExecuteTrade runs one trade through the full protection pipeline: pause and
// lifecycle gates, snipe protection, blacklist, size bounds, per-trader
// cooldown, rate limiter, volume decay, circuit breaker, price impact, fee
// policy, daily volume cap and the trader's slippage bound. Only a trade that
// clears every gate moves funds.
func (k Keeper) ExecuteTrade(ctx context.Context, poolID uint64, trader sdk.AccAddress, amountIn, minimumAmountOut math.Int) (types.TradeResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	poolLabel := strconv.FormatUint(poolID, 10)

	var result types.TradeResult
	err := k.WithReentrancyGuard(ctx, poolID, "trade", func() error {
		state, err := k.GetPoolState(ctx, poolID)
		if err != nil {
			return err
		}
		now := sdkCtx.BlockTime().Unix()

		if !state.IsInitialized {
			return types.ErrInvalidState.Wrapf("pool %d is not initialized", poolID)
		}
		if state.IsEmergencyPaused {
			return k.rejectTrade(sdkCtx, poolID, trader, "emergency_paused",
				types.ErrEmergencyPaused.Wrapf("pool %d", poolID))
		}
		if state.IsPaused {
			return k.rejectTrade(sdkCtx, poolID, trader, "paused",
				types.ErrPoolPaused.Wrapf("pool %d", poolID))
		}
		if state.PoolStartTime == 0 {
			return types.ErrPoolNotStarted.Wrapf("pool %d has no liquidity yet", poolID)
		}
		if state.TotalLiquidity.LT(state.Protection.MinLiquidity) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"pool %d holds %s, minimum %s", poolID, state.TotalLiquidity, state.Protection.MinLiquidity,
			)
		}

		if snipe := int64(state.Protection.SnipeProtectionSeconds); snipe > 0 && now-state.PoolStartTime < snipe {
			return k.rejectTrade(sdkCtx, poolID, trader, "snipe_protection",
				types.ErrSnipeProtection.Wrapf(
					"pool %d opens for trading in %d seconds", poolID, snipe-(now-state.PoolStartTime),
				))
		}

		if state.Protection.BlacklistEnabled && k.IsBlacklisted(ctx, poolID, trader) {
			GetMetrics().BlacklistHits.WithLabelValues(poolLabel).Inc()
			return k.rejectTrade(sdkCtx, poolID, trader, "blacklisted",
				types.ErrTraderBlacklisted.Wrapf("%s", trader))
		}

		if amountIn.LT(state.Trade.MinSize) {
			return k.rejectTrade(sdkCtx, poolID, trader, "too_small",
				types.ErrTradeTooSmall.Wrapf("amount %s below minimum %s", amountIn, state.Trade.MinSize))
		}
		maxSize, err := SafeMulDiv(
			state.TotalLiquidity,
			math.NewIntFromUint64(state.Trade.MaxSizeBps),
			math.NewIntFromUint64(types.BpsDenominator),
		)
		if err != nil {
			return err
		}
		if amountIn.GT(maxSize) {
			return k.rejectTrade(sdkCtx, poolID, trader, "too_large",
				types.ErrTradeTooLarge.Wrapf("amount %s above maximum %s", amountIn, maxSize))
		}

		if cooldown := int64(state.Trade.CooldownSeconds); cooldown > 0 &&
			state.Trade.LastTradeTime > 0 && now-state.Trade.LastTradeTime < cooldown {
			return k.rejectTrade(sdkCtx, poolID, trader, "cooldown",
				types.ErrTradeCooldown.Wrapf(
					"pool %d accepts the next trade in %d seconds",
					poolID, cooldown-(now-state.Trade.LastTradeTime),
				))
		}

		if err := k.checkRateLimit(sdkCtx, &state); err != nil {
			GetMetrics().RateLimitExceeds.WithLabelValues(poolLabel).Inc()
			return k.rejectTrade(sdkCtx, poolID, trader, "rate_limited", err)
		}

		if err := k.applyVolumeDecay(sdkCtx, &state); err != nil {
			return err
		}

		if err := k.checkCircuitBreaker(sdkCtx, &state, amountIn); err != nil {
			GetMetrics().CircuitBreakerTriggers.WithLabelValues(poolLabel).Inc()
			return k.rejectTrade(sdkCtx, poolID, trader, "circuit_breaker", err)
		}

		impactBps, err := priceImpactBps(amountIn, state.TotalLiquidity)
		if err != nil {
			return err
		}
		if impactBps > state.Protection.MaxPriceImpactBps {
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypePriceImpactRejected,
					sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
					sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
					sdk.NewAttribute(types.AttributeKeyPriceImpact, fmt.Sprintf("%d", impactBps)),
				),
			)
			return k.rejectTrade(sdkCtx, poolID, trader, "price_impact",
				types.ErrPriceImpactTooHigh.Wrapf(
					"impact %d bps above maximum %d", impactBps, state.Protection.MaxPriceImpactBps,
				))
		}

		fee, feeMode, err := ComputeTradeFee(state, amountIn, now)
		if err != nil {
			return err
		}
		amountOut, err := SafeSub(amountIn, fee)
		if err != nil {
			return err
		}

		if err := k.checkDailyVolume(&state, amountIn); err != nil {
			return k.rejectTrade(sdkCtx, poolID, trader, "daily_volume", err)
		}

		if amountOut.LT(minimumAmountOut) {
			return k.rejectTrade(sdkCtx, poolID, trader, "slippage",
				types.ErrSlippageExceeded.Wrapf(
					"output %s below requested minimum %s", amountOut, minimumAmountOut,
				))
		}

		state.TotalFeesCollected, err = SafeAdd(state.TotalFeesCollected, fee)
		if err != nil {
			return err
		}
		state.Trade.LastTradeTime = now
		state.LastUpdate = now
		state.InstructionCounter++

		// Checks are done; commit state and both legs of the transfer
		// atomically.
		cacheCtx, writeFn := sdkCtx.CacheContext()
		if err := k.SetPoolState(cacheCtx, state); err != nil {
			return err
		}
		inCoins := sdk.NewCoins(sdk.NewCoin(state.TokenDenom, amountIn))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, trader, types.ModuleName, inCoins); err != nil {
			return types.ErrInvalidAmount.Wrapf("trade deposit: %v", err)
		}
		outCoins := sdk.NewCoins(sdk.NewCoin(state.TokenDenom, amountOut))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, trader, outCoins); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("trade payout: %v", err)
		}
		writeFn()

		result = types.TradeResult{
			AmountOut:      amountOut,
			FeeAmount:      fee,
			FeeMode:        feeMode,
			PriceImpactBps: impactBps,
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTradeExecuted,
				sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
				sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
				sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
				sdk.NewAttribute(types.AttributeKeyFeeAmount, fee.String()),
				sdk.NewAttribute(types.AttributeKeyFeeMode, feeMode.String()),
				sdk.NewAttribute(types.AttributeKeyPriceImpact, fmt.Sprintf("%d", impactBps)),
			),
		)

		m := GetMetrics()
		m.TradesTotal.WithLabelValues(poolLabel, feeMode.String()).Inc()
		m.TradeVolume.WithLabelValues(poolLabel).Add(floatFromInt(amountIn))
		m.FeesCollected.WithLabelValues(poolLabel).Add(floatFromInt(fee))
		return nil
	})
	if err != nil {
		return types.TradeResult{}, err
	}
	return result, nil
}

// QuoteTrade prices a hypothetical trade against the current pool state
// without mutating anything.
func (k Keeper) QuoteTrade(ctx context.Context, poolID uint64, amountIn math.Int) (types.TradeResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	state, err := k.GetPoolState(ctx, poolID)
	if err != nil {
		return types.TradeResult{}, err
	}
	if !amountIn.IsPositive() {
		return types.TradeResult{}, types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	impactBps, err := priceImpactBps(amountIn, state.TotalLiquidity)
	if err != nil {
		return types.TradeResult{}, err
	}
	fee, feeMode, err := ComputeTradeFee(state, amountIn, sdkCtx.BlockTime().Unix())
	if err != nil {
		return types.TradeResult{}, err
	}
	amountOut, err := SafeSub(amountIn, fee)
	if err != nil {
		return types.TradeResult{}, err
	}

	return types.TradeResult{
		AmountOut:      amountOut,
		FeeAmount:      fee,
		FeeMode:        feeMode,
		PriceImpactBps: impactBps,
	}, nil
}

// rejectTrade emits the rejection event and passes the guard error through
func (k Keeper) rejectTrade(ctx sdk.Context, poolID uint64, trader sdk.AccAddress, reason string, err error) error {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTradeRejected,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	GetMetrics().TradesRejected.WithLabelValues(strconv.FormatUint(poolID, 10), reason).Inc()
	return err
}

// priceImpactBps estimates impact as the trade's share of pool liquidity in
// basis points. A non-zero trade against a funded pool always reads as at
// least 1 bps so rounding cannot hide impact; an empty pool reads as zero and
// is caught by the liquidity gate instead.
func priceImpactBps(amountIn, totalLiquidity math.Int) (uint64, error) {
	if totalLiquidity.IsZero() {
		return 0, nil
	}

	impact, err := SafeMulDiv(amountIn, math.NewIntFromUint64(types.BpsDenominator), totalLiquidity)
	if err != nil {
		return 0, err
	}
	if !impact.IsUint64() {
		return 0, types.ErrOverflow.Wrap("price impact out of range")
	}
	bps := impact.Uint64()
	if bps == 0 && amountIn.IsPositive() {
		bps = 1
	}
	return bps, nil
}

func floatFromInt(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
