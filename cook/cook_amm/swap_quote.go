package cook_amm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// swapFeeOnAmount returns ceil(amount * fee / 100 / 100). The two divisions
// mirror the on-chain fee unit and must stay as written.
func swapFeeOnAmount(amount decimal.Decimal, fee uint32) decimal.Decimal {
	return amount.Mul(decimal.NewFromUint64(uint64(fee))).Div(N100).Div(N100).Ceil()
}

func decimalScale(decimals uint8) decimal.Decimal {
	return N10.Pow(decimal.NewFromInt(int64(decimals)))
}

// quoteDirect runs the single-step constant product formula on the whole
// input. Returns the raw output, the swap fee charged, and the raw no-slip
// reference at the pool's current marginal price.
func quoteDirect(pool *Pool, direction TradeDirection, amountIn decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	baseReserve := decimal.NewFromUint64(pool.BaseReserve)
	quoteReserve := decimal.NewFromUint64(pool.QuoteReserve)

	fee := swapFeeOnAmount(amountIn, pool.Fee)
	inputExFee := amountIn.Sub(fee)
	if inputExFee.Sign() <= 0 {
		return N0, fee, N0
	}

	var amountOut, noSlip decimal.Decimal
	if direction == TradeDirectionQuoteToBase {
		// out = in * base / (quote + in)
		amountOut = inputExFee.Mul(baseReserve).Div(quoteReserve.Add(inputExFee))
		noSlip = inputExFee.Mul(baseReserve).Div(quoteReserve)
	} else {
		amountOut = inputExFee.Mul(quoteReserve).Div(baseReserve.Add(inputExFee))
		noSlip = inputExFee.Mul(quoteReserve).Div(baseReserve)
	}
	return amountOut, fee, noSlip
}

// SwapQuote computes the expected output for spending amountIn raw units in
// the given direction against a pool snapshot. Pools with the liquidity
// scaling plugin active are quoted through the chunked simulation; all
// others go through the direct formula. slippageBps shapes MinimumAmountOut
// the same way the settlement instruction consumes it.
//
// The quote never mutates the snapshot and two calls with identical inputs
// return identical results.
func SwapQuote(pool *Pool, direction TradeDirection, amountIn decimal.Decimal, slippageBps uint64) (*QuoteResult, error) {
	if pool.BaseReserve == 0 || pool.QuoteReserve == 0 {
		return nil, ErrPoolUninitialized
	}
	if amountIn.Sign() < 0 {
		return nil, ErrInvalidInput
	}
	if amountIn.IsZero() {
		return &QuoteResult{
			AmountOut:        big.NewInt(0),
			MinimumAmountOut: big.NewInt(0),
			Fee:              big.NewInt(0),
		}, nil
	}

	var amountOut, fee, noSlip decimal.Decimal
	if pool.Scaling.Active {
		amountOut, fee, noSlip = quoteChunked(pool, direction, amountIn)
	} else {
		amountOut, fee, noSlip = quoteDirect(pool, direction, amountIn)
	}

	if amountOut.Sign() <= 0 {
		return nil, ErrDegenerateQuote
	}

	outScale := decimalScale(pool.BaseDecimals)
	if direction == TradeDirectionBaseToQuote {
		outScale = decimalScale(pool.QuoteDecimals)
	}

	// slippagePct = noSlip/out - 1, shown as 0 when execution beats the
	// marginal price estimate
	slippagePct := noSlip.Div(amountOut).Sub(N1)
	if slippagePct.Sign() < 0 {
		slippagePct = N0
	}

	amountOutRaw := amountOut.Floor()
	minimumOut := amountOutRaw
	if slippageBps > 0 {
		slippageFactor := N10000.Sub(decimal.NewFromUint64(slippageBps))
		minimumOut = amountOutRaw.Mul(slippageFactor).Div(N10000).Floor()
	}

	return &QuoteResult{
		AmountOut:        amountOutRaw.BigInt(),
		MinimumAmountOut: minimumOut.BigInt(),
		Fee:              fee.BigInt(),
		NoSlipAmountOut:  noSlip,
		AmountOutUi:      amountOut.Div(outScale),
		NoSlipAmountUi:   noSlip.Div(outScale),
		SlippagePct:      slippagePct,
	}, nil
}
