package cook_amm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testPool is 1,000,000 base tokens (6 decimals) against 10 SOL (9 decimals)
// with a 0.3% swap fee.
func testPool() *Pool {
	return &Pool{
		BaseReserve:   1_000_000_000_000,
		QuoteReserve:  10_000_000_000,
		BaseDecimals:  6,
		QuoteDecimals: 9,
		Fee:           30,
		LPSupply:      1_000_000_000,
	}
}

func TestSwapQuoteBuyAgainstFormula(t *testing.T) {
	pool := testPool()
	amountIn := decimal.NewFromInt(1_000_000_000) // 1 SOL

	result, err := SwapQuote(pool, TradeDirectionQuoteToBase, amountIn, 0)
	require.NoError(t, err)

	// recompute the formula independently rather than pinning a literal
	fee := amountIn.Mul(decimal.NewFromInt(30)).Div(N100).Div(N100).Ceil()
	inputExFee := amountIn.Sub(fee)
	base := decimal.NewFromUint64(pool.BaseReserve)
	quote := decimal.NewFromUint64(pool.QuoteReserve)
	wantOut := inputExFee.Mul(base).Div(quote.Add(inputExFee)).Floor()

	require.Equal(t, wantOut.BigInt(), result.AmountOut)
	require.Equal(t, fee.BigInt(), result.Fee)

	require.True(t, result.AmountOut.Sign() > 0)
	require.True(t, decimal.NewFromBigInt(result.AmountOut, 0).Cmp(base) < 0,
		"output must not exceed the base reserve")
}

func TestSwapQuoteSellAgainstFormula(t *testing.T) {
	pool := testPool()
	amountIn := decimal.NewFromInt(100_000_000_000) // 100,000 tokens

	result, err := SwapQuote(pool, TradeDirectionBaseToQuote, amountIn, 0)
	require.NoError(t, err)

	fee := amountIn.Mul(decimal.NewFromInt(30)).Div(N100).Div(N100).Ceil()
	inputExFee := amountIn.Sub(fee)
	base := decimal.NewFromUint64(pool.BaseReserve)
	quote := decimal.NewFromUint64(pool.QuoteReserve)
	wantOut := inputExFee.Mul(quote).Div(base.Add(inputExFee)).Floor()

	require.Equal(t, wantOut.BigInt(), result.AmountOut)
	require.True(t, decimal.NewFromBigInt(result.AmountOut, 0).Cmp(quote) < 0)
}

func TestSwapQuoteZeroInput(t *testing.T) {
	result, err := SwapQuote(testPool(), TradeDirectionQuoteToBase, N0, 0)
	require.NoError(t, err)
	require.Zero(t, result.AmountOut.Sign())
	require.Zero(t, result.MinimumAmountOut.Sign())
	require.Zero(t, result.Fee.Sign())
}

func TestSwapQuoteErrors(t *testing.T) {
	_, err := SwapQuote(testPool(), TradeDirectionQuoteToBase, decimal.NewFromInt(-1), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	empty := &Pool{BaseDecimals: 6, QuoteDecimals: 9}
	_, err = SwapQuote(empty, TradeDirectionQuoteToBase, decimal.NewFromInt(100), 0)
	require.ErrorIs(t, err, ErrPoolUninitialized)

	// one raw unit is entirely eaten by the ceil'd fee
	_, err = SwapQuote(testPool(), TradeDirectionQuoteToBase, N1, 0)
	require.ErrorIs(t, err, ErrDegenerateQuote)
}

func TestSwapQuoteMonotonicInInput(t *testing.T) {
	pool := testPool()
	prev := decimal.NewFromInt(-1)

	for _, in := range []int64{1_000, 10_000, 1_000_000, 50_000_000, 1_000_000_000, 20_000_000_000} {
		result, err := SwapQuote(pool, TradeDirectionQuoteToBase, decimal.NewFromInt(in), 0)
		require.NoError(t, err)
		out := decimal.NewFromBigInt(result.AmountOut, 0)
		require.True(t, out.Cmp(prev) > 0, "output must strictly increase with input (in=%d)", in)
		prev = out
	}
}

func TestSwapQuoteNoSlipIsUpperBound(t *testing.T) {
	pools := []*Pool{
		testPool(),
		{
			BaseReserve: 500_000_000_000, QuoteReserve: 2_000_000_000,
			BaseDecimals: 6, QuoteDecimals: 9, Fee: 100, LPSupply: 1,
			Scaling: LiquidityScaling{Active: true, Threshold: 30_000_000_000, Scalar: 20},
		},
	}

	for _, pool := range pools {
		for _, direction := range []TradeDirection{TradeDirectionQuoteToBase, TradeDirectionBaseToQuote} {
			for _, in := range []int64{10_000, 5_000_000, 800_000_000, 4_000_000_000} {
				result, err := SwapQuote(pool, direction, decimal.NewFromInt(in), 0)
				require.NoError(t, err)

				out := decimal.NewFromBigInt(result.AmountOut, 0)
				require.True(t, result.NoSlipAmountOut.Cmp(out) >= 0,
					"marginal price reference must never be worse than simulated execution")
				require.True(t, result.SlippagePct.Sign() >= 0)
			}
		}
	}
}

func TestSwapQuoteMinimumOut(t *testing.T) {
	result, err := SwapQuote(testPool(), TradeDirectionQuoteToBase, decimal.NewFromInt(1_000_000_000), 250)
	require.NoError(t, err)

	want := decimal.NewFromBigInt(result.AmountOut, 0).
		Mul(decimal.NewFromInt(9_750)).
		Div(N10000).
		Floor()
	require.Equal(t, want.BigInt(), result.MinimumAmountOut)
}

func TestSwapQuoteUiScaling(t *testing.T) {
	pool := testPool()
	result, err := SwapQuote(pool, TradeDirectionQuoteToBase, decimal.NewFromInt(1_000_000_000), 0)
	require.NoError(t, err)

	scaled := decimal.NewFromBigInt(result.AmountOut, 0).Div(decimalScale(pool.BaseDecimals))
	diff := result.AmountOutUi.Sub(scaled).Abs()
	require.True(t, diff.Cmp(N1) < 0, "ui amount must be the raw output scaled by base decimals")
}
