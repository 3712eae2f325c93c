package cook_amm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGetDepositQuote(t *testing.T) {
	pool := testPool()
	amountIn := decimal.NewFromInt(10_000_000_000) // 10,000 tokens

	quoteRequired, lpMinted, err := GetDepositQuote(pool, amountIn, amountIn)
	require.NoError(t, err)

	base := decimal.NewFromUint64(pool.BaseReserve)
	quote := decimal.NewFromUint64(pool.QuoteReserve)
	lpSupply := decimal.NewFromUint64(pool.LPSupply)

	wantQuote := amountIn.Mul(quote).Div(amountIn.Add(base)).Floor()
	wantLP := amountIn.Mul(lpSupply).Div(base).Floor()

	require.True(t, wantQuote.Equal(quoteRequired), "quoteRequired = %s", quoteRequired)
	require.True(t, wantLP.Equal(lpMinted), "lpMinted = %s", lpMinted)
}

func TestGetDepositQuoteZeroInput(t *testing.T) {
	quoteRequired, lpMinted, err := GetDepositQuote(testPool(), N0, N0)
	require.NoError(t, err)
	require.True(t, quoteRequired.IsZero())
	require.True(t, lpMinted.IsZero())
}

func TestGetDepositQuoteErrors(t *testing.T) {
	_, _, err := GetDepositQuote(&Pool{}, decimal.NewFromInt(1), decimal.NewFromInt(1))
	require.ErrorIs(t, err, ErrPoolUninitialized)

	_, _, err = GetDepositQuote(testPool(), decimal.NewFromInt(-1), decimal.NewFromInt(-1))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWithdrawQuote(t *testing.T) {
	pool := testPool()
	lpAmount := decimal.NewFromInt(100_000_000) // 10% of supply

	baseOut, quoteOut, err := GetWithdrawQuote(pool, lpAmount)
	require.NoError(t, err)

	require.True(t, decimal.NewFromInt(100_000_000_000).Equal(baseOut), "baseOut = %s", baseOut)
	require.True(t, decimal.NewFromInt(1_000_000_000).Equal(quoteOut), "quoteOut = %s", quoteOut)
}

func TestGetWithdrawQuoteZeroSupply(t *testing.T) {
	pool := testPool()
	pool.LPSupply = 0

	_, _, err := GetWithdrawQuote(pool, decimal.NewFromInt(1))
	require.ErrorIs(t, err, ErrPoolUninitialized)
}

// Depositing X base and redeeming the estimated LP amount must recover X and
// the matching quote leg, within flooring, when the reserves have not moved.
func TestLiquidityRoundTrip(t *testing.T) {
	pool := testPool()
	amountIn := decimal.NewFromInt(25_000_000_000)

	quoteRequired, lpMinted, err := GetDepositQuote(pool, amountIn, amountIn)
	require.NoError(t, err)

	baseOut, quoteOut, err := GetWithdrawQuote(pool, lpMinted)
	require.NoError(t, err)

	baseDiff := amountIn.Sub(baseOut).Abs()
	lpShareUnit := decimal.NewFromUint64(pool.BaseReserve).Div(decimal.NewFromUint64(pool.LPSupply)).Ceil()
	require.True(t, baseDiff.Cmp(lpShareUnit) <= 0,
		"round trip base drift %s exceeds one LP share (%s)", baseDiff, lpShareUnit)

	// the recovered quote leg sits near the deposit requirement; the gap is
	// the depth impact term quote/(base+in) vs quote/base
	require.True(t, quoteOut.Cmp(quoteRequired) >= 0)
	relGap := quoteOut.Sub(quoteRequired).Div(quoteOut)
	depthShare := amountIn.Div(amountIn.Add(decimal.NewFromUint64(pool.BaseReserve)))
	require.True(t, relGap.Cmp(depthShare.Add(decimal.NewFromFloat(1e-9))) <= 0)
}
