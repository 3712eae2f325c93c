package cook_amm

import "github.com/shopspring/decimal"

// GetDepositQuote computes the quote-side amount that must accompany a
// base-side deposit, and the LP amount the depositor can expect. actualAmountIn
// is the deposit with the base mint's transfer fee already removed;
// consumedAmountIn is the deposit as typed. The LP estimate is display-only,
// the program mints the authoritative amount.
func GetDepositQuote(pool *Pool, actualAmountIn, consumedAmountIn decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if pool.BaseReserve == 0 || pool.QuoteReserve == 0 {
		return N0, N0, ErrPoolUninitialized
	}
	if actualAmountIn.Sign() < 0 || consumedAmountIn.Sign() < 0 {
		return N0, N0, ErrInvalidInput
	}
	if actualAmountIn.IsZero() {
		return N0, N0, nil
	}

	baseReserve := decimal.NewFromUint64(pool.BaseReserve)
	quoteReserve := decimal.NewFromUint64(pool.QuoteReserve)
	lpSupply := decimal.NewFromUint64(pool.LPSupply)

	// quoteRequired = in * quote / (in + base)
	quoteRequired := actualAmountIn.Mul(quoteReserve).Div(actualAmountIn.Add(baseReserve))

	// lpMinted = in * lpSupply / base, on the pre-fee input
	lpMinted := consumedAmountIn.Mul(lpSupply).Div(baseReserve)

	return quoteRequired.Floor(), lpMinted.Floor(), nil
}

// GetWithdrawQuote redeems an LP amount pro rata against both reserves.
func GetWithdrawQuote(pool *Pool, lpAmountIn decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if pool.LPSupply == 0 {
		return N0, N0, ErrPoolUninitialized
	}
	if lpAmountIn.Sign() < 0 {
		return N0, N0, ErrInvalidInput
	}

	baseReserve := decimal.NewFromUint64(pool.BaseReserve)
	quoteReserve := decimal.NewFromUint64(pool.QuoteReserve)
	lpSupply := decimal.NewFromUint64(pool.LPSupply)

	baseOut := baseReserve.Mul(lpAmountIn).Div(lpSupply)
	quoteOut := quoteReserve.Mul(lpAmountIn).Div(lpSupply)

	return baseOut.Floor(), quoteOut.Floor(), nil
}
