package cook_amm

import "github.com/shopspring/decimal"

// scalingFactor maps the simulated quote reserve to the pool's synthetic
// depth multiplier. Above the threshold it saturates to 1; below it the
// factor falls linearly, floored so a near-empty pool still quotes.
func scalingFactor(quoteReserve decimal.Decimal, scaling LiquidityScaling) decimal.Decimal {
	threshold := decimal.NewFromUint64(scaling.Threshold)
	if threshold.Sign() <= 0 || quoteReserve.Cmp(threshold) > 0 {
		return N1
	}
	factor := decimal.NewFromUint64(uint64(scaling.Scalar)).
		Div(SCALING_SCALAR_DIVISOR).
		Mul(quoteReserve).
		Div(threshold)
	if factor.Cmp(N1) > 0 {
		return N1
	}
	if factor.Cmp(SCALING_FLOOR) < 0 {
		return SCALING_FLOOR
	}
	return factor
}

// chunkCount splits an order into up to MAX_SWAP_CHUNKS equal pieces. The
// minimum chunk size depends on which leg is being spent.
func chunkCount(amountIn decimal.Decimal, direction TradeDirection) int64 {
	minChunk := MIN_CHUNK_SIZE_QUOTE
	if direction == TradeDirectionBaseToQuote {
		minChunk = MIN_CHUNK_SIZE_BASE
	}
	chunks := amountIn.Div(minChunk).Floor().IntPart() + 1
	if chunks > MAX_SWAP_CHUNKS {
		chunks = MAX_SWAP_CHUNKS
	}
	return chunks
}

// clampBelowReserve keeps a chunk's output strictly under the output-side
// reserve. The constant product formula guarantees out < reserve exactly,
// but division precision can round the marginal chunk of an oversized order
// up to the whole remaining reserve.
func clampBelowReserve(out, reserve decimal.Decimal) decimal.Decimal {
	if out.Cmp(reserve) < 0 {
		return out
	}
	out = reserve.Sub(N1)
	if out.Sign() < 0 {
		return N0
	}
	return out
}

// quoteChunked walks the order through the pool one chunk at a time,
// recomputing the scaling factor as the simulated quote reserve moves. A buy
// scales its fee-excluded input down by the factor; a sell divides by it.
// The no-slip reference accumulates per chunk at the pre-chunk marginal
// price, which keeps it an upper bound on the simulated output.
//
// Truncation from the equal-chunk split is accepted; the dropped remainder
// is bounded by the chunk count.
func quoteChunked(pool *Pool, direction TradeDirection, amountIn decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	chunks := chunkCount(amountIn, direction)
	chunkSize := amountIn.Div(decimal.NewFromInt(chunks)).Floor()
	if chunkSize.Sign() <= 0 {
		chunkSize = amountIn
		chunks = 1
	}

	currentQuote := decimal.NewFromUint64(pool.QuoteReserve)
	currentBase := decimal.NewFromUint64(pool.BaseReserve)

	totalOut := N0
	totalFee := N0
	totalNoSlip := N0

	for i := int64(0); i < chunks; i++ {
		factor := scalingFactor(currentQuote, pool.Scaling)

		fee := swapFeeOnAmount(chunkSize, pool.Fee)
		inputExFee := chunkSize.Sub(fee)
		totalFee = totalFee.Add(fee)
		if inputExFee.Sign() <= 0 {
			continue
		}

		if direction == TradeDirectionQuoteToBase {
			scaledInput := inputExFee.Mul(factor)
			out := clampBelowReserve(scaledInput.Mul(currentBase).Div(currentQuote.Add(scaledInput)), currentBase)
			totalOut = totalOut.Add(out)
			totalNoSlip = totalNoSlip.Add(scaledInput.Mul(currentBase).Div(currentQuote))
			currentQuote = currentQuote.Add(chunkSize)
			currentBase = currentBase.Sub(out)
		} else {
			scaledInput := inputExFee.Div(factor)
			out := clampBelowReserve(scaledInput.Mul(currentQuote).Div(currentBase.Add(scaledInput)), currentQuote)
			totalOut = totalOut.Add(out)
			totalNoSlip = totalNoSlip.Add(scaledInput.Mul(currentQuote).Div(currentBase))
			currentQuote = currentQuote.Sub(out)
			currentBase = currentBase.Add(chunkSize)
		}
	}

	return totalOut, totalFee, totalNoSlip
}
