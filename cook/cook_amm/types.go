package cook_amm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TradeDirection defines which side of the pool is being spent
type TradeDirection uint8

const (
	TradeDirectionQuoteToBase TradeDirection = iota // buy: spend quote, receive base
	TradeDirectionBaseToQuote                       // sell: spend base, receive quote
)

// Pool is a read-only snapshot of one AMM pool. Reserves and LP supply are
// raw smallest-unit amounts as read from the vault accounts.
type Pool struct {
	BaseReserve   uint64
	QuoteReserve  uint64
	BaseDecimals  uint8
	QuoteDecimals uint8

	// Fee is the swap fee applied to the spent side as amount*Fee/100/100.
	Fee uint32

	// LPSupply is the outstanding LP token supply.
	LPSupply uint64

	Scaling LiquidityScaling
}

// LiquidityScaling carries the pool's synthetic depth parameters. They are
// written once at pool creation and read-only from quoting.
type LiquidityScaling struct {
	Active bool

	// Threshold is the raw quote reserve above which scaling saturates to 1.
	Threshold uint64

	// Scalar is stored times ten; the effective multiplier is Scalar/10.
	Scalar uint32
}

// QuoteResult is the outcome of a single swap quote. AmountOut is floored to
// raw units; the Ui fields are scaled by the receiving side's decimals.
type QuoteResult struct {
	AmountOut        *big.Int
	MinimumAmountOut *big.Int

	// Fee is the swap fee charged on the spent side, raw units.
	Fee *big.Int

	// NoSlipAmountOut is the raw amount the trade would return at the
	// pool's marginal price with zero depth impact.
	NoSlipAmountOut decimal.Decimal

	AmountOutUi     decimal.Decimal
	NoSlipAmountUi  decimal.Decimal

	// SlippagePct is NoSlipAmountOut/AmountOut - 1, clamped non-negative.
	SlippagePct decimal.Decimal
}

// DepositQuote estimates a liquidity add for a base-side deposit.
type DepositQuote struct {
	ActualInputAmount   *big.Int // input after the base mint's transfer fee
	ConsumedInputAmount *big.Int // original input
	QuoteRequired       *big.Int // matching quote-side amount
	LPMintEstimate      *big.Int // display estimate; the program decides the real mint
}

// WithdrawQuote is the pro-rata redemption for an LP amount.
type WithdrawQuote struct {
	OutBaseAmount  *big.Int
	OutQuoteAmount *big.Int
}
