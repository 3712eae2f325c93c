package cook_amm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const maxFeeBasisPoints = 10_000

// TransferFeeConfig is the proportional-with-cap fee some token-2022 mints
// levy on every transfer. It is separate from the pool's swap fee and is
// applied first, on the raw amount entering or leaving the fee-bearing mint.
type TransferFeeConfig struct {
	BasisPoints uint16
	MaximumFee  uint64
}

// CalculateTransferFee returns ceil(amount*bps/10_000) capped at MaximumFee.
func CalculateTransferFee(amount decimal.Decimal, cfg *TransferFeeConfig) decimal.Decimal {
	if cfg == nil || cfg.BasisPoints == 0 || amount.Sign() <= 0 {
		return N0
	}
	maximumFee := decimal.NewFromUint64(cfg.MaximumFee)
	if cfg.BasisPoints >= maxFeeBasisPoints {
		return maximumFee
	}
	fee := amount.Mul(decimal.NewFromUint64(uint64(cfg.BasisPoints))).Div(BASIS_POINT_MAX).Ceil()
	if fee.Cmp(maximumFee) > 0 {
		return maximumFee
	}
	return fee
}

// CalculateTransferFeeExcludedAmount strips the mint's transfer fee from a
// raw amount. The net amount never underflows; a fee larger than the amount
// clamps the net to zero.
func CalculateTransferFeeExcludedAmount(amount decimal.Decimal, cfg *TransferFeeConfig) (decimal.Decimal, decimal.Decimal) {
	fee := CalculateTransferFee(amount, cfg)
	net := amount.Sub(fee)
	if net.Sign() < 0 {
		net = N0
		fee = amount
	}
	return net, fee
}

// TransferFeeExcludedBig is the big.Int boundary form of
// CalculateTransferFeeExcludedAmount.
func TransferFeeExcludedBig(amount *big.Int, cfg *TransferFeeConfig) (*big.Int, *big.Int) {
	net, fee := CalculateTransferFeeExcludedAmount(decimal.NewFromBigInt(amount, 0), cfg)
	return net.BigInt(), fee.BigInt()
}
