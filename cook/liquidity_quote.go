package cook

import (
	"context"
	"math/big"

	"github.com/daoplays/LetsCook-sub002/cook/cook_amm"
	"github.com/shopspring/decimal"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// GetDepositQuote calculates the deposit quote for a base-side liquidity
// add: the matching quote amount and the LP estimate for display.
//
// Example:
//
// quote, poolState, _ := GetDepositQuote(ctx, rpcClient, baseMint, amountIn)
func GetDepositQuote(
	ctx context.Context,
	rpcClient *rpc.Client,
	baseMint solana.PublicKey,
	amountIn *big.Int,
) (*cook_amm.DepositQuote, *Pool, error) {
	poolState, err := GetPoolByBaseMint(ctx, rpcClient, baseMint)
	if err != nil {
		return nil, nil, err
	}

	consumedAmountIn := decimal.NewFromBigInt(amountIn, 0)
	actualAmountIn, err := transferFeeExcluded(ctx, rpcClient, poolState.BaseMint, poolState.BaseToken.Owner, consumedAmountIn)
	if err != nil {
		return nil, nil, err
	}

	quoteRequired, lpMinted, err := cook_amm.GetDepositQuote(poolState.AMM, actualAmountIn, consumedAmountIn)
	if err != nil {
		return nil, nil, err
	}

	return &cook_amm.DepositQuote{
		ActualInputAmount:   actualAmountIn.BigInt(),
		ConsumedInputAmount: amountIn,
		QuoteRequired:       quoteRequired.BigInt(),
		LPMintEstimate:      lpMinted.BigInt(),
	}, poolState, nil
}

func (m *Cook) GetDepositQuote(
	ctx context.Context,
	baseMint solana.PublicKey,
	amountIn *big.Int,
) (*cook_amm.DepositQuote, *Pool, error) {
	return GetDepositQuote(ctx, m.rpcClient, baseMint, amountIn)
}

// GetWithdrawQuote calculates the pro-rata redemption for burning an LP
// amount against the pool's live reserves.
//
// Example:
//
// quote, poolState, _ := GetWithdrawQuote(ctx, rpcClient, baseMint, lpAmount)
func GetWithdrawQuote(
	ctx context.Context,
	rpcClient *rpc.Client,
	baseMint solana.PublicKey,
	lpAmountIn *big.Int,
) (*cook_amm.WithdrawQuote, *Pool, error) {
	poolState, err := GetPoolByBaseMint(ctx, rpcClient, baseMint)
	if err != nil {
		return nil, nil, err
	}

	baseOut, quoteOut, err := cook_amm.GetWithdrawQuote(poolState.AMM, decimal.NewFromBigInt(lpAmountIn, 0))
	if err != nil {
		return nil, nil, err
	}

	return &cook_amm.WithdrawQuote{
		OutBaseAmount:  baseOut.BigInt(),
		OutQuoteAmount: quoteOut.BigInt(),
	}, poolState, nil
}

func (m *Cook) GetWithdrawQuote(
	ctx context.Context,
	baseMint solana.PublicKey,
	lpAmountIn *big.Int,
) (*cook_amm.WithdrawQuote, *Pool, error) {
	return GetWithdrawQuote(ctx, m.rpcClient, baseMint, lpAmountIn)
}
